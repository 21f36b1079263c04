package ports

import (
	"context"

	"github.com/bnema/lens-agent/internal/domain"
)

type AgentRuntime interface {
	ShouldRespond(ctx context.Context, prompt string) (domain.Decision, error)
	GenerateText(ctx context.Context, prompt string) (string, error)
}

type KnowledgeBase interface {
	Search(ctx context.Context, query string, topK int) ([]domain.KnowledgeChunk, error)
}
