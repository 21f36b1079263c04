package ports

import (
	"context"

	"github.com/bnema/lens-agent/internal/domain"
)

type MemoryStore interface {
	// GetMemoryByID returns nil without error when no memory exists.
	GetMemoryByID(ctx context.Context, id domain.MemoryID) (*domain.Memory, error)
	// CreateMemory is a no-op when a memory with the same id already exists.
	CreateMemory(ctx context.Context, memory domain.Memory) error
}

type RoomRegistry interface {
	EnsureConnection(ctx context.Context, conn domain.Connection) error
}
