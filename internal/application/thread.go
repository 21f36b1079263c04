package application

import (
	"context"
	"fmt"
	"slices"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

type postSource interface {
	GetPost(ctx context.Context, id domain.PostID) (*domain.Post, error)
}

// ThreadBuilder reconstructs the conversation above a post and remembers every post in it.
type ThreadBuilder struct {
	posts    postSource
	memories ports.MemoryStore
	rooms    ports.RoomRegistry
	agentID  domain.AgentID
	clock    ports.Clock
	logger   *zap.Logger
}

func NewThreadBuilder(posts postSource, memories ports.MemoryStore, rooms ports.RoomRegistry, agentID domain.AgentID, clock ports.Clock, logger *zap.Logger) *ThreadBuilder {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &ThreadBuilder{
		posts:    posts,
		memories: memories,
		rooms:    rooms,
		agentID:  agentID,
		clock:    clock,
		logger:   logger,
	}
}

// Build returns the chain of posts ending at post, oldest first. The walk stops at a
// root post, at a parent that cannot be loaded, or at a post it has already visited.
func (b *ThreadBuilder) Build(ctx context.Context, post domain.Post) ([]domain.Post, error) {
	visited := make(map[domain.PostID]struct{})
	var thread []domain.Post

	current := &post
	for current != nil {
		if _, seen := visited[current.ID]; seen {
			b.logger.Warn("thread cycle", zap.String("post_id", string(current.ID)))
			break
		}
		visited[current.ID] = struct{}{}

		if err := b.remember(ctx, *current); err != nil {
			return nil, err
		}
		thread = append(thread, *current)

		if !current.IsComment() {
			break
		}
		parent, err := b.posts.GetPost(ctx, current.CommentOn.ID)
		if err != nil {
			b.logger.Warn("thread parent unavailable", zap.String("post_id", string(current.CommentOn.ID)), zap.Error(err))
			break
		}
		current = parent
	}

	slices.Reverse(thread)
	return thread, nil
}

func (b *ThreadBuilder) remember(ctx context.Context, post domain.Post) error {
	memoryID := domain.NewMemoryID(post.ID, b.agentID)
	existing, err := b.memories.GetMemoryByID(ctx, memoryID)
	if err != nil {
		return fmt.Errorf("get memory of post %s: %w", post.ID, err)
	}
	if existing != nil {
		return nil
	}

	roomID := domain.NewRoomID(post.ID, b.agentID)
	if err := b.rooms.EnsureConnection(ctx, domain.NewConnection(post.Author, roomID)); err != nil {
		return fmt.Errorf("connect %s to room of post %s: %w", post.Author.Address, post.ID, err)
	}
	if err := b.memories.CreateMemory(ctx, domain.NewPostMemory(post, b.agentID, roomID, b.clock.Now())); err != nil {
		return fmt.Errorf("create memory of post %s: %w", post.ID, err)
	}

	return nil
}
