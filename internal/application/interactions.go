package application

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultMentionsLimit  = 50
	DefaultTimelineLimit  = 10
	DefaultKnowledgeTopK  = 3
	interactionsLoopLabel = "interactions"
)

type feedSource interface {
	Mentions(ctx context.Context, limit int) ([]domain.Post, error)
	Timeline(ctx context.Context, account domain.EvmAddress, limit int) ([]domain.Post, error)
	GetAccount(ctx context.Context, address domain.EvmAddress) (domain.Account, error)
}

type threadSource interface {
	Build(ctx context.Context, post domain.Post) ([]domain.Post, error)
}

type postPublisher interface {
	Publish(ctx context.Context, body any, storage ports.StorageProvider, parent *domain.PostID) (domain.Post, error)
}

type InteractionConfig struct {
	AgentID       domain.AgentID
	Self          domain.EvmAddress
	MentionsLimit int
	TimelineLimit int
	DryRun        bool
	// StartedAt is the process start; mentions older than it are never answered.
	StartedAt time.Time
}

type InteractionLoop struct {
	feed      feedSource
	thread    threadSource
	publisher postPublisher
	runtime   ports.AgentRuntime
	knowledge ports.KnowledgeBase
	memories  ports.MemoryStore
	rooms     ports.RoomRegistry
	prompts   *Prompts
	clock     ports.Clock
	logger    *zap.Logger
	cfg       InteractionConfig
}

// NewInteractionLoop builds the loop. knowledge may be nil.
func NewInteractionLoop(
	feed feedSource,
	thread threadSource,
	publisher postPublisher,
	runtime ports.AgentRuntime,
	knowledge ports.KnowledgeBase,
	memories ports.MemoryStore,
	rooms ports.RoomRegistry,
	prompts *Prompts,
	clock ports.Clock,
	cfg InteractionConfig,
	logger *zap.Logger,
) *InteractionLoop {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.MentionsLimit == 0 {
		cfg.MentionsLimit = DefaultMentionsLimit
	}
	if cfg.TimelineLimit == 0 {
		cfg.TimelineLimit = DefaultTimelineLimit
	}

	return &InteractionLoop{
		feed:      feed,
		thread:    thread,
		publisher: publisher,
		runtime:   runtime,
		knowledge: knowledge,
		memories:  memories,
		rooms:     rooms,
		prompts:   prompts,
		clock:     clock,
		logger:    logger.With(zap.String("loop", interactionsLoopLabel)),
		cfg:       cfg,
	}
}

// Tick handles every pending mention. A failing mention does not stop the others; all
// failures are returned joined.
func (l *InteractionLoop) Tick(ctx context.Context) error {
	agent, err := l.feed.GetAccount(ctx, l.cfg.Self)
	if err != nil {
		return fmt.Errorf("resolve agent account: %w", err)
	}

	mentions, err := l.feed.Mentions(ctx, l.cfg.MentionsLimit)
	if err != nil {
		return fmt.Errorf("collect mentions: %w", err)
	}
	l.logger.Debug("mentions collected", zap.Int("count", len(mentions)))

	var errs []error
	for _, mention := range mentions {
		if err := l.handleMention(ctx, agent, mention); err != nil {
			l.logger.Error("handle mention", zap.String("post_id", string(mention.ID)), zap.Error(err))
			errs = append(errs, fmt.Errorf("mention %s: %w", mention.ID, err))
		}
	}

	return errors.Join(errs...)
}

func (l *InteractionLoop) handleMention(ctx context.Context, agent domain.Account, mention domain.Post) error {
	skip, reason, err := l.shouldSkip(ctx, mention)
	if err != nil {
		return err
	}
	if skip {
		l.logger.Debug("mention skipped", zap.String("post_id", string(mention.ID)), zap.String("reason", reason))
		return nil
	}

	roomID := domain.NewRoomID(mention.ID, l.cfg.AgentID)
	if err := l.rooms.EnsureConnection(ctx, domain.NewConnection(mention.Author, roomID)); err != nil {
		return fmt.Errorf("connect author: %w", err)
	}

	thread, err := l.thread.Build(ctx, mention)
	if err != nil {
		return fmt.Errorf("build thread: %w", err)
	}

	timeline, err := l.feed.Timeline(ctx, l.cfg.Self, l.cfg.TimelineLimit)
	if err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}

	data := l.prompts.Data(agent.Handle())
	data.Timeline = FormatTimeline(l.prompts.character.Name, timeline)
	data.Knowledge = searchKnowledge(ctx, l.knowledge, mention.Metadata.Content, l.logger)
	data.CurrentPost = FormatPost(mention)
	data.Conversation = FormatConversation(thread)

	prompt, err := l.prompts.ShouldRespond(data)
	if err != nil {
		return err
	}
	decision, err := l.runtime.ShouldRespond(ctx, prompt)
	if err != nil {
		return fmt.Errorf("decide on mention: %w", err)
	}
	if decision != domain.DecisionRespond {
		l.logger.Info("not responding", zap.String("post_id", string(mention.ID)), zap.String("decision", string(decision)))
		return nil
	}

	prompt, err = l.prompts.MessageHandler(data)
	if err != nil {
		return err
	}
	text, err := l.runtime.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generate reply: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		l.logger.Warn("empty reply generated", zap.String("post_id", string(mention.ID)))
		return nil
	}

	if l.cfg.DryRun {
		l.logger.Info("dry run reply", zap.String("post_id", string(mention.ID)), zap.String("text", text))
		return nil
	}

	reply, err := l.publisher.Publish(ctx, domain.NewTextOnlyMetadata(text), nil, &mention.ID)
	if err != nil {
		return fmt.Errorf("publish reply: %w", err)
	}

	memory := domain.NewPostMemory(reply, l.cfg.AgentID, roomID, l.clock.Now())
	inReplyTo := domain.NewMemoryID(mention.ID, l.cfg.AgentID)
	memory.Content.InReplyTo = &inReplyTo
	memory.Content.Action = string(domain.DecisionRespond)
	if err := l.memories.CreateMemory(ctx, memory); err != nil {
		return fmt.Errorf("create reply memory: %w", err)
	}
	l.logger.Info("replied", zap.String("post_id", string(mention.ID)), zap.String("reply_id", string(reply.ID)))

	return nil
}

// shouldSkip runs before any side effect so skipped mentions leave no trace.
func (l *InteractionLoop) shouldSkip(ctx context.Context, mention domain.Post) (bool, string, error) {
	existing, err := l.memories.GetMemoryByID(ctx, domain.NewMemoryID(mention.ID, l.cfg.AgentID))
	if err != nil {
		return false, "", fmt.Errorf("get mention memory: %w", err)
	}
	if existing != nil {
		return true, "already handled", nil
	}
	if !l.cfg.StartedAt.IsZero() && mention.Timestamp.Before(l.cfg.StartedAt) {
		return true, "before startup", nil
	}
	if mention.Author.Address.Equal(l.cfg.Self) {
		return true, "own post", nil
	}

	return false, "", nil
}

func searchKnowledge(ctx context.Context, knowledge ports.KnowledgeBase, query string, logger *zap.Logger) string {
	if knowledge == nil || strings.TrimSpace(query) == "" {
		return ""
	}

	chunks, err := knowledge.Search(ctx, query, DefaultKnowledgeTopK)
	if err != nil {
		logger.Warn("knowledge search failed", zap.Error(err))
		return ""
	}

	return FormatKnowledge(chunks)
}
