package application

import (
	"context"
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

const (
	DefaultPostingMinInterval = time.Hour
	DefaultPostingMaxInterval = 4 * time.Hour
	generateRoomName          = "lens_generate_room"
	postingLoopLabel          = "posting"
)

type PostingConfig struct {
	AgentID       domain.AgentID
	Self          domain.EvmAddress
	TimelineLimit int
	DryRun        bool
	MinInterval   time.Duration
	MaxInterval   time.Duration
}

// PostingLoop writes an original post on every tick.
type PostingLoop struct {
	feed      feedSource
	publisher postPublisher
	runtime   ports.AgentRuntime
	knowledge ports.KnowledgeBase
	memories  ports.MemoryStore
	rooms     ports.RoomRegistry
	prompts   *Prompts
	clock     ports.Clock
	logger    *zap.Logger
	cfg       PostingConfig
	int64N    func(n int64) int64
}

// NewPostingLoop builds the loop. knowledge may be nil.
func NewPostingLoop(
	feed feedSource,
	publisher postPublisher,
	runtime ports.AgentRuntime,
	knowledge ports.KnowledgeBase,
	memories ports.MemoryStore,
	rooms ports.RoomRegistry,
	prompts *Prompts,
	clock ports.Clock,
	cfg PostingConfig,
	logger *zap.Logger,
) *PostingLoop {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.TimelineLimit == 0 {
		cfg.TimelineLimit = DefaultTimelineLimit
	}
	if cfg.MinInterval <= 0 {
		cfg.MinInterval = DefaultPostingMinInterval
	}
	if cfg.MaxInterval < cfg.MinInterval {
		cfg.MaxInterval = max(cfg.MinInterval, DefaultPostingMaxInterval)
	}

	return &PostingLoop{
		feed:      feed,
		publisher: publisher,
		runtime:   runtime,
		knowledge: knowledge,
		memories:  memories,
		rooms:     rooms,
		prompts:   prompts,
		clock:     clock,
		logger:    logger.With(zap.String("loop", postingLoopLabel)),
		cfg:       cfg,
		int64N:    rand.Int64N,
	}
}

// NextDelay is uniform in [MinInterval, MaxInterval].
func (l *PostingLoop) NextDelay() time.Duration {
	span := int64(l.cfg.MaxInterval - l.cfg.MinInterval)
	if span <= 0 {
		return l.cfg.MinInterval
	}

	return l.cfg.MinInterval + time.Duration(l.int64N(span+1))
}

func (l *PostingLoop) Tick(ctx context.Context) error {
	agent, err := l.feed.GetAccount(ctx, l.cfg.Self)
	if err != nil {
		return fmt.Errorf("resolve agent account: %w", err)
	}

	if err := l.rooms.EnsureConnection(ctx, domain.NewConnection(agent, domain.NewNamedRoomID(generateRoomName))); err != nil {
		return fmt.Errorf("connect agent to generate room: %w", err)
	}

	timeline, err := l.feed.Timeline(ctx, l.cfg.Self, l.cfg.TimelineLimit)
	if err != nil {
		return fmt.Errorf("load timeline: %w", err)
	}

	data := l.prompts.Data(agent.Handle())
	data.Timeline = FormatTimeline(l.prompts.character.Name, timeline)
	data.Knowledge = searchKnowledge(ctx, l.knowledge, data.Topic, l.logger)

	prompt, err := l.prompts.Post(data)
	if err != nil {
		return err
	}
	text, err := l.runtime.GenerateText(ctx, prompt)
	if err != nil {
		return fmt.Errorf("generate post: %w", err)
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return fmt.Errorf("generate post: empty text")
	}

	if l.cfg.DryRun {
		l.logger.Info("dry run post", zap.String("text", text), zap.String("topic", data.Topic))
		return nil
	}

	post, err := l.publisher.Publish(ctx, domain.NewTextOnlyMetadata(text), nil, nil)
	if err != nil {
		return fmt.Errorf("publish post: %w", err)
	}

	roomID := domain.NewRoomID(post.ID, l.cfg.AgentID)
	if err := l.rooms.EnsureConnection(ctx, domain.NewConnection(agent, roomID)); err != nil {
		return fmt.Errorf("connect agent to post room: %w", err)
	}
	if err := l.memories.CreateMemory(ctx, domain.NewPostMemory(post, l.cfg.AgentID, roomID, l.clock.Now())); err != nil {
		return fmt.Errorf("create post memory: %w", err)
	}
	l.logger.Info("posted", zap.String("post_id", string(post.ID)))

	return nil
}
