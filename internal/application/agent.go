package application

import (
	"context"
	"time"

	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

const DefaultPollInterval = 2 * time.Minute

type AgentConfig struct {
	PollInterval        time.Duration
	InteractionsEnabled bool
	PostingEnabled      bool
}

type Agent struct {
	schedulers []*Scheduler
	logger     *zap.Logger
}

// NewAgent wires the enabled loops to schedulers. Either loop may be nil.
func NewAgent(interactions *InteractionLoop, posting *PostingLoop, cfg AgentConfig, clock ports.Clock, metrics ports.Metrics, logger *zap.Logger) *Agent {
	if logger == nil {
		logger = zap.NewNop()
	}
	if cfg.PollInterval <= 0 {
		cfg.PollInterval = DefaultPollInterval
	}

	agent := &Agent{logger: logger}
	if interactions != nil && cfg.InteractionsEnabled {
		agent.schedulers = append(agent.schedulers,
			NewScheduler(interactionsLoopLabel, interactions.Tick, FixedDelay(cfg.PollInterval), clock, metrics, logger))
	}
	if posting != nil && cfg.PostingEnabled {
		agent.schedulers = append(agent.schedulers,
			NewScheduler(postingLoopLabel, posting.Tick, posting.NextDelay, clock, metrics, logger))
	}

	return agent
}

func (a *Agent) Loops() int {
	return len(a.schedulers)
}

func (a *Agent) Start(ctx context.Context) {
	for _, scheduler := range a.schedulers {
		scheduler.Start(ctx)
	}
	a.logger.Info("agent started", zap.Int("loops", len(a.schedulers)))
}

// Stop stops every loop and waits until each has exited.
func (a *Agent) Stop() {
	for _, scheduler := range a.schedulers {
		scheduler.Stop()
	}
	a.logger.Info("agent stopped")
}
