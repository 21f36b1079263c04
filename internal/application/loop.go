package application

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/bnema/lens-agent/internal/ports"
	"go.uber.org/zap"
)

type TickFunc func(ctx context.Context) error

// Scheduler runs a tick, waits delay, and repeats until stopped. Ticks never overlap.
// Stopping takes effect at the next wait; an in-flight tick runs to completion.
type Scheduler struct {
	name    string
	tick    TickFunc
	delay   func() time.Duration
	clock   ports.Clock
	metrics ports.Metrics
	logger  *zap.Logger

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

func NewScheduler(name string, tick TickFunc, delay func() time.Duration, clock ports.Clock, metrics ports.Metrics, logger *zap.Logger) *Scheduler {
	if clock == nil {
		clock = ports.SystemClock{}
	}
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		name:    name,
		tick:    tick,
		delay:   delay,
		clock:   clock,
		metrics: metrics,
		logger:  logger.With(zap.String("loop", name)),
	}
}

func FixedDelay(d time.Duration) func() time.Duration {
	return func() time.Duration { return d }
}

// Start launches the loop goroutine. Calling Start on a running scheduler does nothing.
func (s *Scheduler) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.done != nil {
		return
	}
	s.stop = make(chan struct{})
	s.done = make(chan struct{})

	go s.run(ctx, s.stop, s.done)
	s.logger.Info("loop started")
}

func (s *Scheduler) Stop() {
	s.mu.Lock()
	stop, done := s.stop, s.done
	s.stop, s.done = nil, nil
	s.mu.Unlock()

	if done == nil {
		return
	}
	close(stop)
	<-done
	s.logger.Info("loop stopped")
}

func (s *Scheduler) run(ctx context.Context, stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	for {
		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		default:
		}

		s.runTick(ctx)

		select {
		case <-stop:
			return
		case <-ctx.Done():
			return
		case <-s.clock.After(s.delay()):
		}
	}
}

func (s *Scheduler) runTick(ctx context.Context) {
	started := s.clock.Now()

	var err error
	func() {
		defer func() {
			if r := recover(); r != nil {
				err = fmt.Errorf("tick panicked: %v", r)
			}
		}()
		err = s.tick(context.WithoutCancel(ctx))
	}()

	s.metrics.ObserveTick(s.name, err, s.clock.Now().Sub(started))
	if err != nil {
		s.logger.Error("tick failed", zap.Error(err))
	}
}
