package application

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingMetrics struct {
	mu    sync.Mutex
	ticks []error
}

func (m *recordingMetrics) ObservePublish(string, string, time.Duration) {}
func (m *recordingMetrics) ObserveVisibilityAttempts(int)                {}
func (m *recordingMetrics) ObserveCache(bool)                            {}

func (m *recordingMetrics) ObserveTick(_ string, err error, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ticks = append(m.ticks, err)
}

func (m *recordingMetrics) Ticks() []error {
	m.mu.Lock()
	defer m.mu.Unlock()

	return append([]error(nil), m.ticks...)
}

func TestSchedulerTicksUntilStopped(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int32
	clock := newFakeClock()
	scheduler := NewScheduler("test", func(context.Context) error {
		ticks.Add(1)
		return nil
	}, FixedDelay(time.Minute), clock, nil, nil)

	scheduler.Start(context.Background())
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, waitFor, pollEvery)
	scheduler.Stop()

	stopped := ticks.Load()
	assert.Equal(t, time.Minute, clock.Delays()[0])

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, stopped, ticks.Load())
}

func TestSchedulerAbsorbsErrorsAndPanics(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int32
	metrics := &recordingMetrics{}
	scheduler := NewScheduler("test", func(context.Context) error {
		switch ticks.Add(1) {
		case 1:
			return errors.New("tick failed")
		case 2:
			panic("boom")
		default:
			return nil
		}
	}, FixedDelay(time.Second), newFakeClock(), metrics, nil)

	scheduler.Start(context.Background())
	require.Eventually(t, func() bool { return ticks.Load() >= 3 }, waitFor, pollEvery)
	scheduler.Stop()

	recorded := metrics.Ticks()
	require.GreaterOrEqual(t, len(recorded), 3)
	assert.ErrorContains(t, recorded[0], "tick failed")
	assert.ErrorContains(t, recorded[1], "boom")
	assert.NoError(t, recorded[2])
}

func TestSchedulerStopWaitsForInFlightTick(t *testing.T) {
	t.Parallel()

	entered := make(chan struct{})
	release := make(chan struct{})
	var tickCtxErr error
	scheduler := NewScheduler("test", func(ctx context.Context) error {
		close(entered)
		<-release
		tickCtxErr = ctx.Err()
		return nil
	}, FixedDelay(time.Hour), &fakeClock{now: testNow, hold: true}, nil, nil)

	ctx, cancel := context.WithCancel(context.Background())
	scheduler.Start(ctx)
	<-entered
	cancel()

	stopped := make(chan struct{})
	go func() {
		scheduler.Stop()
		close(stopped)
	}()

	select {
	case <-stopped:
		t.Fatal("stop returned while a tick was running")
	case <-time.After(20 * time.Millisecond):
	}

	close(release)
	select {
	case <-stopped:
	case <-time.After(waitFor):
		t.Fatal("stop did not return after the tick finished")
	}
	assert.NoError(t, tickCtxErr)
}

func TestSchedulerStartIsIdempotent(t *testing.T) {
	t.Parallel()

	var ticks atomic.Int32
	scheduler := NewScheduler("test", func(context.Context) error {
		ticks.Add(1)
		return nil
	}, FixedDelay(time.Hour), &fakeClock{now: testNow, hold: true}, nil, nil)

	scheduler.Start(context.Background())
	scheduler.Start(context.Background())
	require.Eventually(t, func() bool { return ticks.Load() == 1 }, waitFor, pollEvery)
	scheduler.Stop()
	scheduler.Stop()

	assert.Equal(t, int32(1), ticks.Load())
}

func TestAgentStartsOnlyEnabledLoops(t *testing.T) {
	t.Parallel()

	f := newInteractionFixture(t)
	interactions := f.loop(t)
	posting := newPostingFixture(t).loop(t)

	both := NewAgent(interactions, posting, AgentConfig{InteractionsEnabled: true, PostingEnabled: true}, newFakeClock(), nil, nil)
	assert.Equal(t, 2, both.Loops())

	onlyReplies := NewAgent(interactions, posting, AgentConfig{InteractionsEnabled: true}, newFakeClock(), nil, nil)
	assert.Equal(t, 1, onlyReplies.Loops())

	none := NewAgent(nil, nil, AgentConfig{InteractionsEnabled: true, PostingEnabled: true}, newFakeClock(), nil, nil)
	none.Start(context.Background())
	none.Stop()
	assert.Zero(t, none.Loops())
}
