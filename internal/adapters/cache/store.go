package cache

import (
	"sync"

	"github.com/bnema/lens-agent/internal/ports"
)

// Store is an additive, never-evicting map shared by every component of one agent.
// Writers for the same key overwrite each other; readers may see stale entities.
type Store struct {
	mu      sync.RWMutex
	entries map[string]any
	metrics ports.Metrics
}

var _ ports.Cache = (*Store)(nil)

func NewStore(metrics ports.Metrics) *Store {
	if metrics == nil {
		metrics = ports.NopMetrics{}
	}

	return &Store{entries: make(map[string]any), metrics: metrics}
}

func (s *Store) Get(key string) (any, bool) {
	s.mu.RLock()
	value, ok := s.entries[key]
	s.mu.RUnlock()

	s.metrics.ObserveCache(ok)
	return value, ok
}

func (s *Store) Set(key string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = value
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return len(s.entries)
}
