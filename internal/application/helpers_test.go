package application

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/bnema/lens-agent/internal/adapters/cache"
	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/stretchr/testify/require"
)

const (
	waitFor   = 2 * time.Second
	pollEvery = 5 * time.Millisecond
)

var (
	testNow     = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	testAgentID = domain.NewAgentID("lens-bot")
	selfAddress = domain.EvmAddress("0x00000000000000000000000000000000000000a1")
	selfAccount = domain.Account{Address: selfAddress, LocalName: "lensbot", Name: "Lens Bot"}
	alice       = domain.Account{Address: "0x00000000000000000000000000000000000000b2", LocalName: "alice", Name: "Alice"}
)

// fakeClock never sleeps. After fires immediately unless hold is set, in which case the
// returned channel never fires.
type fakeClock struct {
	mu     sync.Mutex
	now    time.Time
	hold   bool
	delays []time.Duration
}

var _ ports.Clock = (*fakeClock)(nil)

func newFakeClock() *fakeClock {
	return &fakeClock{now: testNow}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.now
}

func (c *fakeClock) After(d time.Duration) <-chan time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.delays = append(c.delays, d)
	ch := make(chan time.Time, 1)
	if !c.hold {
		ch <- c.now.Add(d)
	}

	return ch
}

func (c *fakeClock) Delays() []time.Duration {
	c.mu.Lock()
	defer c.mu.Unlock()

	return append([]time.Duration(nil), c.delays...)
}

// inMemoryMemories implements both MemoryStore and RoomRegistry.
type inMemoryMemories struct {
	mu          sync.Mutex
	memories    map[domain.MemoryID]domain.Memory
	connections []domain.Connection
	created     []domain.MemoryID
}

var (
	_ ports.MemoryStore  = (*inMemoryMemories)(nil)
	_ ports.RoomRegistry = (*inMemoryMemories)(nil)
)

func newInMemoryMemories() *inMemoryMemories {
	return &inMemoryMemories{memories: make(map[domain.MemoryID]domain.Memory)}
}

func (s *inMemoryMemories) GetMemoryByID(_ context.Context, id domain.MemoryID) (*domain.Memory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	memory, ok := s.memories[id]
	if !ok {
		return nil, nil
	}

	return &memory, nil
}

func (s *inMemoryMemories) CreateMemory(_ context.Context, memory domain.Memory) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.memories[memory.ID]; ok {
		return nil
	}
	s.memories[memory.ID] = memory
	s.created = append(s.created, memory.ID)

	return nil
}

func (s *inMemoryMemories) EnsureConnection(_ context.Context, conn domain.Connection) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, existing := range s.connections {
		if existing.UserID == conn.UserID && existing.RoomID == conn.RoomID {
			s.connections[i] = conn
			return nil
		}
	}
	s.connections = append(s.connections, conn)

	return nil
}

func (s *inMemoryMemories) Created() []domain.MemoryID {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.MemoryID(nil), s.created...)
}

func (s *inMemoryMemories) Connections() []domain.Connection {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]domain.Connection(nil), s.connections...)
}

// staticSessions hands out a fixed session and counts calls.
type staticSessions struct {
	mu      sync.Mutex
	session domain.Session
	err     error
	calls   int
}

func (s *staticSessions) EnsureAuthenticated(context.Context) (domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.calls++
	return s.session, s.err
}

func newTestSessions() *staticSessions {
	return &staticSessions{session: domain.Session{AccessToken: "access", Account: selfAccount}}
}

func newTestCache() *cache.Store {
	return cache.NewStore(nil)
}

func textPost(id domain.PostID, author domain.Account, content string) domain.Post {
	return domain.Post{
		ID:        id,
		Author:    author,
		Metadata:  domain.PostMetadata{Kind: domain.MetadataKindTextOnly, Content: content},
		Timestamp: testNow.Add(time.Minute),
	}
}

func commentPost(id domain.PostID, author domain.Account, content string, parent domain.PostID) domain.Post {
	post := textPost(id, author, content)
	post.CommentOn = &domain.PostRef{ID: parent}
	return post
}

func newTestPrompts(t *testing.T) *Prompts {
	t.Helper()

	prompts, err := NewPrompts(domain.Character{
		Name:       "Lens Bot",
		Bio:        []string{"Builds on Lens."},
		Topics:     []string{"zk proofs", "social graphs"},
		Adjectives: []string{"curious", "dry"},
	}, func(int) int { return 0 })
	require.NoError(t, err)

	return prompts
}
