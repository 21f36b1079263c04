package application

import (
	"context"
	"errors"
	"testing"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type mapPosts struct {
	posts map[domain.PostID]domain.Post
	err   error
	calls int
}

func (m *mapPosts) GetPost(_ context.Context, id domain.PostID) (*domain.Post, error) {
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	post, ok := m.posts[id]
	if !ok {
		return nil, nil
	}
	return &post, nil
}

func newPostMap(posts ...domain.Post) *mapPosts {
	m := &mapPosts{posts: make(map[domain.PostID]domain.Post)}
	for _, post := range posts {
		m.posts[post.ID] = post
	}
	return m
}

func postIDs(posts []domain.Post) []domain.PostID {
	ids := make([]domain.PostID, 0, len(posts))
	for _, post := range posts {
		ids = append(ids, post.ID)
	}
	return ids
}

func TestThreadBuilderReturnsOldestFirstAndRemembersEveryPost(t *testing.T) {
	t.Parallel()

	root := textPost("root", selfAccount, "thoughts on rollups")
	middle := commentPost("middle", alice, "which one?", "root")
	leaf := commentPost("leaf", alice, "@lensbot answer me", "middle")
	memories := newInMemoryMemories()
	builder := NewThreadBuilder(newPostMap(root, middle), memories, memories, testAgentID, newFakeClock(), nil)

	thread, err := builder.Build(context.Background(), leaf)
	require.NoError(t, err)
	assert.Equal(t, []domain.PostID{"root", "middle", "leaf"}, postIDs(thread))

	for _, id := range []domain.PostID{"root", "middle", "leaf"} {
		memory, err := memories.GetMemoryByID(context.Background(), domain.NewMemoryID(id, testAgentID))
		require.NoError(t, err)
		require.NotNil(t, memory, "memory of %s", id)
		assert.Equal(t, domain.NewRoomID(id, testAgentID), memory.RoomID)
		assert.Equal(t, testNow, memory.CreatedAt)
	}

	leafMemory, _ := memories.GetMemoryByID(context.Background(), domain.NewMemoryID("leaf", testAgentID))
	require.NotNil(t, leafMemory.Content.CommentOn)
	assert.Equal(t, domain.NewMemoryID("middle", testAgentID), *leafMemory.Content.CommentOn)
	assert.Len(t, memories.Connections(), 3)
}

func TestThreadBuilderTerminatesOnCycle(t *testing.T) {
	t.Parallel()

	a := commentPost("a", alice, "first", "b")
	b := commentPost("b", alice, "second", "a")
	posts := newPostMap(a, b)
	memories := newInMemoryMemories()
	builder := NewThreadBuilder(posts, memories, memories, testAgentID, newFakeClock(), nil)

	thread, err := builder.Build(context.Background(), a)
	require.NoError(t, err)
	assert.Equal(t, []domain.PostID{"b", "a"}, postIDs(thread))
	assert.Equal(t, 2, posts.calls)
}

func TestThreadBuilderStopsAtMissingParent(t *testing.T) {
	t.Parallel()

	leaf := commentPost("leaf", alice, "orphan", "deleted")
	memories := newInMemoryMemories()
	builder := NewThreadBuilder(newPostMap(), memories, memories, testAgentID, newFakeClock(), nil)

	thread, err := builder.Build(context.Background(), leaf)
	require.NoError(t, err)
	assert.Equal(t, []domain.PostID{"leaf"}, postIDs(thread))
}

func TestThreadBuilderStopsWhenParentLookupFails(t *testing.T) {
	t.Parallel()

	posts := newPostMap()
	posts.err = errors.New("graphql unavailable")
	memories := newInMemoryMemories()
	builder := NewThreadBuilder(posts, memories, memories, testAgentID, newFakeClock(), nil)

	thread, err := builder.Build(context.Background(), commentPost("leaf", alice, "hi", "parent"))
	require.NoError(t, err)
	assert.Len(t, thread, 1)
}

func TestThreadBuilderKeepsExistingMemories(t *testing.T) {
	t.Parallel()

	root := textPost("root", alice, "original")
	memories := newInMemoryMemories()
	existing := domain.NewPostMemory(root, testAgentID, domain.NewNamedRoomID("elsewhere"), testNow.Add(-1))
	require.NoError(t, memories.CreateMemory(context.Background(), existing))

	builder := NewThreadBuilder(newPostMap(), memories, memories, testAgentID, newFakeClock(), nil)
	_, err := builder.Build(context.Background(), root)
	require.NoError(t, err)

	got, _ := memories.GetMemoryByID(context.Background(), existing.ID)
	assert.Equal(t, existing, *got)
	assert.Empty(t, memories.Connections())
}

func TestThreadBuilderStoreFailures(t *testing.T) {
	t.Parallel()

	post := textPost("root", alice, "gm")
	memoryID := domain.NewMemoryID("root", testAgentID)
	storeErr := errors.New("mongo unavailable")

	tests := []struct {
		name   string
		expect func(memories *mocks.MockMemoryStore, rooms *mocks.MockRoomRegistry)
		want   string
	}{
		{
			name: "memory lookup fails",
			expect: func(memories *mocks.MockMemoryStore, _ *mocks.MockRoomRegistry) {
				memories.EXPECT().GetMemoryByID(mock.Anything, memoryID).Return(nil, storeErr).Once()
			},
			want: "get memory of post root",
		},
		{
			name: "connection fails before memory is written",
			expect: func(memories *mocks.MockMemoryStore, rooms *mocks.MockRoomRegistry) {
				memories.EXPECT().GetMemoryByID(mock.Anything, memoryID).Return(nil, nil).Once()
				rooms.EXPECT().EnsureConnection(mock.Anything, mock.Anything).Return(storeErr).Once()
			},
			want: "connect",
		},
		{
			name: "memory write fails",
			expect: func(memories *mocks.MockMemoryStore, rooms *mocks.MockRoomRegistry) {
				memories.EXPECT().GetMemoryByID(mock.Anything, memoryID).Return(nil, nil).Once()
				rooms.EXPECT().EnsureConnection(mock.Anything, mock.Anything).Return(nil).Once()
				memories.EXPECT().CreateMemory(mock.Anything, mock.MatchedBy(func(m domain.Memory) bool {
					return m.ID == memoryID
				})).Return(storeErr).Once()
			},
			want: "create memory of post root",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			memories := mocks.NewMockMemoryStore(t)
			rooms := mocks.NewMockRoomRegistry(t)
			tt.expect(memories, rooms)

			builder := NewThreadBuilder(newPostMap(), memories, rooms, testAgentID, newFakeClock(), nil)
			_, err := builder.Build(context.Background(), post)
			require.ErrorIs(t, err, storeErr)
			assert.ErrorContains(t, err, tt.want)
		})
	}
}

func TestThreadBuilderSkipsKnownPosts(t *testing.T) {
	t.Parallel()

	post := textPost("root", alice, "gm")
	memories := mocks.NewMockMemoryStore(t)
	rooms := mocks.NewMockRoomRegistry(t)
	memories.EXPECT().GetMemoryByID(mock.Anything, domain.NewMemoryID("root", testAgentID)).
		Return(&domain.Memory{ID: domain.NewMemoryID("root", testAgentID)}, nil).Once()

	builder := NewThreadBuilder(newPostMap(), memories, rooms, testAgentID, newFakeClock(), nil)
	thread, err := builder.Build(context.Background(), post)
	require.NoError(t, err)
	assert.Equal(t, []domain.PostID{"root"}, postIDs(thread))
}
