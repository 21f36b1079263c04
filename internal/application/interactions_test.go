package application

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/bnema/lens-agent/internal/ports"
	"github.com/bnema/lens-agent/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fakeFeed struct {
	account  domain.Account
	mentions []domain.Post
	timeline []domain.Post
	err      error
}

func (f *fakeFeed) Mentions(context.Context, int) ([]domain.Post, error) {
	return f.mentions, f.err
}

func (f *fakeFeed) Timeline(context.Context, domain.EvmAddress, int) ([]domain.Post, error) {
	return f.timeline, nil
}

func (f *fakeFeed) GetAccount(context.Context, domain.EvmAddress) (domain.Account, error) {
	return f.account, nil
}

type publishCall struct {
	text   string
	parent *domain.PostID
}

type fakePublisher struct {
	mu    sync.Mutex
	calls []publishCall
	err   error
}

func (p *fakePublisher) Publish(_ context.Context, body any, _ ports.StorageProvider, parent *domain.PostID) (domain.Post, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	metadata := body.(domain.TextOnlyMetadata)
	p.calls = append(p.calls, publishCall{text: metadata.Lens.Content, parent: parent})
	if p.err != nil {
		return domain.Post{}, p.err
	}

	post := textPost(domain.PostID("reply-"+metadata.Lens.ID), selfAccount, metadata.Lens.Content)
	if parent != nil {
		post.CommentOn = &domain.PostRef{ID: *parent}
	}
	return post, nil
}

func (p *fakePublisher) Calls() []publishCall {
	p.mu.Lock()
	defer p.mu.Unlock()

	return append([]publishCall(nil), p.calls...)
}

type interactionFixture struct {
	feed      *fakeFeed
	publisher *fakePublisher
	runtime   *mocks.MockAgentRuntime
	memories  *inMemoryMemories
	cfg       InteractionConfig
}

func newInteractionFixture(t *testing.T, mentions ...domain.Post) *interactionFixture {
	t.Helper()

	return &interactionFixture{
		feed:      &fakeFeed{account: selfAccount, mentions: mentions},
		publisher: &fakePublisher{},
		runtime:   mocks.NewMockAgentRuntime(t),
		memories:  newInMemoryMemories(),
		cfg: InteractionConfig{
			AgentID:   testAgentID,
			Self:      selfAddress,
			StartedAt: testNow,
		},
	}
}

func (f *interactionFixture) loop(t *testing.T, posts ...domain.Post) *InteractionLoop {
	t.Helper()

	clock := newFakeClock()
	thread := NewThreadBuilder(newPostMap(posts...), f.memories, f.memories, testAgentID, clock, nil)
	return NewInteractionLoop(f.feed, thread, f.publisher, f.runtime, nil, f.memories, f.memories, newTestPrompts(t), clock, f.cfg, nil)
}

func TestInteractionLoopRepliesToMention(t *testing.T) {
	t.Parallel()

	root := textPost("root", selfAccount, "zk is eating the world")
	mention := commentPost("mention", alice, "@lensbot which proof system?", "root")
	f := newInteractionFixture(t, mention)

	f.runtime.EXPECT().ShouldRespond(mock.Anything, mock.MatchedBy(func(prompt string) bool {
		return strings.Contains(prompt, "@alice") && strings.Contains(prompt, "which proof system?")
	})).Return(domain.DecisionRespond, nil).Once()
	f.runtime.EXPECT().GenerateText(mock.Anything, mock.AnythingOfType("string")).Return("  Plonk, mostly.  ", nil).Once()

	require.NoError(t, f.loop(t, root).Tick(context.Background()))

	calls := f.publisher.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, "Plonk, mostly.", calls[0].text)
	require.NotNil(t, calls[0].parent)
	assert.Equal(t, domain.PostID("mention"), *calls[0].parent)

	created := f.memories.Created()
	require.Len(t, created, 3)
	reply, err := f.memories.GetMemoryByID(context.Background(), created[2])
	require.NoError(t, err)
	require.NotNil(t, reply.Content.InReplyTo)
	assert.Equal(t, domain.NewMemoryID("mention", testAgentID), *reply.Content.InReplyTo)
	assert.Equal(t, "RESPOND", reply.Content.Action)
	assert.Equal(t, domain.NewRoomID("mention", testAgentID), reply.RoomID)
	assert.Equal(t, "Plonk, mostly.", reply.Content.Text)
}

func TestInteractionLoopSkipsBeforeAnySideEffect(t *testing.T) {
	t.Parallel()

	handled := textPost("handled", alice, "@lensbot again")
	old := textPost("old", alice, "@lensbot from yesterday")
	old.Timestamp = testNow.Add(-24 * time.Hour)
	own := textPost("own", selfAccount, "talking to myself")
	own.Author.Address = domain.EvmAddress(strings.ToUpper(string(selfAddress[:2])) + string(selfAddress[2:]))

	f := newInteractionFixture(t, handled, old, own)
	require.NoError(t, f.memories.CreateMemory(context.Background(),
		domain.NewPostMemory(handled, testAgentID, domain.NewRoomID(handled.ID, testAgentID), testNow)))

	require.NoError(t, f.loop(t).Tick(context.Background()))

	f.runtime.AssertNotCalled(t, "ShouldRespond", mock.Anything, mock.Anything)
	assert.Empty(t, f.publisher.Calls())
	assert.Len(t, f.memories.Created(), 1)
	assert.Empty(t, f.memories.Connections())
}

func TestInteractionLoopSecondTickSkipsHandledMention(t *testing.T) {
	t.Parallel()

	mention := textPost("mention", alice, "@lensbot hello")
	f := newInteractionFixture(t, mention)
	f.runtime.EXPECT().ShouldRespond(mock.Anything, mock.Anything).Return(domain.DecisionIgnore, nil).Once()

	loop := f.loop(t)
	require.NoError(t, loop.Tick(context.Background()))
	require.NoError(t, loop.Tick(context.Background()))

	f.runtime.AssertNumberOfCalls(t, "ShouldRespond", 1)
	f.runtime.AssertNotCalled(t, "GenerateText", mock.Anything, mock.Anything)
}

func TestInteractionLoopDryRunNeverPublishes(t *testing.T) {
	t.Parallel()

	mention := textPost("mention", alice, "@lensbot thoughts?")
	f := newInteractionFixture(t, mention)
	f.cfg.DryRun = true
	f.runtime.EXPECT().ShouldRespond(mock.Anything, mock.Anything).Return(domain.DecisionRespond, nil).Once()
	f.runtime.EXPECT().GenerateText(mock.Anything, mock.Anything).Return("many", nil).Once()

	require.NoError(t, f.loop(t).Tick(context.Background()))

	assert.Empty(t, f.publisher.Calls())
	assert.Equal(t, []domain.MemoryID{domain.NewMemoryID("mention", testAgentID)}, f.memories.Created())
}

func TestInteractionLoopContinuesPastFailingMention(t *testing.T) {
	t.Parallel()

	first := textPost("first", alice, "@lensbot one")
	second := textPost("second", alice, "@lensbot two")
	f := newInteractionFixture(t, first, second)

	f.runtime.EXPECT().ShouldRespond(mock.Anything, mock.MatchedBy(func(p string) bool { return strings.Contains(p, "@lensbot one") })).
		Return(domain.DecisionIgnore, errors.New("model overloaded")).Once()
	f.runtime.EXPECT().ShouldRespond(mock.Anything, mock.MatchedBy(func(p string) bool { return strings.Contains(p, "@lensbot two") })).
		Return(domain.DecisionRespond, nil).Once()
	f.runtime.EXPECT().GenerateText(mock.Anything, mock.Anything).Return("two it is", nil).Once()

	err := f.loop(t).Tick(context.Background())
	require.Error(t, err)
	assert.ErrorContains(t, err, "mention first")
	assert.ErrorContains(t, err, "model overloaded")

	calls := f.publisher.Calls()
	require.Len(t, calls, 1)
	assert.Equal(t, domain.PostID("second"), *calls[0].parent)
}

func TestInteractionLoopPublishFailureSkipsReplyMemory(t *testing.T) {
	t.Parallel()

	mention := textPost("mention", alice, "@lensbot ping")
	f := newInteractionFixture(t, mention)
	f.publisher.err = &domain.PostNotVisibleError{Hash: "0xdead", Attempts: 5}
	f.runtime.EXPECT().ShouldRespond(mock.Anything, mock.Anything).Return(domain.DecisionRespond, nil).Once()
	f.runtime.EXPECT().GenerateText(mock.Anything, mock.Anything).Return("pong", nil).Once()

	err := f.loop(t).Tick(context.Background())
	assert.ErrorIs(t, err, domain.ErrPostNotVisible)
	assert.Len(t, f.memories.Created(), 1)
}
