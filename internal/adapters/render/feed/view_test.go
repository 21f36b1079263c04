package feed

import (
	"testing"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func alice() domain.Account {
	return domain.Account{Address: "0x00000000000000000000000000000000000000b2", LocalName: "alice", Name: "Alice"}
}

func TestRenderPostsShowsAuthorsRepliesAndText(t *testing.T) {
	output, err := RenderPosts([]domain.Post{
		{
			ID:        "0x01",
			Author:    alice(),
			Metadata:  domain.PostMetadata{Kind: domain.MetadataKindTextOnly, Content: "gm lens"},
			Timestamp: now.Add(-90 * time.Minute),
		},
		{
			ID:        "0x02",
			Author:    domain.Account{Address: "0x00000000000000000000000000000000000000a1", LocalName: "lensbot"},
			CommentOn: &domain.PostRef{ID: "0x01", AuthorHandle: "alice"},
			Metadata:  domain.PostMetadata{Kind: domain.MetadataKindTextOnly, Content: "gm alice"},
			Timestamp: now.Add(-30 * time.Second),
		},
	}, RenderOptions{Title: "Timeline for @lensbot", Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "Timeline for @lensbot")
	assert.Contains(t, output, "posts: 2")
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "@alice")
	assert.Contains(t, output, "1h ago")
	assert.Contains(t, output, "just now")
	assert.Contains(t, output, "in reply to @alice (0x01)")
	assert.Contains(t, output, "gm alice")
}

func TestRenderPostsEmpty(t *testing.T) {
	output, err := RenderPosts(nil, RenderOptions{})

	require.NoError(t, err)
	assert.Contains(t, output, "posts: 0")
	assert.Contains(t, output, "No posts.")
}

func TestRenderPostWithoutText(t *testing.T) {
	output, err := RenderPosts([]domain.Post{{
		ID:       "0x03",
		Author:   alice(),
		Metadata: domain.PostMetadata{Kind: domain.MetadataKindUnknown},
	}}, RenderOptions{Now: now})

	require.NoError(t, err)
	assert.Contains(t, output, "unknown time")
	assert.Contains(t, output, "(UnknownPostMetadata without text)")
}

func TestRenderAccountSkipsEmptyFields(t *testing.T) {
	account := alice()
	account.Bio = "builds things"

	output, err := RenderAccount(account)

	require.NoError(t, err)
	assert.Contains(t, output, "Alice")
	assert.Contains(t, output, "address: 0x00000000000000000000000000000000000000b2")
	assert.Contains(t, output, "bio: builds things")
	assert.NotContains(t, output, "picture:")
}

func TestFormatAge(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		at   time.Time
		want string
	}{
		{name: "zero", at: time.Time{}, want: "unknown time"},
		{name: "seconds", at: now.Add(-10 * time.Second), want: "just now"},
		{name: "minutes", at: now.Add(-5 * time.Minute), want: "5m ago"},
		{name: "hours", at: now.Add(-3 * time.Hour), want: "3h ago"},
		{name: "days", at: now.Add(-50 * time.Hour), want: "2d ago"},
		{name: "old", at: time.Date(2025, 12, 24, 8, 0, 0, 0, time.UTC), want: "Dec 24 2025"},
		{name: "future", at: now.Add(time.Hour), want: "Mar 1 13:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, formatAge(tt.at, now))
		})
	}
}

func TestAgeColorFadesOverADay(t *testing.T) {
	t.Parallel()

	assert.Equal(t, lipgloss.Color("255"), ageColor(now, now))
	assert.Equal(t, lipgloss.Color("240"), ageColor(now.Add(-48*time.Hour), now))
	assert.Equal(t, lipgloss.Color("255"), ageColor(time.Time{}, now))
}
