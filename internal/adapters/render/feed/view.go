package feed

import (
	"fmt"
	"time"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

type RenderOptions struct {
	Title string
	Now   time.Time
}

// RenderPosts lays out posts in the order given.
func RenderPosts(posts []domain.Post, opts RenderOptions) (string, error) {
	return run(func(s styles) string {
		return renderPosts(posts, opts, s)
	})
}

func RenderAccount(account domain.Account) (string, error) {
	return run(func(s styles) string {
		return renderAccount(account, s)
	})
}

func renderPosts(posts []domain.Post, opts RenderOptions, s styles) string {
	lines := make([]string, 0, len(posts)+3)
	if opts.Title != "" {
		lines = append(lines, s.title.Render(opts.Title))
	}
	lines = append(lines, s.header.Render(fmt.Sprintf("posts: %d", len(posts))))

	if len(posts) == 0 {
		lines = append(lines, s.empty.Render("No posts."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for _, post := range posts {
		lines = append(lines, s.section.Render(renderPost(post, opts.Now, s)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderPost(post domain.Post, now time.Time, s styles) string {
	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.author.Render(post.Author.DisplayName()),
		" ",
		s.handle.Render("@"+handleOrUnknown(post.Author)),
		" ",
		lipgloss.NewStyle().Foreground(ageColor(post.Timestamp, now)).Render(formatAge(post.Timestamp, now)),
		" ",
		s.meta.Render(string(post.ID)),
	)

	parts := []string{header}
	if post.CommentOn != nil {
		parts = append(parts, s.reply.Render(replyLabel(*post.CommentOn)))
	}

	if text, ok := post.Text(); ok {
		parts = append(parts, s.content.Render(text))
	} else {
		parts = append(parts, s.empty.Render(fmt.Sprintf("  (%s without text)", post.Metadata.Kind)))
	}

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderAccount(account domain.Account, s styles) string {
	lines := []string{
		lipgloss.JoinHorizontal(
			lipgloss.Top,
			s.author.Render(account.DisplayName()),
			" ",
			s.handle.Render("@"+handleOrUnknown(account)),
		),
		field("address", string(account.Address), s),
	}

	for _, f := range []struct{ key, value string }{
		{"namespace", account.Namespace},
		{"username id", account.UsernameID},
		{"bio", account.Bio},
		{"picture", account.Picture},
		{"cover", account.Cover},
	} {
		if f.value != "" {
			lines = append(lines, field(f.key, f.value, s))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func field(key, value string, s styles) string {
	return s.label.Render(key+":") + " " + s.detail.Render(value)
}

func handleOrUnknown(account domain.Account) string {
	if handle := account.Handle(); handle != "" {
		return handle
	}
	return "unknown"
}

func replyLabel(parent domain.PostRef) string {
	if parent.AuthorHandle != "" {
		return fmt.Sprintf("  in reply to @%s (%s)", parent.AuthorHandle, parent.ID)
	}
	return fmt.Sprintf("  in reply to %s", parent.ID)
}

func formatAge(at, now time.Time) string {
	if at.IsZero() {
		return "unknown time"
	}
	if now.IsZero() || at.After(now) {
		return at.Format("Jan 2 15:04")
	}

	age := now.Sub(at)
	switch {
	case age < time.Minute:
		return "just now"
	case age < time.Hour:
		return fmt.Sprintf("%dm ago", int(age.Minutes()))
	case age < 24*time.Hour:
		return fmt.Sprintf("%dh ago", int(age.Hours()))
	case age < 7*24*time.Hour:
		return fmt.Sprintf("%dd ago", int(age.Hours()/24))
	default:
		return at.Format("Jan 2 2006")
	}
}

// ageColor fades from bright white for new posts to grey for posts a day old.
func ageColor(at, now time.Time) lipgloss.Color {
	if at.IsZero() || now.IsZero() || at.After(now) {
		return lipgloss.Color("255")
	}

	window := (24 * time.Hour).Seconds()
	return interpolateColor(window-now.Sub(at).Seconds(), 0, window)
}

func interpolateColor(value, min, max float64) lipgloss.Color {
	if max == min {
		return lipgloss.Color("255")
	}

	normalized := (value - min) / (max - min)
	if normalized < 0 {
		normalized = 0
	}
	if normalized > 1 {
		normalized = 1
	}

	// 240 is faded grey, 255 bright white on the ANSI 256 greyscale ramp.
	return lipgloss.Color(fmt.Sprintf("%d", int(240+15*normalized)))
}
