package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	feedrender "github.com/bnema/lens-agent/internal/adapters/render/feed"
	"github.com/bnema/lens-agent/internal/application"
	"github.com/bnema/lens-agent/internal/domain"
	"github.com/spf13/cobra"
)

type feedFlags struct {
	limit  int
	asJSON bool
}

func (f *feedFlags) register(cmd *cobra.Command, defaultLimit int) {
	cmd.Flags().IntVar(&f.limit, "limit", defaultLimit, "Maximum number of posts (0 for no limit)")
	cmd.Flags().BoolVar(&f.asJSON, "json", false, "Print posts as JSON")
}

func newTimelineCmd(load appLoader) *cobra.Command {
	var (
		flags   feedFlags
		account string
	)

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Show the home timeline of an account (the agent account by default)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			target := domain.EvmAddress(account)
			if target == "" {
				target = app.self()
			}
			if err := target.Validate(); err != nil {
				return err
			}

			posts, err := app.feed.Timeline(cmd.Context(), target, flags.limit)
			if err != nil {
				return err
			}

			return writePosts(cmd, posts, fmt.Sprintf("Timeline for %s", target), flags.asJSON)
		},
	}

	flags.register(cmd, application.DefaultTimelineLimit)
	cmd.Flags().StringVar(&account, "account", "", "Account address")

	return cmd
}

func newMentionsCmd(load appLoader) *cobra.Command {
	var flags feedFlags

	cmd := &cobra.Command{
		Use:   "mentions",
		Short: "Show posts that mention or comment on the agent account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			posts, err := app.feed.Mentions(cmd.Context(), flags.limit)
			if err != nil {
				return err
			}

			return writePosts(cmd, posts, fmt.Sprintf("Mentions of %s", app.self()), flags.asJSON)
		},
	}

	flags.register(cmd, application.DefaultMentionsLimit)

	return cmd
}

func newPostsCmd(load appLoader) *cobra.Command {
	var (
		flags   feedFlags
		address string
		handle  string
	)

	cmd := &cobra.Command{
		Use:   "posts",
		Short: "List posts written by an account; needs no signing key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			account, err := lookupAccount(cmd.Context(), app, address, handle)
			if err != nil {
				return err
			}

			posts := app.feed.PostsFor(cmd.Context(), account.Address, flags.limit)
			return writePosts(cmd, posts, fmt.Sprintf("Posts by %s (@%s)", account.DisplayName(), account.Handle()), flags.asJSON)
		},
	}

	flags.register(cmd, application.DefaultTimelineLimit)
	cmd.Flags().StringVar(&address, "address", "", "Author address")
	cmd.Flags().StringVar(&handle, "handle", "", "Author handle")
	cmd.MarkFlagsMutuallyExclusive("address", "handle")

	return cmd
}

func writePosts(cmd *cobra.Command, posts []domain.Post, title string, asJSON bool) error {
	if asJSON {
		if posts == nil {
			posts = []domain.Post{}
		}
		return writeJSON(cmd, posts)
	}

	rendered, err := feedrender.RenderPosts(posts, feedrender.RenderOptions{Title: title, Now: time.Now()})
	if err != nil {
		return fmt.Errorf("render posts: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}

// lookupAccount resolves by handle, then address, then the configured agent account.
func lookupAccount(ctx context.Context, app *app, address, handle string) (domain.Account, error) {
	if handle != "" {
		return app.feed.GetAccountByHandle(ctx, handle)
	}

	target := domain.EvmAddress(address)
	if target == "" {
		target = app.self()
	}
	if target == "" {
		return domain.Account{}, errors.New("pass --address or --handle, or set account.address")
	}
	if err := target.Validate(); err != nil {
		return domain.Account{}, err
	}

	return app.feed.GetAccount(ctx, target)
}
