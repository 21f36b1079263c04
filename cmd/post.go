package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/lens-agent/internal/domain"
	"github.com/spf13/cobra"
)

func newPostCmd(load appLoader) *cobra.Command {
	var (
		text    string
		replyTo string
		dryRun  bool
	)

	cmd := &cobra.Command{
		Use:   "post",
		Short: "Publish a text post, or a reply with --reply-to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			text = strings.TrimSpace(text)
			if text == "" {
				return errors.New("--text must not be empty")
			}
			metadata := domain.NewTextOnlyMetadata(text)

			if dryRun {
				return writeJSON(cmd, metadata)
			}

			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			if app.cfg.DryRun {
				return writeJSON(cmd, metadata)
			}
			if err := app.cfg.Validate(); err != nil {
				return err
			}

			publisher, err := app.publisher(cmd.Context())
			if err != nil {
				return err
			}

			var parent *domain.PostID
			if replyTo != "" {
				id := domain.PostID(replyTo)
				parent = &id
			}

			var post domain.Post
			err = runWithSpinner(cmd.Context(), cmd.ErrOrStderr(), "Publishing post...", func(ctx context.Context) error {
				var publishErr error
				post, publishErr = publisher.Publish(ctx, metadata, nil, parent)
				return publishErr
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "published %s\n", post.ID)
			return err
		},
	}

	cmd.Flags().StringVar(&text, "text", "", "Post content")
	cmd.Flags().StringVar(&replyTo, "reply-to", "", "Post ID to comment on")
	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "Print the post metadata instead of publishing")
	_ = cmd.MarkFlagRequired("text")

	return cmd
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
