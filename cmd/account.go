package cmd

import (
	"fmt"

	feedrender "github.com/bnema/lens-agent/internal/adapters/render/feed"
	"github.com/spf13/cobra"
)

func newAccountCmd(load appLoader) *cobra.Command {
	var (
		address string
		handle  string
		asJSON  bool
	)

	cmd := &cobra.Command{
		Use:   "account",
		Short: "Look up a Lens account by address or handle",
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

			if asJSON {
				return writeJSON(cmd, account)
			}

			rendered, err := feedrender.RenderAccount(account)
			if err != nil {
				return fmt.Errorf("render account: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().StringVar(&address, "address", "", "Account address (defaults to account.address)")
	cmd.Flags().StringVar(&handle, "handle", "", "Account handle, with or without @")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the account as JSON")
	cmd.MarkFlagsMutuallyExclusive("address", "handle")

	return cmd
}
