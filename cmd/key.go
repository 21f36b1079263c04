package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

const defaultKeyRef = "lensagent/wallet"

func newKeyCmd(load appLoader) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Manage the wallet key in the secret store",
	}

	cmd.AddCommand(
		newKeySetCmd(load),
		newKeyDeleteCmd(load),
	)

	return cmd
}

func newKeySetCmd(load appLoader) *cobra.Command {
	var (
		ref   string
		value string
	)

	cmd := &cobra.Command{
		Use:   "set",
		Short: "Store a wallet private key under a secret reference",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.secrets.Put(cmd.Context(), ref, value); err != nil {
				return fmt.Errorf("store key %s: %w", ref, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "stored key %s; set wallet.private_key_ref = %q to use it\n", ref, ref)
			return err
		},
	}

	cmd.Flags().StringVar(&ref, "ref", defaultKeyRef, "Secret reference")
	cmd.Flags().StringVar(&value, "value", "", "Hex-encoded private key")
	_ = cmd.MarkFlagRequired("value")

	return cmd
}

func newKeyDeleteCmd(load appLoader) *cobra.Command {
	var ref string

	cmd := &cobra.Command{
		Use:   "delete",
		Short: "Remove a stored wallet key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			app, err := load()
			if err != nil {
				return err
			}
			defer app.Close()

			if err := app.secrets.Delete(cmd.Context(), ref); err != nil {
				return fmt.Errorf("delete key %s: %w", ref, err)
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "deleted key %s\n", ref)
			return err
		},
	}

	cmd.Flags().StringVar(&ref, "ref", defaultKeyRef, "Secret reference")

	return cmd
}
