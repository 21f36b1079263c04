package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

// appLoader wires the application for commands that need configuration. Commands that
// never touch it (version, post --dry-run) do not pay for it.
type appLoader func() (*app, error)

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:           "lensagent",
		Short:         "Autonomous Lens agent: replies to mentions and posts on a schedule",
		Long:          "lensagent runs a character-driven agent on a Lens account. It answers mentions, posts original content at random intervals, and offers one-shot commands to publish and read the feed from the terminal.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "config file (default $HOME/.config/lensagent/config.toml)")

	load := func() (*app, error) {
		return wireApp(configPath)
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(load),
		newPostCmd(load),
		newTimelineCmd(load),
		newMentionsCmd(load),
		newPostsCmd(load),
		newAccountCmd(load),
		newKeyCmd(load),
	)

	return rootCmd
}
