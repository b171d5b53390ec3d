package main

import (
	"github.com/spf13/cobra"

	"github.com/harshvardhanraju/video-content-creator/internal/app"
	"github.com/harshvardhanraju/video-content-creator/internal/config"
	"github.com/harshvardhanraju/video-content-creator/internal/logging"
)

func newRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "reelforge",
		Short:         "Turn a topic or text into a narrated short-form video",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newGenerateCommand())
	rootCmd.AddCommand(newScriptCommand())
	rootCmd.AddCommand(newRunsCommand())

	return rootCmd
}

// buildApp loads configuration and wires the application. Every
// subcommand shares this entry point so overrides behave identically.
func buildApp() *app.Application {
	cfg := config.Load()
	logger := logging.New(cfg.Logging.Level)
	return app.New(cfg, logger)
}
