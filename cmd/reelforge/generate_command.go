package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harshvardhanraju/video-content-creator/internal/safety"
	"github.com/harshvardhanraju/video-content-creator/internal/usecase"
)

func newGenerateCommand() *cobra.Command {
	var fromText string

	cmd := &cobra.Command{
		Use:   "generate [topic]",
		Short: "Research a topic and produce the full video",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			topic := strings.TrimSpace(strings.Join(args, " "))
			if topic == "" && fromText == "" {
				return fmt.Errorf("provide a topic argument or --from-text")
			}
			if topic != "" && fromText != "" {
				return fmt.Errorf("topic argument and --from-text are mutually exclusive")
			}

			application := buildApp()
			defer application.Close()

			var (
				result usecase.Result
				err    error
			)
			if topic != "" {
				result, err = application.GenerateFromTopic(cmd.Context(), topic, false)
			} else {
				result, err = application.GenerateFromText(cmd.Context(), fromText, false)
			}

			if errors.Is(err, usecase.ErrBlocked) {
				fmt.Fprintln(cmd.OutOrStdout(), safety.FormatReport(result.Safety))
				return err
			}
			if err != nil {
				return err
			}

			printResult(cmd, result)
			return nil
		},
	}

	cmd.Flags().StringVar(&fromText, "from-text", "", "Build from raw text or a text file path instead of researching")

	return cmd
}

func printResult(cmd *cobra.Command, result usecase.Result) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Run %s (%s)\n", result.RunID, result.Status)
	fmt.Fprintf(out, "  scenes: %d, duration: %.1fs\n", len(result.Script.Scenes), result.Script.TotalDuration)
	fmt.Fprintf(out, "  script: %s\n", result.ScriptPath)
	if result.AudioPath != "" {
		fmt.Fprintf(out, "  audio:  %s\n", result.AudioPath)
	}
	if result.SRTPath != "" {
		fmt.Fprintf(out, "  srt:    %s\n", result.SRTPath)
	}
	if result.VideoPath != "" {
		fmt.Fprintf(out, "  video:  %s\n", result.VideoPath)
	}
}
