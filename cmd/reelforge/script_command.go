package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/harshvardhanraju/video-content-creator/internal/safety"
	"github.com/harshvardhanraju/video-content-creator/internal/usecase"
)

func newScriptCommand() *cobra.Command {
	var fromText string

	cmd := &cobra.Command{
		Use:   "script [topic]",
		Short: "Produce only the script and safety report, no media rendering",
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
				result, err = application.GenerateFromTopic(cmd.Context(), topic, true)
			} else {
				result, err = application.GenerateFromText(cmd.Context(), fromText, true)
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
