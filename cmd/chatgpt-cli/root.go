package main

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/minhyannv/chatgpt-cli/pkg/chatgpt"
)

// newRootCmd builds the command surface: an optional positional input
// message and an interactive-mode flag. With neither, one line is read
// from stdin and sent as a single turn.
func newRootCmd() *cobra.Command {
	var (
		interactive bool
		model       string
		timeout     time.Duration
		verbose     bool
	)

	cmd := &cobra.Command{
		Use:           "chatgpt-cli [input]",
		Short:         "Interact with OpenAI's ChatGPT",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd, model, timeout, verbose)
			if err != nil {
				return err
			}

			client := chatgpt.NewClient(cfg)
			session := chatgpt.NewSession(client, cfg,
				cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
			ctx := cmd.Context()

			if interactive {
				return session.RunInteractive(ctx)
			}

			var input string
			if len(args) == 1 {
				input = strings.TrimSpace(args[0])
			} else {
				scanner := bufio.NewScanner(cmd.InOrStdin())
				if !scanner.Scan() {
					if err := scanner.Err(); err != nil {
						return fmt.Errorf("read input: %w", err)
					}
					return nil
				}
				input = strings.TrimSpace(scanner.Text())
			}

			// Per-turn failures are reported on stderr by the session
			// and do not change the exit status.
			_ = session.RunOnce(ctx, input)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&interactive, "interactive", "i", false, "Enable interactive mode")
	cmd.Flags().StringVar(&model, "model", "", "Model ID (defaults to OPENAI_MODEL or "+chatgpt.DefaultModel+")")
	cmd.Flags().DurationVar(&timeout, "timeout", chatgpt.DefaultTimeout, "Per-request timeout (0 disables)")
	cmd.Flags().BoolVar(&verbose, "verbose", false, "Verbose request logging")

	return cmd
}
