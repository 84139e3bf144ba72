package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hero-sheet/internal/handlers/shell"
)

func newShellCmd(opts *options) *cobra.Command {
	var prompt string

	cmd := &cobra.Command{
		Use:   "shell",
		Short: "Edit a sheet interactively",
		Long: `Open a new sheet and read commands from standard input until quit or end of
input. Type help for the command list.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := opts.config(cmd)
			if err != nil {
				return err
			}
			logger := cfg.NewLogger(cmd.ErrOrStderr())

			ctx, cancel := context.WithCancel(cmd.Context())
			defer cancel()

			sigChan := make(chan os.Signal, 1)
			signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
			defer signal.Stop(sigChan)

			go func() {
				select {
				case <-sigChan:
					logger.Info("received shutdown signal, closing sheet")
					cancel()
				case <-ctx.Done():
				}
			}()

			svc, err := newEditor(cfg, logger)
			if err != nil {
				return err
			}

			handler, err := shell.NewHandler(&shell.HandlerConfig{
				EditorService: svc,
				Output:        cmd.OutOrStdout(),
				Prompt:        prompt,
				Logger:        logger,
			})
			if err != nil {
				return err
			}

			sheetID, err := handler.Open(ctx)
			if err != nil {
				return err
			}

			return handler.Run(ctx, sheetID, cmd.InOrStdin())
		},
	}

	cmd.Flags().StringVar(&prompt, "prompt", "sheet> ", "prompt shown before each command")

	return cmd
}
