// Package main is the entry point for the hero sheet CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hero-sheet/internal/config"
	"github.com/KirkDiggler/hero-sheet/internal/errors"
)

// options are the persistent flags shared by every command
type options struct {
	locale   string
	dark     bool
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:   "sheet",
		Short: "Hero character sheet editor",
		Long: `Edit a superhero character sheet from the terminal. Numbers are read and
written in the configured locale; totals and modifiers are derived as you type.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&opts.locale, "locale", "", "number locale, overrides SHEET_LOCALE")
	flags.BoolVar(&opts.dark, "dark", false, "start new sheets on the dark theme, overrides SHEET_PREFER_DARK")
	flags.StringVar(&opts.logLevel, "log-level", "", "debug, info, warn or error, overrides SHEET_LOG_LEVEL")

	rootCmd.AddCommand(newShellCmd(opts))
	rootCmd.AddCommand(newFormatCmd(opts))
	rootCmd.AddCommand(newParseCmd(opts))

	return rootCmd
}

// config loads the environment and applies any flags set on the command line
func (o *options) config(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()
	if flags.Changed("locale") {
		cfg.Locale = o.locale
	}
	if flags.Changed("dark") {
		cfg.PreferDark = o.dark
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = o.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid configuration")
	}

	return cfg, nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", errors.GetMessageChain(err))
		os.Exit(errors.GetCode(err).ExitCode())
	}
}
