package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/hero-sheet/internal/errors"
	"github.com/KirkDiggler/hero-sheet/internal/locale"
)

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format <number>",
		Short: "Print a number the way the locale writes it",
		Example: `  sheet format 1234.5
  sheet --locale de-DE format 1234.5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := codecFor(opts, cmd)
			if err != nil {
				return err
			}

			// the argument is machine notation, so it is read without locale separators
			n, err := locale.ParseCanonical(args[0])
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), codec.FormatNumber(n))
			return err
		},
	}
}

func newParseCmd(opts *options) *cobra.Command {
	var asInt bool

	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Read locale formatted text as a number",
		Example: `  sheet parse 1,234.5
  sheet --locale de-DE parse 1.234,5 --int`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			codec, err := codecFor(opts, cmd)
			if err != nil {
				return err
			}

			kind := locale.KindFloat
			if asInt {
				kind = locale.KindInt
			}

			n, err := codec.Parse(args[0], kind)
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), locale.FormatCanonical(n))
			return err
		},
	}

	cmd.Flags().BoolVar(&asInt, "int", false, "parse a whole number, dropping any fraction")

	return cmd
}

func codecFor(opts *options, cmd *cobra.Command) (locale.Codec, error) {
	cfg, err := opts.config(cmd)
	if err != nil {
		return nil, err
	}

	codec, err := newCodec(cfg)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to set up locale %s", cfg.Locale)
	}
	return codec, nil
}
