// Copyright (c) 2025 Nikita Kamenev
// Licensed under the MIT License. See LICENSE file in the project root for details.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/nekitakamenev/fmindex"
	"github.com/spf13/cobra"
)

// options holds the persistent flags shared by every subcommand.
type options struct {
	file     string
	doubling bool
	nfc      bool
	verbose  bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	root := &cobra.Command{
		Use:   "fmindex",
		Short: "Build an FM-index over a text and query it",
		Long: `Build an FM-index over a text and query it.

The text is given as the first argument, or read from a file with --file.
The symbol '$' is reserved as the sentinel and may not appear in the text.

Examples:
  fmindex bwt banana
  fmindex search mississippi ssi
  fmindex count --file book.txt whale`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.file, "file", "",
		"Read the text from a file instead of the first argument")
	root.PersistentFlags().BoolVar(&opts.doubling, "doubling", false,
		"Build the suffix array by prefix doubling")
	root.PersistentFlags().BoolVar(&opts.nfc, "nfc", false,
		"Apply Unicode NFC normalization to the text and patterns")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false,
		"Log construction stages to stderr")

	root.AddCommand(
		newBWTCmd(opts),
		newBWMCmd(opts),
		newInvertCmd(opts),
		newSearchCmd(opts),
		newCountCmd(opts),
		newLocateCmd(opts),
	)
	return root
}

// textArgs returns the number of positional arguments a command takes when
// the text is passed inline alongside extra arguments.
func (o *options) textArgs(extra int) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if o.file != "" {
			return cobra.ExactArgs(extra)(cmd, args)
		}
		return cobra.ExactArgs(extra+1)(cmd, args)
	}
}

// loadText returns the text and the remaining arguments.
func (o *options) loadText(args []string) (string, []string, error) {
	if o.file == "" {
		return args[0], args[1:], nil
	}
	data, err := os.ReadFile(o.file)
	if err != nil {
		return "", nil, fmt.Errorf("read text: %w", err)
	}
	return string(data), args, nil
}

func (o *options) indexOptions() []fmindex.Option {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
	opts := []fmindex.Option{fmindex.WithLogger(logger)}
	if o.doubling {
		opts = append(opts, fmindex.WithConstruction(fmindex.PrefixDoubling))
	}
	if o.nfc {
		opts = append(opts, fmindex.WithNormalization())
	}
	return opts
}

// build loads the text and builds the index over it.
func (o *options) build(args []string) (*fmindex.Index, string, []string, error) {
	text, rest, err := o.loadText(args)
	if err != nil {
		return nil, "", nil, err
	}
	ix, err := fmindex.Build(text, o.indexOptions()...)
	if err != nil {
		return nil, "", nil, err
	}
	return ix, text, rest, nil
}

func newBWTCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bwt [TEXT]",
		Short: "Print the Burrows-Wheeler transform and its run count",
		Args:  opts.textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, _, _, err := opts.build(args)
			if err != nil {
				return err
			}
			bwt, err := ix.BWT()
			if err != nil {
				return err
			}
			r, err := ix.ComputeR()
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s\nruns: %d\n", bwt, r)
			return nil
		},
	}
}

func newBWMCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "bwm [TEXT]",
		Short: "Print the Burrows-Wheeler matrix, one row per line",
		Long: `Print the sorted rotation matrix as "index:<TAB>row" lines.

The matrix is quadratic in the text length; use it on short texts.`,
		Args: opts.textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, text, _, err := opts.build(args)
			if err != nil {
				return err
			}
			return ix.PrintBWM(cmd.OutOrStdout(), text)
		},
	}
}

func newInvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "invert [TEXT]",
		Short: "Rebuild the text from its Burrows-Wheeler transform",
		Args:  opts.textArgs(0),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, _, _, err := opts.build(args)
			if err != nil {
				return err
			}
			text, err := ix.InverseBWT()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), text)
			return nil
		},
	}
}

func newSearchCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "search [TEXT] PATTERN",
		Short: "Print the matrix rows whose rotations start with PATTERN",
		Args:  opts.textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, _, rest, err := opts.build(args)
			if err != nil {
				return err
			}
			iv, ok, err := ix.BackwardSearch(rest[0])
			if err != nil {
				return err
			}
			if !ok {
				fmt.Fprintln(cmd.OutOrStdout(), "no match")
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%d\t%d\n", iv.Top, iv.Bottom)
			return nil
		},
	}
}

func newCountCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "count [TEXT] PATTERN",
		Short: "Count the occurrences of PATTERN",
		Args:  opts.textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, _, rest, err := opts.build(args)
			if err != nil {
				return err
			}
			n, err := ix.CountOccurrences(rest[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), n)
			return nil
		},
	}
}

func newLocateCmd(opts *options) *cobra.Command {
	var first bool
	cmd := &cobra.Command{
		Use:   "locate [TEXT] PATTERN",
		Short: "Print the text offsets where PATTERN occurs",
		Args:  opts.textArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ix, _, rest, err := opts.build(args)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			if first {
				off, ok, err := ix.FirstOccurrence(rest[0])
				if err != nil {
					return err
				}
				if ok {
					fmt.Fprintln(out, off)
				}
				return nil
			}
			offsets, err := ix.Locate(rest[0])
			if err != nil {
				return err
			}
			for _, off := range offsets {
				fmt.Fprintln(out, off)
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&first, "first", false, "Print only the smallest offset")
	return cmd
}
