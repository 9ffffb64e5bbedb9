// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     cmd
// Description: CLI command dispatching a single method call
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/msto63/sptext/foundation/sptext"
	"github.com/msto63/sptext/internal/textio"
)

type callOptions struct {
	typed     bool
	nullToken string
	output    string
}

func newCallCommand(root *rootOptions) *cobra.Command {
	opts := &callOptions{}

	callCmd := &cobra.Command{
		Use:   "call <method> [args...]",
		Short: "Dispatches a method and prints the result",
		Long: `Dispatches a method by name and prints the result.

Arguments are passed as strings. With --typed every argument is read as a
YAML value, so null, 0, false, [] and {} keep their types; quote strings
that must keep surrounding spaces. Without --typed, the --null token marks
an absent argument.

Examples:
  sptext call trim "   hello there!   "
  sptext call trim /dir1/dir2/ /
  sptext call concat ", " John "" Maria NULL Peter --null NULL
  sptext call isEmpty 0 --typed --output json`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCall(cmd, root, opts, args)
		},
	}

	callCmd.Flags().BoolVar(&opts.typed, "typed", false, "decode arguments as YAML values")
	callCmd.Flags().StringVar(&opts.nullToken, "null", "", "token that stands for an absent argument")
	callCmd.Flags().StringVarP(&opts.output, "output", "o", "", "output format: text, json, yaml")
	return callCmd
}

func runCall(cmd *cobra.Command, root *rootOptions, opts *callOptions, args []string) error {
	flags := cmd.Flags()
	if !flags.Changed("typed") {
		opts.typed = root.cfg.GetBool("input.typed", false)
	}
	if !flags.Changed("null") {
		opts.nullToken = root.cfg.GetString("input.null_token")
	}
	if !flags.Changed("output") {
		opts.output = root.cfg.GetString("output.format", textio.OutputText)
	}

	method := args[0]
	callArgs, err := textio.ParseArgs(args[1:], textio.ArgOptions{
		Typed:     opts.typed,
		NullToken: opts.nullToken,
	})
	if err != nil {
		return err
	}

	result, err := sptext.New(sptext.Options{Logger: root.logger}).Dispatch(method, callArgs...)
	if err != nil {
		return err
	}

	out, err := textio.Format(result, opts.output)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(cmd.OutOrStdout(), out)
	return err
}
