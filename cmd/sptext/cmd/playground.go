// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     cmd
// Description: CLI command for the interactive playground
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/msto63/sptext/internal/tui/playground"
)

func newPlaygroundCommand(root *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:     "playground",
		Aliases: []string{"play", "tui"},
		Short:   "Starts the interactive playground",
		Long: `Starts the interactive playground.

Select a method, type its arguments as a comma separated YAML list and
press enter to dispatch. When a config file is in use, changes to it are
picked up while the playground runs.

Keys:
  Up/Down     Select method
  Enter       Dispatch
  Ctrl+L      Clear history
  Esc/Ctrl+C  Quit`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return playground.Run(playground.ConfigFrom(root.cfg, root.logger))
		},
	}
}
