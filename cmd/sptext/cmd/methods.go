// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     cmd
// Description: CLI command listing the registered methods
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package cmd

import (
	"fmt"
	"regexp"

	"github.com/spf13/cobra"

	sperrors "github.com/msto63/sptext/foundation/core/errors"
	mdwlog "github.com/msto63/sptext/foundation/core/log"
	"github.com/msto63/sptext/foundation/sptext"
	"github.com/msto63/sptext/internal/tui"
)

func newMethodsCommand(root *rootOptions) *cobra.Command {
	var match string

	methodsCmd := &cobra.Command{
		Use:     "methods",
		Aliases: []string{"list", "ls"},
		Short:   "Lists the registered methods",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			methods, err := filterMethods(sptext.Methods(), match)
			if err != nil {
				return err
			}
			root.logger.Debug("listing methods", mdwlog.Fields{
				"match": match,
				"count": len(methods),
			})
			_, err = fmt.Fprintln(cmd.OutOrStdout(), tui.RenderMethodTable(methods))
			return err
		},
	}

	methodsCmd.Flags().StringVarP(&match, "match", "m", "", "only list methods whose name matches this regular expression")
	return methodsCmd
}

func filterMethods(methods []sptext.MethodDefinition, match string) ([]sptext.MethodDefinition, error) {
	if match == "" {
		return methods, nil
	}
	re, err := regexp.Compile(match)
	if err != nil {
		return nil, sperrors.InvalidPattern(sperrors.ModuleCLI, "methods", match, err)
	}

	var filtered []sptext.MethodDefinition
	for _, m := range methods {
		if re.MatchString(m.Name) {
			filtered = append(filtered, m)
		}
	}
	return filtered, nil
}
