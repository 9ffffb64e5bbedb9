// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     tui
// Description: Table rendering of the registered methods
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package tui

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/msto63/sptext/foundation/sptext"
)

// RenderMethodTable renders one row per method with its signature and
// description.
func RenderMethodTable(methods []sptext.MethodDefinition) string {
	rows := make([][]string, 0, len(methods))
	for _, m := range methods {
		rows = append(rows, []string{m.Name, m.Signature(), m.Description})
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(ColorMuted)).
		Headers("METHOD", "SIGNATURE", "DESCRIPTION").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col == 0:
				return TableNameStyle
			default:
				return TableCellStyle
			}
		})

	return t.Render()
}
