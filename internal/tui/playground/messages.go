// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     playground
// Description: Message and history types for the playground
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package playground

// HistoryEntry records one dispatched call
type HistoryEntry struct {
	Method string
	Input  string
	Result string
	Err    error
}

// settingsChangedMsg is sent when the watched config file changes
type settingsChangedMsg struct {
	historyLimit int
}
