// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     main
// Description: Entry point of the sptext command line tool
// Author:      msto63
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package main

import (
	"os"

	"github.com/msto63/sptext/cmd/sptext/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(cmd.ExitCode(err))
	}
}
