// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     playground
// Description: Program setup and config watching for the playground
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package playground

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/msto63/sptext/foundation/core/config"
	mdwlog "github.com/msto63/sptext/foundation/core/log"
)

// Config holds playground configuration
type Config struct {
	HistoryLimit int
	Logger       *mdwlog.Logger
	// Settings is watched for changes when it was loaded from a file
	Settings *config.Config
}

// ConfigFrom reads the playground settings from cfg
func ConfigFrom(cfg *config.Config, logger *mdwlog.Logger) Config {
	return Config{
		HistoryLimit: cfg.GetInt("playground.history", DefaultHistoryLimit),
		Logger:       logger,
		Settings:     cfg,
	}
}

// Run starts the playground and blocks until the user quits
func Run(cfg Config) error {
	p := tea.NewProgram(New(cfg), tea.WithAltScreen())

	if cfg.Settings != nil && cfg.Settings.FilePath() != "" {
		cfg.Settings.OnChange(func(_, newConfig *config.Config) {
			p.Send(settingsChangedMsg{
				historyLimit: newConfig.GetInt("playground.history", DefaultHistoryLimit),
			})
		})
		if err := cfg.Settings.StartWatching(); err != nil {
			return err
		}
		defer cfg.Settings.StopWatching()
	}

	_, err := p.Run()
	return err
}
