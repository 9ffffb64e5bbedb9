// Package config loads sptext settings from TOML or YAML files.
//
// Package: config
// Title: Configuration Management
// Description: Reads a TOML or YAML file into a tree of values addressed
//              with dot notation ("log.level"), lets environment variables
//              override any key, validates keys against simple rules and
//              reloads the file when it changes on disk.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2026-10-18 v0.2.0: fsnotify watcher, enum validation, sptext discovery paths
//
// Environment overrides use the upper-cased key with dots replaced by
// underscores, prefixed when a prefix is configured:
//
//	log.level  ->  SPTEXT_LOG_LEVEL
//
// Usage:
//
//	cfg, err := config.Discover(config.DefaultDiscoveryOptions())
//	if err != nil {
//		return err
//	}
//	level := cfg.GetString("log.level", "info")
package config
