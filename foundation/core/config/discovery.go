// File: discovery.go
// Title: Configuration Discovery
// Description: Locates the sptext configuration file in the working
//              directory or the user configuration directory and falls back
//              to an environment-only configuration when none exists.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of discovery
// - 2026-10-18 v0.2.0: sptext search paths, user config dir

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mdwerror "github.com/msto63/sptext/foundation/core/error"
)

// DefaultEnvPrefix is the prefix of environment overrides for sptext keys
const DefaultEnvPrefix = "SPTEXT"

// DiscoveryOptions defines options for automatic configuration file discovery
type DiscoveryOptions struct {
	Paths      []string // directories to search, in order
	Filenames  []string // base filenames without extension
	Extensions []string // extensions to try
	EnvPrefix  string
	Required   bool // fail when no file is found
	Watch      bool
}

// DefaultDiscoveryOptions searches ./sptext.{toml,yaml,yml} and then the
// same names under the user configuration directory.
func DefaultDiscoveryOptions() DiscoveryOptions {
	paths := []string{"."}
	if dir, err := os.UserConfigDir(); err == nil {
		paths = append(paths, filepath.Join(dir, "sptext"))
	}
	return DiscoveryOptions{
		Paths:      paths,
		Filenames:  []string{"sptext"},
		Extensions: []string{".toml", ".yaml", ".yml"},
		EnvPrefix:  DefaultEnvPrefix,
	}
}

// Discover finds and loads the first existing configuration file
func Discover(options DiscoveryOptions) (*Config, error) {
	path, err := FindConfigFile(options)
	if err != nil {
		if options.Required {
			return nil, err
		}
		return Empty(options.EnvPrefix), nil
	}

	cfg, err := LoadWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: options.EnvPrefix,
		Watch:     options.Watch,
	})
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("found config file %s but failed to load", path)).
			WithOperation("config.Discover").
			WithDetail("configPath", path)
	}
	return cfg, nil
}

// FindConfigFile searches for a configuration file without loading it
func FindConfigFile(options DiscoveryOptions) (string, error) {
	candidates := ListPossibleConfigFiles(options)
	for _, candidate := range candidates {
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", mdwerror.New(fmt.Sprintf("no configuration file found in: %s", strings.Join(candidates, ", "))).
		WithCode(mdwerror.CodeMissingConfig).
		WithOperation("config.FindConfigFile").
		WithDetail("searchPaths", candidates)
}

// ListPossibleConfigFiles returns every path discovery would try, in order
func ListPossibleConfigFiles(options DiscoveryOptions) []string {
	extensions := options.Extensions
	if len(extensions) == 0 {
		extensions = []string{".toml", ".yaml", ".yml"}
	}

	var paths []string
	for _, dir := range options.Paths {
		for _, name := range options.Filenames {
			for _, ext := range extensions {
				paths = append(paths, filepath.Join(dir, name+ext))
			}
		}
	}
	return paths
}
