// File: config_test.go
// Title: Configuration Module Tests
// Description: Tests for TOML/YAML parsing, environment overrides, defaults,
//              validation and discovery.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	mdwerror "github.com/msto63/sptext/foundation/core/error"
)

const tomlConfig = `
[log]
level = "debug"
format = "text"

[output]
format = "json"

[input]
typed = true
null_token = "\\N"
retries = 3
`

const yamlConfig = `
log:
  level: warn
output:
  format: yaml
input:
  typed: false
  retries: 2
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	tempDir := t.TempDir()

	t.Run("load TOML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "sptext.toml", tomlConfig))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("log.level"); got != "debug" {
			t.Errorf("log.level = %q, want debug", got)
		}
		if got := cfg.GetString("input.null_token"); got != `\N` {
			t.Errorf("input.null_token = %q, want \\N", got)
		}
		if !cfg.GetBool("input.typed") {
			t.Error("input.typed = false, want true")
		}
		if got := cfg.GetInt("input.retries"); got != 3 {
			t.Errorf("input.retries = %d, want 3", got)
		}
		if cfg.Format() != FormatTOML {
			t.Errorf("Format() = %v, want toml", cfg.Format())
		}
	})

	t.Run("load YAML config", func(t *testing.T) {
		cfg, err := Load(writeFile(t, tempDir, "sptext.yml", yamlConfig))
		if err != nil {
			t.Fatalf("Failed to load config: %v", err)
		}

		if got := cfg.GetString("output.format"); got != "yaml" {
			t.Errorf("output.format = %q, want yaml", got)
		}
		if cfg.GetBool("input.typed", true) {
			t.Error("input.typed = true, want false")
		}
		if got := cfg.GetInt("input.retries"); got != 2 {
			t.Errorf("input.retries = %d, want 2", got)
		}
		if cfg.Format() != FormatYAML {
			t.Errorf("Format() = %v, want yaml", cfg.Format())
		}
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(tempDir, "nope.toml"))
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("want MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("blank path", func(t *testing.T) {
		_, err := Load("  ")
		if !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("want MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("malformed file", func(t *testing.T) {
		_, err := Load(writeFile(t, tempDir, "broken.toml", "[log\nlevel ="))
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidConfig) {
			t.Errorf("want INVALID_CONFIG, got %v", err)
		}
	})
}

func TestGettersDefaults(t *testing.T) {
	cfg := Empty("SPTEXT_TEST")

	if got := cfg.GetString("log.level", "info"); got != "info" {
		t.Errorf("GetString default = %q", got)
	}
	if got := cfg.GetInt("input.retries", 7); got != 7 {
		t.Errorf("GetInt default = %d", got)
	}
	if !cfg.GetBool("input.typed", true) {
		t.Error("GetBool default ignored")
	}
	if cfg.GetString("nothing") != "" || cfg.GetInt("nothing") != 0 || cfg.GetBool("nothing") {
		t.Error("zero values expected without defaults")
	}
}

func TestEnvironmentVariables(t *testing.T) {
	cfg, err := LoadFromString(tomlConfig, FormatTOML)
	if err != nil {
		t.Fatal(err)
	}
	cfg.envPrefix = "SPTEXT_TEST"

	t.Setenv("SPTEXT_TEST_LOG_LEVEL", "error")
	t.Setenv("SPTEXT_TEST_INPUT_TYPED", "false")
	t.Setenv("SPTEXT_TEST_INPUT_RETRIES", "9")

	if got := cfg.GetString("log.level"); got != "error" {
		t.Errorf("env override ignored, log.level = %q", got)
	}
	if cfg.GetBool("input.typed") {
		t.Error("env override ignored for bool")
	}
	if got := cfg.GetInt("input.retries"); got != 9 {
		t.Errorf("env override ignored for int, got %d", got)
	}
	if cfg.EnvKey("log.level") != "SPTEXT_TEST_LOG_LEVEL" {
		t.Errorf("EnvKey() = %q", cfg.EnvKey("log.level"))
	}
	if !cfg.Has("output.format") || cfg.Has("output.color") {
		t.Error("Has() wrong")
	}
}

func TestDefaults(t *testing.T) {
	path := writeFile(t, t.TempDir(), "sptext.toml", "[log]\nlevel = \"warn\"\n")
	cfg, err := LoadWithOptions(path, LoadOptions{
		Format: FormatAuto,
		Defaults: map[string]interface{}{
			"log":    map[string]interface{}{"level": "info", "format": "json"},
			"output": map[string]interface{}{"format": "text"},
		},
	})
	if err != nil {
		t.Fatal(err)
	}

	if got := cfg.GetString("log.level"); got != "warn" {
		t.Errorf("file value lost, log.level = %q", got)
	}
	if got := cfg.GetString("log.format"); got != "json" {
		t.Errorf("nested default lost, log.format = %q", got)
	}
	if got := cfg.GetString("output.format"); got != "text" {
		t.Errorf("default lost, output.format = %q", got)
	}
}

func TestSetAndGetAll(t *testing.T) {
	cfg := Empty("SPTEXT_TEST")
	cfg.Set("output.format", "yaml")

	if got := cfg.GetString("output.format"); got != "yaml" {
		t.Errorf("Set() not visible, got %q", got)
	}

	all := cfg.GetAll()
	all["output"].(map[string]interface{})["format"] = "mutated"
	if got := cfg.GetString("output.format"); got != "yaml" {
		t.Error("GetAll() returned shared maps")
	}
}

func TestValidate(t *testing.T) {
	rules := ValidationRules{
		"log.level":     {Type: "string", Values: []string{"trace", "debug", "info", "warn", "error"}},
		"output.format": {Required: true, Values: []string{"text", "json", "yaml"}},
		"input.typed":   {Type: "bool"},
	}

	t.Run("valid", func(t *testing.T) {
		cfg, _ := LoadFromString(tomlConfig, FormatTOML)
		result := cfg.Validate(rules)
		if !result.Valid || result.Err() != nil {
			t.Errorf("expected valid config, got %v", result.Err())
		}
	})

	t.Run("invalid", func(t *testing.T) {
		cfg, _ := LoadFromString("[log]\nlevel = \"loud\"\n[input]\ntyped = \"maybe\"\n", FormatTOML)
		result := cfg.Validate(rules)
		if result.Valid {
			t.Fatal("expected invalid config")
		}
		if len(result.Errors) != 3 {
			t.Fatalf("want 3 errors, got %d: %v", len(result.Errors), result.Err())
		}
		msg := result.Err().Error()
		for _, want := range []string{"input.typed", "log.level", "output.format"} {
			if !strings.Contains(msg, want) {
				t.Errorf("missing %q in %q", want, msg)
			}
		}
		if !mdwerror.HasCode(result.Errors[0], mdwerror.CodeInvalidConfig) {
			t.Errorf("want INVALID_CONFIG, got %v", mdwerror.GetCode(result.Errors[0]))
		}
	})
}

func TestDiscover(t *testing.T) {
	dir := t.TempDir()
	opts := DiscoveryOptions{
		Paths:     []string{filepath.Join(dir, "missing"), dir},
		Filenames: []string{"sptext"},
		EnvPrefix: "SPTEXT_DISCOVER",
	}

	t.Run("nothing found, not required", func(t *testing.T) {
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != "" {
			t.Errorf("FilePath() = %q, want empty", cfg.FilePath())
		}
	})

	t.Run("nothing found, required", func(t *testing.T) {
		required := opts
		required.Required = true
		if _, err := Discover(required); !mdwerror.HasCode(err, mdwerror.CodeMissingConfig) {
			t.Errorf("want MISSING_CONFIG, got %v", err)
		}
	})

	t.Run("yaml found", func(t *testing.T) {
		path := writeFile(t, dir, "sptext.yaml", yamlConfig)
		cfg, err := Discover(opts)
		if err != nil {
			t.Fatal(err)
		}
		if cfg.FilePath() != path {
			t.Errorf("FilePath() = %q, want %q", cfg.FilePath(), path)
		}
		if cfg.GetString("log.level") != "warn" {
			t.Errorf("log.level = %q", cfg.GetString("log.level"))
		}
	})

	if got := len(ListPossibleConfigFiles(opts)); got != 6 {
		t.Errorf("ListPossibleConfigFiles() returned %d paths, want 6", got)
	}
}
