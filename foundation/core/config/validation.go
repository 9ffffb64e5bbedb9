// File: validation.go
// Title: Configuration Validation
// Description: Rule based validation of configuration keys: presence, type
//              and membership in a set of allowed values. Environment
//              overrides are validated like file values.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation of validation
// - 2026-10-18 v0.2.0: Values (enum) rule, validation no longer mutates the config

package config

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	sperrors "github.com/msto63/sptext/foundation/core/errors"
)

// ValidationRule defines validation criteria for a configuration value
type ValidationRule struct {
	Required bool     // key must be present
	Type     string   // "string", "bool" or "int"
	Values   []string // allowed values, compared case-insensitively
}

// ValidationRules maps configuration keys to their validation rules
type ValidationRules map[string]ValidationRule

// ValidationResult contains the results of configuration validation
type ValidationResult struct {
	Valid  bool
	Errors []error
}

// Err joins all validation errors, or returns nil when the config is valid
func (r *ValidationResult) Err() error {
	if r.Valid {
		return nil
	}
	return errors.Join(r.Errors...)
}

// Validate validates the configuration against the provided rules. Keys are
// checked in sorted order so the reported errors are stable.
func (c *Config) Validate(rules ValidationRules) *ValidationResult {
	keys := make([]string, 0, len(rules))
	for key := range rules {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	result := &ValidationResult{Valid: true}
	for _, key := range keys {
		if err := c.validateField(key, rules[key]); err != nil {
			result.Valid = false
			result.Errors = append(result.Errors, err)
		}
	}
	return result
}

func (c *Config) validateField(key string, rule ValidationRule) error {
	value, ok := c.lookup(key)
	if !ok || value == nil {
		if rule.Required {
			return sperrors.ConfigInvalid(key, nil, "required key is missing")
		}
		return nil
	}

	if rule.Type != "" {
		if err := validateType(key, value, rule.Type); err != nil {
			return err
		}
	}

	if len(rule.Values) > 0 {
		s := fmt.Sprint(value)
		for _, allowed := range rule.Values {
			if strings.EqualFold(s, allowed) {
				return nil
			}
		}
		return sperrors.ConfigInvalid(key, value,
			fmt.Sprintf("must be one of %s", strings.Join(rule.Values, ", ")))
	}

	return nil
}

func validateType(key string, value interface{}, expected string) error {
	switch expected {
	case "string":
		if _, ok := value.(string); ok {
			return nil
		}
	case "bool":
		switch v := value.(type) {
		case bool:
			return nil
		case string:
			if _, err := strconv.ParseBool(v); err == nil {
				return nil
			}
		}
	case "int":
		switch v := value.(type) {
		case int, int64:
			return nil
		case string:
			if _, err := strconv.Atoi(v); err == nil {
				return nil
			}
		}
	default:
		return sperrors.ConfigInvalid(key, value, fmt.Sprintf("unknown rule type %q", expected))
	}
	return sperrors.ConfigInvalid(key, value, fmt.Sprintf("must be a %s, got %T", expected, value))
}
