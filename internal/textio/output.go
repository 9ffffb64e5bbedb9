// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     textio
// Description: Rendering of dispatch results as text, JSON or YAML
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package textio

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	sperrors "github.com/msto63/sptext/foundation/core/errors"
)

// Output formats
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// OutputFormats lists the accepted output formats
var OutputFormats = []string{OutputText, OutputJSON, OutputYAML}

// Format renders v in the given output format. The result always ends with
// a newline.
func Format(v any, format string) (string, error) {
	switch strings.ToLower(format) {
	case "", OutputText:
		return Text(v) + "\n", nil
	case OutputJSON:
		out, err := json.Marshal(v)
		if err != nil {
			return "", sperrors.OperationFailed(sperrors.ModuleCLI, "format", err)
		}
		return string(out) + "\n", nil
	case OutputYAML:
		out, err := yaml.Marshal(v)
		if err != nil {
			return "", sperrors.OperationFailed(sperrors.ModuleCLI, "format", err)
		}
		return string(out), nil
	default:
		return "", sperrors.InvalidInput(sperrors.ModuleCLI, "format", format,
			"one of "+strings.Join(OutputFormats, ", "))
	}
}

// Text renders v for plain output: strings verbatim, nil as null
func Text(v any) string {
	switch t := v.(type) {
	case nil:
		return "null"
	case string:
		return t
	default:
		return fmt.Sprint(t)
	}
}

// Quote renders v for display next to other values: strings quoted, nil as
// null
func Quote(v any) string {
	if s, ok := v.(string); ok {
		return strconv.Quote(s)
	}
	return Text(v)
}
