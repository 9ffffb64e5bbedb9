// ============================================================================
// sptext - Text Utility Dispatcher
// ============================================================================
//
// Package:     textio
// Description: Conversion of command line and playground input into
//              dispatch arguments, and of results into printable output
// Author:      msto63
// Created:     2026-10-18
// License:     MIT
// ============================================================================

package textio

import (
	"strings"

	"gopkg.in/yaml.v3"

	mdwerror "github.com/msto63/sptext/foundation/core/error"
	sperrors "github.com/msto63/sptext/foundation/core/errors"
)

// ArgOptions controls how raw arguments are interpreted
type ArgOptions struct {
	// Typed decodes every argument as a YAML value, so null, 0, false, []
	// and {} keep their types. An empty argument stays an empty string.
	Typed bool
	// NullToken marks an absent argument in untyped mode. Empty disables it.
	NullToken string
}

// ParseArgs converts raw strings into dispatch arguments
func ParseArgs(raw []string, opts ArgOptions) ([]any, error) {
	args := make([]any, len(raw))
	for i, r := range raw {
		switch {
		case opts.Typed:
			v, err := decodeValue(r)
			if err != nil {
				return nil, sperrors.NewErrorBuilder(sperrors.ModuleCLI).
					Operation("parseArgs").
					Messagef("argument %d is not a valid YAML value: %q", i+1, r).
					Cause(err).
					Code(mdwerror.CodeInvalidArgument).
					Detail("argument", r).
					Build()
			}
			args[i] = v
		case opts.NullToken != "" && r == opts.NullToken:
			args[i] = nil
		default:
			args[i] = r
		}
	}
	return args, nil
}

// ParseFlow decodes a comma separated YAML flow list such as
//
//	"  hi  ", "/"
//
// into arguments. A blank line yields no arguments.
func ParseFlow(line string) ([]any, error) {
	if strings.TrimSpace(line) == "" {
		return nil, nil
	}

	var args []any
	if err := yaml.Unmarshal([]byte("["+line+"]"), &args); err != nil {
		return nil, sperrors.NewErrorBuilder(sperrors.ModuleCLI).
			Operation("parseFlow").
			Messagef("cannot read arguments %q", line).
			Cause(err).
			Code(mdwerror.CodeInvalidArgument).
			Build()
	}
	return args, nil
}

func decodeValue(raw string) (any, error) {
	if raw == "" {
		return "", nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return nil, err
	}
	return v, nil
}
