// File: bind.go
// Title: Argument Binding
// Description: Converts positional dispatch arguments into typed calls.
//              Missing trailing arguments are absent (nil); surplus or
//              mistyped arguments are rejected.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package sptext

import (
	"reflect"

	sperrors "github.com/msto63/sptext/foundation/core/errors"
	"github.com/msto63/sptext/foundation/utils/stringx"
)

// arg returns the i-th argument or nil when absent
func arg(args []any, i int) any {
	if i < len(args) {
		return args[i]
	}
	return nil
}

func checkArity(method string, args []any, max int) error {
	if len(args) > max {
		return sperrors.TooManyArguments(sperrors.ModuleSptext, method, len(args), max)
	}
	return nil
}

// asString accepts string and named string types
func asString(v any) (string, bool) {
	if s, ok := v.(string); ok {
		return s, true
	}
	if v == nil {
		return "", false
	}
	rv := reflect.ValueOf(v)
	if rv.Kind() == reflect.String {
		return rv.String(), true
	}
	return "", false
}

func bindIsEmpty(args []any) (Call, error) {
	if err := checkArity(MethodIsEmpty, args, 1); err != nil {
		return nil, err
	}
	return IsEmptyCall{Value: arg(args, 0)}, nil
}

func bindIfEmpty(args []any) (Call, error) {
	if err := checkArity(MethodIfEmpty, args, 2); err != nil {
		return nil, err
	}
	return IfEmptyCall{Value: arg(args, 0), Fallback: arg(args, 1)}, nil
}

func bindTrim(method string) func(args []any) (Call, error) {
	return func(args []any) (Call, error) {
		if err := checkArity(method, args, 2); err != nil {
			return nil, err
		}

		text, ok := asString(arg(args, 0))
		if !ok {
			return nil, sperrors.InvalidArgument(sperrors.ModuleSptext, method, 0, arg(args, 0), "a string")
		}
		d, err := delimiter(method, arg(args, 1))
		if err != nil {
			return nil, err
		}

		switch method {
		case MethodLTrim:
			return LTrimCall{Text: text, Delimiter: d}, nil
		case MethodRTrim:
			return RTrimCall{Text: text, Delimiter: d}, nil
		default:
			return TrimCall{Text: text, Delimiter: d}, nil
		}
	}
}

// delimiter maps an absent value to the whitespace default
func delimiter(method string, v any) (stringx.Delimiter, error) {
	if v == nil {
		return stringx.Whitespace, nil
	}
	if d, ok := v.(stringx.Delimiter); ok {
		return d, nil
	}
	s, ok := asString(v)
	if !ok {
		return stringx.Delimiter{}, sperrors.InvalidArgument(sperrors.ModuleSptext, method, 1, v, "a string or absent")
	}
	return stringx.Delim(s), nil
}

func bindConcat(args []any) (Call, error) {
	var glue string
	if g := arg(args, 0); g != nil {
		s, ok := asString(g)
		if !ok {
			return nil, sperrors.InvalidArgument(sperrors.ModuleSptext, MethodConcat, 0, g, "a string or absent")
		}
		glue = s
	}

	var values []any
	if len(args) > 1 {
		values = append([]any(nil), args[1:]...)
	}
	return ConcatCall{Glue: glue, Values: values}, nil
}
