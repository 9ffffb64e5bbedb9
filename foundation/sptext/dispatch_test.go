// File: dispatch_test.go
// Title: Dispatcher Unit Tests
// Description: Tests for name resolution, argument binding, the method
//              contracts reached through Dispatch and failure logging.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial executor test suite
// - 2026-10-18 v0.2.0: Dispatcher tests

package sptext

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mdwerror "github.com/msto63/sptext/foundation/core/error"
	sperrors "github.com/msto63/sptext/foundation/core/errors"
	mdwlog "github.com/msto63/sptext/foundation/core/log"
	"github.com/msto63/sptext/foundation/utils/stringx"
)

type label string

func TestDispatch(t *testing.T) {
	var nilPtr *struct{}

	tests := []struct {
		name     string
		method   string
		args     []any
		expected any
	}{
		{"isEmpty nil", MethodIsEmpty, []any{nil}, true},
		{"isEmpty absent", MethodIsEmpty, nil, true},
		{"isEmpty empty string", MethodIsEmpty, []any{""}, true},
		{"isEmpty nil pointer", MethodIsEmpty, []any{nilPtr}, true},
		{"isEmpty zero", MethodIsEmpty, []any{0}, false},
		{"isEmpty false", MethodIsEmpty, []any{false}, false},
		{"isEmpty empty slice", MethodIsEmpty, []any{[]any{}}, false},
		{"isEmpty empty map", MethodIsEmpty, []any{map[string]any{}}, false},
		{"isEmpty number", MethodIsEmpty, []any{101}, false},
		{"ifEmpty empty", MethodIfEmpty, []any{"", "fallback"}, "fallback"},
		{"ifEmpty nil", MethodIfEmpty, []any{nil, 7}, 7},
		{"ifEmpty value", MethodIfEmpty, []any{"x", "fallback"}, "x"},
		{"ifEmpty zero kept", MethodIfEmpty, []any{0, 1}, 0},
		{"ifEmpty absent fallback", MethodIfEmpty, []any{""}, nil},
		{"trim whitespace", MethodTrim, []any{"   hello there!   "}, "hello there!"},
		{"trim nil delimiter", MethodTrim, []any{"  x  ", nil}, "x"},
		{"trim slash", MethodTrim, []any{"/dir1/dir2/", "/"}, "dir1/dir2"},
		{"trim typed delimiter", MethodTrim, []any{"..x..", stringx.Delim(".")}, "x"},
		{"trim named string", MethodTrim, []any{label(" y "), label(" ")}, "y"},
		{"trim nothing to strip", MethodTrim, []any{"hello", "/"}, "hello"},
		{"ltrim", MethodLTrim, []any{"//a//", "/"}, "a//"},
		{"rtrim", MethodRTrim, []any{"//a//", "/"}, "//a"},
		{"ltrim whitespace", MethodLTrim, []any{"\v\f a "}, "a "},
		{"concat", MethodConcat, []any{", ", "John", "", "Maria", nil, "Peter"}, "John, Maria, Peter"},
		{"concat single", MethodConcat, []any{", ", "John"}, "John"},
		{"concat glue only", MethodConcat, []any{", "}, ""},
		{"concat nothing", MethodConcat, nil, ""},
		{"concat absent glue", MethodConcat, []any{nil, "a", "b"}, "ab"},
		{"concat non strings", MethodConcat, []any{"-", 1, false, 0}, "1-false-0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dispatch(tt.method, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestDispatchUnknownMethod(t *testing.T) {
	for _, name := range []string{"", "Trim", "TRIM", "trimx", "spTrim", " trim", "concat "} {
		t.Run(name, func(t *testing.T) {
			got, err := Dispatch(name, "x")
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, sperrors.IsUnknownMethod(err))
			assert.Equal(t, "Method not found: "+name, err.Error())
			assert.Equal(t, 2, mdwerror.GetCode(err).ExitCode())
		})
	}
}

func TestDispatchInvalidArguments(t *testing.T) {
	tests := []struct {
		name   string
		method string
		args   []any
		msg    string
	}{
		{"trim non string text", MethodTrim, []any{42}, "trim: argument 0 must be a string, got int(42)"},
		{"trim absent text", MethodTrim, nil, "trim: argument 0 must be a string, got absent value"},
		{"ltrim nil text", MethodLTrim, []any{nil, "/"}, "ltrim: argument 0 must be a string"},
		{"rtrim bad delimiter", MethodRTrim, []any{"x", 5}, "rtrim: argument 1 must be a string or absent, got int(5)"},
		{"trim surplus", MethodTrim, []any{"x", "/", "/"}, "trim: takes at most 2 arguments, got 3"},
		{"isEmpty surplus", MethodIsEmpty, []any{"", ""}, "isEmpty: takes at most 1 arguments, got 2"},
		{"ifEmpty surplus", MethodIfEmpty, []any{"", "", ""}, "ifEmpty: takes at most 2 arguments, got 3"},
		{"concat bad glue", MethodConcat, []any{1, "a"}, "concat: argument 0 must be a string or absent"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Dispatch(tt.method, tt.args...)
			require.Error(t, err)
			assert.Nil(t, got)
			assert.True(t, sperrors.IsInvalidArgument(err))
			assert.Contains(t, err.Error(), tt.msg)
			assert.Equal(t, tt.method, sperrors.ExtractOperation(err))
			assert.Equal(t, sperrors.ModuleSptext, sperrors.ExtractModule(err))
		})
	}
}

func TestDispatchMatchesInvoke(t *testing.T) {
	tests := []struct {
		method string
		args   []any
		call   Call
	}{
		{MethodIsEmpty, []any{""}, IsEmptyCall{Value: ""}},
		{MethodIfEmpty, []any{nil, "b"}, IfEmptyCall{Value: nil, Fallback: "b"}},
		{MethodTrim, []any{" a "}, TrimCall{Text: " a "}},
		{MethodLTrim, []any{"-a-", "-"}, LTrimCall{Text: "-a-", Delimiter: stringx.Delim("-")}},
		{MethodRTrim, []any{"-a-", "-"}, RTrimCall{Text: "-a-", Delimiter: stringx.Delim("-")}},
		{MethodConcat, []any{"+", "a", "b"}, ConcatCall{Glue: "+", Values: []any{"a", "b"}}},
	}

	for _, tt := range tests {
		t.Run(tt.method, func(t *testing.T) {
			bound, err := Bind(tt.method, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, tt.call, bound)
			assert.Equal(t, tt.method, bound.Method())

			got, err := Dispatch(tt.method, tt.args...)
			require.NoError(t, err)
			assert.Equal(t, Invoke(tt.call), got)
		})
	}

	assert.Nil(t, Invoke(nil))
}

func TestDispatchDoesNotRetainArgs(t *testing.T) {
	args := []any{", ", "a", "b"}
	call, err := Bind(MethodConcat, args...)
	require.NoError(t, err)

	args[1] = "changed"
	assert.Equal(t, "a, b", Invoke(call))
}

func TestDispatcherLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := mdwlog.NewWithConfig(mdwlog.Config{
		Level:  mdwlog.LevelDebug,
		Format: mdwlog.FormatJSON,
		Output: &buf,
	})
	d := New(Options{Logger: logger})

	_, err := d.Dispatch(MethodTrim, " x ")
	require.NoError(t, err)
	assert.Contains(t, buf.String(), `"method dispatched"`)
	assert.Contains(t, buf.String(), `"sptext-dispatcher"`)

	buf.Reset()
	_, err = d.Dispatch("nope")
	require.Error(t, err)
	out := buf.String()
	assert.Contains(t, out, "Method not found: nope")
	assert.Contains(t, out, `"UNKNOWN_METHOD"`)
}

func TestDispatchConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan error, 64)

	for i := 0; i < 64; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			text := strings.Repeat("/", i%5) + "x" + strings.Repeat("/", i%3)
			got, err := Dispatch(MethodTrim, text, "/")
			if err != nil {
				errs <- err
				return
			}
			if got != "x" {
				errs <- assert.AnError
			}
		}(i)
	}
	wg.Wait()
	close(errs)

	for err := range errs {
		t.Errorf("concurrent dispatch failed: %v", err)
	}
}
