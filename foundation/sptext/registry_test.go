// File: registry_test.go
// Title: Method Registry Unit Tests
// Description: Tests for method metadata, lookup and immutability of the
//              registry.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial comprehensive registry test suite
// - 2026-10-18 v0.2.0: Static method table tests

package sptext

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNames(t *testing.T) {
	assert.Equal(t, []string{"concat", "ifEmpty", "isEmpty", "ltrim", "rtrim", "trim"}, Names())
}

func TestHasAndLookup(t *testing.T) {
	for _, name := range Names() {
		assert.True(t, Has(name), name)
		m, ok := Lookup(name)
		require.True(t, ok, name)
		assert.Equal(t, name, m.Name)
		assert.NotEmpty(t, m.Description)
		assert.NotEmpty(t, m.Examples)
	}

	assert.False(t, Has("TRIM"))
	_, ok := Lookup("Trim")
	assert.False(t, ok)
}

func TestSignature(t *testing.T) {
	tests := map[string]string{
		MethodIsEmpty: "isEmpty(value? any) bool",
		MethodIfEmpty: "ifEmpty(value? any, fallback? any) any",
		MethodTrim:    "trim(text string, delimiter? string) string",
		MethodConcat:  "concat(glue? string, values ...any) string",
	}

	for name, want := range tests {
		m, ok := Lookup(name)
		require.True(t, ok)
		assert.Equal(t, want, m.Signature())
	}
}

func TestMaxArgs(t *testing.T) {
	tests := map[string]int{
		MethodIsEmpty: 1,
		MethodIfEmpty: 2,
		MethodLTrim:   2,
		MethodConcat:  -1,
	}

	for name, want := range tests {
		m, _ := Lookup(name)
		assert.Equal(t, want, m.MaxArgs(), name)
	}
}

func TestMethodsReturnsCopies(t *testing.T) {
	all := Methods()
	require.Len(t, all, 6)

	all[0].Parameters[0].Name = "mutated"
	all[0].Examples[0] = "mutated"

	m, _ := Lookup(all[0].Name)
	assert.NotEqual(t, "mutated", m.Parameters[0].Name)
	assert.NotEqual(t, "mutated", m.Examples[0])
}
