// File: registry.go
// Title: Method Registry
// Description: The fixed table of text methods reachable through Dispatch.
//              Each entry carries its metadata and the binder that turns a
//              loose argument list into a typed call.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-25 v0.1.0: Initial registry implementation
// - 2026-10-18 v0.2.0: Static method table replacing runtime registration

package sptext

import (
	"fmt"
	"sort"
	"strings"
)

// Method names
const (
	MethodIsEmpty = "isEmpty"
	MethodIfEmpty = "ifEmpty"
	MethodTrim    = "trim"
	MethodLTrim   = "ltrim"
	MethodRTrim   = "rtrim"
	MethodConcat  = "concat"
)

// MethodDefinition describes a registered method
type MethodDefinition struct {
	Name        string                // Method name (e.g., "trim")
	Description string                // One line description
	Parameters  []ParameterDefinition // Positional parameters in order
	Returns     string                // Result type
	Examples    []string              // Usage examples
	bind        func(args []any) (Call, error)
}

// ParameterDefinition describes a positional parameter
type ParameterDefinition struct {
	Name        string // Parameter name
	Type        string // Parameter type (string, any)
	Required    bool   // Whether the argument must be present
	Variadic    bool   // Collects all remaining arguments
	Description string // Parameter description
	Default     string // Behaviour when absent
}

// Signature renders the method as name(params) result
func (m MethodDefinition) Signature() string {
	params := make([]string, 0, len(m.Parameters))
	for _, p := range m.Parameters {
		switch {
		case p.Variadic:
			params = append(params, fmt.Sprintf("%s ...%s", p.Name, p.Type))
		case p.Required:
			params = append(params, fmt.Sprintf("%s %s", p.Name, p.Type))
		default:
			params = append(params, fmt.Sprintf("%s? %s", p.Name, p.Type))
		}
	}
	return fmt.Sprintf("%s(%s) %s", m.Name, strings.Join(params, ", "), m.Returns)
}

// MaxArgs returns the largest accepted argument count, or -1 if variadic
func (m MethodDefinition) MaxArgs() int {
	for _, p := range m.Parameters {
		if p.Variadic {
			return -1
		}
	}
	return len(m.Parameters)
}

func (m MethodDefinition) clone() MethodDefinition {
	c := m
	c.Parameters = append([]ParameterDefinition(nil), m.Parameters...)
	c.Examples = append([]string(nil), m.Examples...)
	return c
}

var (
	textParam = ParameterDefinition{
		Name: "text", Type: "string", Required: true,
		Description: "Text to trim",
	}
	delimiterParam = ParameterDefinition{
		Name: "delimiter", Type: "string",
		Description: "Literal string stripped in whole repetitions",
		Default:     "whitespace",
	}
)

// methods is built once and never modified.
var methods = map[string]*MethodDefinition{
	MethodIsEmpty: {
		Name:        MethodIsEmpty,
		Description: "Reports whether a value is absent or an empty string",
		Parameters: []ParameterDefinition{
			{Name: "value", Type: "any", Description: "Value to test"},
		},
		Returns:  "bool",
		Examples: []string{`isEmpty("") = true`, `isEmpty(0) = false`},
		bind:     bindIsEmpty,
	},
	MethodIfEmpty: {
		Name:        MethodIfEmpty,
		Description: "Returns the fallback when the value is empty, otherwise the value",
		Parameters: []ParameterDefinition{
			{Name: "value", Type: "any", Description: "Value to test"},
			{Name: "fallback", Type: "any", Description: "Returned when value is empty"},
		},
		Returns:  "any",
		Examples: []string{`ifEmpty("", "n/a") = "n/a"`, `ifEmpty("x", "n/a") = "x"`},
		bind:     bindIfEmpty,
	},
	MethodTrim: {
		Name:        MethodTrim,
		Description: "Strips the delimiter from both ends",
		Parameters:  []ParameterDefinition{textParam, delimiterParam},
		Returns:     "string",
		Examples:    []string{`trim("  hi  ") = "hi"`, `trim("/a/b/", "/") = "a/b"`},
		bind:        bindTrim(MethodTrim),
	},
	MethodLTrim: {
		Name:        MethodLTrim,
		Description: "Strips the delimiter from the start",
		Parameters:  []ParameterDefinition{textParam, delimiterParam},
		Returns:     "string",
		Examples:    []string{`ltrim("  hi  ") = "hi  "`, `ltrim("//a", "/") = "a"`},
		bind:        bindTrim(MethodLTrim),
	},
	MethodRTrim: {
		Name:        MethodRTrim,
		Description: "Strips the delimiter from the end",
		Parameters:  []ParameterDefinition{textParam, delimiterParam},
		Returns:     "string",
		Examples:    []string{`rtrim("  hi  ") = "  hi"`, `rtrim("a//", "/") = "a"`},
		bind:        bindTrim(MethodRTrim),
	},
	MethodConcat: {
		Name:        MethodConcat,
		Description: "Joins the non-empty values with glue",
		Parameters: []ParameterDefinition{
			{Name: "glue", Type: "string", Description: "Separator between values", Default: `""`},
			{Name: "values", Type: "any", Variadic: true, Description: "Values to join"},
		},
		Returns:  "string",
		Examples: []string{`concat(", ", "a", "", nil, "b") = "a, b"`},
		bind:     bindConcat,
	},
}

// Methods returns all method definitions sorted by name
func Methods() []MethodDefinition {
	result := make([]MethodDefinition, 0, len(methods))
	for _, name := range Names() {
		result = append(result, methods[name].clone())
	}
	return result
}

// Lookup returns the definition registered under name. Names are matched
// exactly, including case.
func Lookup(name string) (MethodDefinition, bool) {
	m, ok := methods[name]
	if !ok {
		return MethodDefinition{}, false
	}
	return m.clone(), true
}

// Has reports whether name is registered
func Has(name string) bool {
	_, ok := methods[name]
	return ok
}

// Names returns the registered method names in sorted order
func Names() []string {
	names := make([]string, 0, len(methods))
	for name := range methods {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
