// File: call.go
// Title: Typed Method Calls
// Description: One call type per registered method. A Call is either
//              built directly by Go callers or bound from loose arguments
//              by the dispatcher, and is executed with Invoke.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package sptext

import (
	"github.com/msto63/sptext/foundation/utils/stringx"
)

// Call is a fully bound method invocation. The set of implementations is
// closed to this package.
type Call interface {
	// Method returns the registered method name
	Method() string
	invoke() any
}

// Invoke executes c and returns its result. A nil call yields nil.
func Invoke(c Call) any {
	if c == nil {
		return nil
	}
	return c.invoke()
}

// IsEmptyCall invokes isEmpty
type IsEmptyCall struct {
	Value any
}

func (IsEmptyCall) Method() string { return MethodIsEmpty }

func (c IsEmptyCall) invoke() any { return stringx.IsEmpty(c.Value) }

// IfEmptyCall invokes ifEmpty
type IfEmptyCall struct {
	Value    any
	Fallback any
}

func (IfEmptyCall) Method() string { return MethodIfEmpty }

func (c IfEmptyCall) invoke() any { return stringx.IfEmpty(c.Value, c.Fallback) }

// TrimCall invokes trim
type TrimCall struct {
	Text      string
	Delimiter stringx.Delimiter
}

func (TrimCall) Method() string { return MethodTrim }

func (c TrimCall) invoke() any { return stringx.Trim(c.Text, c.Delimiter) }

// LTrimCall invokes ltrim
type LTrimCall struct {
	Text      string
	Delimiter stringx.Delimiter
}

func (LTrimCall) Method() string { return MethodLTrim }

func (c LTrimCall) invoke() any { return stringx.LTrim(c.Text, c.Delimiter) }

// RTrimCall invokes rtrim
type RTrimCall struct {
	Text      string
	Delimiter stringx.Delimiter
}

func (RTrimCall) Method() string { return MethodRTrim }

func (c RTrimCall) invoke() any { return stringx.RTrim(c.Text, c.Delimiter) }

// ConcatCall invokes concat
type ConcatCall struct {
	Glue   string
	Values []any
}

func (ConcatCall) Method() string { return MethodConcat }

func (c ConcatCall) invoke() any { return stringx.Concat(c.Glue, c.Values...) }
