// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements the text utilities behind the dispatcher:
//              emptiness tests, delimiter-aware trimming and null-skipping
//              concatenation. All functions are pure and safe for
//              concurrent use.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-18 v0.2.0: Loosely typed emptiness, delimiter trimming, Concat

package stringx

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"unicode"
)

// whitespaceClass is the set stripped when no delimiter is given. RE2's \s
// does not include the vertical tab, so the class is spelled out.
const whitespaceClass = `[ \t\n\v\f\r]`

var (
	leadingWhitespace  = regexp.MustCompile(`^` + whitespaceClass + `+`)
	trailingWhitespace = regexp.MustCompile(whitespaceClass + `+$`)
)

// Delimiter selects what the trim functions strip. The zero value strips
// whitespace; Delim selects a literal string.
type Delimiter struct {
	literal string
	set     bool
}

// Whitespace is the default delimiter
var Whitespace = Delimiter{}

// Delim returns a delimiter matching s literally. Regex metacharacters in s
// have no special meaning. An empty s strips nothing.
func Delim(s string) Delimiter {
	return Delimiter{literal: s, set: true}
}

// IsWhitespace reports whether d is the whitespace default
func (d Delimiter) IsWhitespace() bool {
	return !d.set
}

// Literal returns the literal delimiter text, empty for the default
func (d Delimiter) Literal() string {
	return d.literal
}

// String returns a readable form of the delimiter
func (d Delimiter) String() string {
	if !d.set {
		return "<whitespace>"
	}
	return fmt.Sprintf("%q", d.literal)
}

// EscapeDelimiter quotes every regex metacharacter in d so the result
// matches d literally inside a pattern.
func EscapeDelimiter(d string) string {
	return regexp.QuoteMeta(d)
}

// IsEmpty reports whether value is absent or an empty string. Absent means
// nil or a nil pointer; any value of string kind with length zero is empty.
// Zero numbers, false and empty slices or maps are not empty.
func IsEmpty(value any) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return v == ""
	}

	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.String:
		return rv.Len() == 0
	case reflect.Pointer:
		return rv.IsNil()
	default:
		return false
	}
}

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IfEmpty returns fallback when value is empty in the sense of IsEmpty,
// otherwise value unchanged.
func IfEmpty[T any](value, fallback T) T {
	if IsEmpty(value) {
		return fallback
	}
	return value
}

// LTrim removes the longest leading run of d from text.
func LTrim(text string, d Delimiter) string {
	if d.IsWhitespace() {
		return leadingWhitespace.ReplaceAllLiteralString(text, "")
	}
	if d.literal == "" {
		return text
	}
	return literalPattern(`^(?:`, d.literal, `)+`).ReplaceAllLiteralString(text, "")
}

// RTrim removes the longest trailing run of d from text.
func RTrim(text string, d Delimiter) string {
	if d.IsWhitespace() {
		return trailingWhitespace.ReplaceAllLiteralString(text, "")
	}
	if d.literal == "" {
		return text
	}
	return literalPattern(`(?:`, d.literal, `)+$`).ReplaceAllLiteralString(text, "")
}

// Trim removes leading and then trailing runs of d from text.
//
// Example:
//
//	Trim("   hello there!   ", Whitespace) // "hello there!"
//	Trim("/dir1/dir2/", Delim("/"))       // "dir1/dir2"
func Trim(text string, d Delimiter) string {
	return RTrim(LTrim(text, d), d)
}

// Concat joins the values that are not empty with glue. Values are
// rendered with fmt.Sprint.
//
// Example:
//
//	Concat(", ", "John", "", "Maria", nil, "Peter") // "John, Maria, Peter"
func Concat(glue string, values ...any) string {
	var b strings.Builder
	first := true
	for _, v := range values {
		if IsEmpty(v) {
			continue
		}
		if !first {
			b.WriteString(glue)
		}
		b.WriteString(fmt.Sprint(v))
		first = false
	}
	return b.String()
}

// literalPattern compiles prefix + escaped literal + suffix. The escaped
// literal always forms a valid expression, so compilation cannot fail.
func literalPattern(prefix, literal, suffix string) *regexp.Regexp {
	return regexp.MustCompile(prefix + EscapeDelimiter(literal) + suffix)
}
