// File: fuzz_test.go
// Title: Fuzz Tests for Trimming
// Description: Fuzz targets checking that trimming is idempotent, composes
//              as RTrim after LTrim and agrees with strings.Trim* for
//              single character delimiters.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-18
// Modified: 2026-10-18

package stringx

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func FuzzTrim(f *testing.F) {
	f.Add("   hello there!   ", "/")
	f.Add("/dir1/dir2/", "/")
	f.Add("..a..", ".")
	f.Add("abab", "ab")

	f.Fuzz(func(t *testing.T, text, delim string) {
		if !utf8.ValidString(text) || !utf8.ValidString(delim) {
			t.Skip()
		}
		for _, d := range []Delimiter{Whitespace, Delim(delim)} {
			trimmed := Trim(text, d)
			if again := Trim(trimmed, d); again != trimmed {
				t.Fatalf("Trim(%q, %v) not idempotent: %q -> %q", text, d, trimmed, again)
			}
			if want := RTrim(LTrim(text, d), d); trimmed != want {
				t.Fatalf("Trim(%q, %v) = %q; want %q", text, d, trimmed, want)
			}
			if !strings.Contains(text, trimmed) {
				t.Fatalf("Trim(%q, %v) = %q is not a substring", text, d, trimmed)
			}
		}

		if utf8.RuneCountInString(delim) == 1 {
			if got, want := Trim(text, Delim(delim)), strings.Trim(text, delim); got != want {
				t.Fatalf("Trim(%q, %q) = %q; strings.Trim gives %q", text, delim, got, want)
			}
		}
	})
}
