// File: example_test.go
// Title: Example Tests for StringX Package Documentation
// Description: Executable examples that serve as both documentation and tests.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-18
//
// Change History:
// - 2025-01-24 v0.1.0: Initial example implementation
// - 2026-10-18 v0.2.0: Examples for the dispatcher utilities

package stringx_test

import (
	"fmt"

	"github.com/msto63/sptext/foundation/utils/stringx"
)

func ExampleIsEmpty() {
	fmt.Println(stringx.IsEmpty(nil))
	fmt.Println(stringx.IsEmpty(""))
	fmt.Println(stringx.IsEmpty(" "))
	fmt.Println(stringx.IsEmpty(0))
	fmt.Println(stringx.IsEmpty([]int{}))
	// Output:
	// true
	// true
	// false
	// false
	// false
}

func ExampleIfEmpty() {
	fmt.Println(stringx.IfEmpty("", "fallback"))
	fmt.Println(stringx.IfEmpty("value", "fallback"))
	// Output:
	// fallback
	// value
}

func ExampleTrim() {
	fmt.Printf("%q\n", stringx.Trim("   hello there!   ", stringx.Whitespace))
	fmt.Printf("%q\n", stringx.Trim("/dir1/dir2/", stringx.Delim("/")))
	// Output:
	// "hello there!"
	// "dir1/dir2"
}

func ExampleLTrim() {
	fmt.Println(stringx.LTrim("ababx", stringx.Delim("ab")))
	fmt.Println(stringx.RTrim("x...", stringx.Delim(".")))
	// Output:
	// x
	// x
}

func ExampleConcat() {
	fmt.Println(stringx.Concat(", ", "John", "", "Maria", nil, "Peter"))
	fmt.Printf("%q\n", stringx.Concat(", "))
	// Output:
	// John, Maria, Peter
	// ""
}
