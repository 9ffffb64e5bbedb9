// File: example_test.go
// Title: sptext Examples
// Description: Executable documentation for dispatch by name and typed calls.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-18
// Modified: 2026-10-18

package sptext_test

import (
	"fmt"

	"github.com/msto63/sptext/foundation/sptext"
	"github.com/msto63/sptext/foundation/utils/stringx"
)

func ExampleDispatch() {
	v, _ := sptext.Dispatch("trim", "   hello there!   ")
	fmt.Printf("%q\n", v)

	v, _ = sptext.Dispatch("trim", "/dir1/dir2/", "/")
	fmt.Printf("%q\n", v)

	v, _ = sptext.Dispatch("concat", ", ", "John", "", "Maria", nil, "Peter")
	fmt.Println(v)

	v, _ = sptext.Dispatch("isEmpty", 0)
	fmt.Println(v)
	// Output:
	// "hello there!"
	// "dir1/dir2"
	// John, Maria, Peter
	// false
}

func ExampleInvoke() {
	v := sptext.Invoke(sptext.LTrimCall{Text: "ababx", Delimiter: stringx.Delim("ab")})
	fmt.Println(v)
	// Output: x
}

func ExampleLookup() {
	m, _ := sptext.Lookup("concat")
	fmt.Println(m.Signature())
	// Output: concat(glue? string, values ...any) string
}
