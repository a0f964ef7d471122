package main

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestReadExprs(t *testing.T) {
	in := `
// comments are skipped
string
  {number|boolean}

   // indented comment
{a: b}
`
	got, err := readExprs(strings.NewReader(in), false)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"string", "{number|boolean}", "{a: b}"}, got); diff != "" {
		t.Error(diff)
	}
	got, err = readExprs(strings.NewReader(in), true)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"string", "number|boolean", "a: b"}, got); diff != "" {
		t.Error(diff)
	}
}

func TestStripBraces(t *testing.T) {
	for in, out := range map[string]string{
		"{string}":     "string",
		" { ?Foo } ":   "?Foo",
		"{}":           "",
		"{":            "{",
		"Array<{a:b}>": "Array<{a:b}>",
		"{a}|{b}":      "a}|{b",
	} {
		if got := stripBraces(in); got != out {
			t.Errorf("%q: got %q want %q", in, got, out)
		}
	}
}
