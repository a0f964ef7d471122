package libdiff

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestText(t *testing.T) {
	edits := Text("number=", "number")
	want := []Edit{{Op: Equal, Text: "number"}, {Op: Delete, Text: "="}}
	if diff := cmp.Diff(want, edits); diff != "" {
		t.Error(diff)
	}
	if got := Format(edits, false); got != "number[-=-]" {
		t.Errorf("got %q", got)
	}
	if got := Format(Text("string", "string="), false); got != "string{+=+}" {
		t.Errorf("got %q", got)
	}
	if Size(edits) != 1 {
		t.Errorf("size %d", Size(edits))
	}
}

func sides(edits []Edit) (string, string) {
	from, to := strings.Builder{}, strings.Builder{}
	for _, e := range edits {
		if e.Op != Insert {
			from.WriteString(e.Text)
		}
		if e.Op != Delete {
			to.WriteString(e.Text)
		}
	}
	return from.String(), to.String()
}

func TestTextSides(t *testing.T) {
	for _, pair := range [][2]string{
		{"Object!", "!Object"},
		{"function(this:T,?,number):?", "function(this: T, ?, number): ?"},
		{"Array.<string>", "string[]"},
		{"", "x"},
	} {
		edits := Text(pair[0], pair[1])
		if !Changed(edits) {
			t.Errorf("%q: no change", pair[0])
		}
		from, to := sides(edits)
		if from != pair[0] || to != pair[1] {
			t.Errorf("got %q -> %q want %q -> %q", from, to, pair[0], pair[1])
		}
		f := Format(edits, false)
		if !strings.Contains(f, "{+") && !strings.Contains(f, "[-") {
			t.Errorf("%q: %q has no markup", pair[0], f)
		}
	}
}

func TestUnchanged(t *testing.T) {
	edits := Text("a|b", "a|b")
	if Changed(edits) || Size(edits) != 0 {
		t.Errorf("got %v", edits)
	}
	if got := Format(edits, true); got != "a|b" {
		t.Errorf("got %q", got)
	}
}
