package libdiff

import (
	"strings"

	"github.com/fatih/color"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"
)

// Edit is a run of text kept, inserted or deleted.
type Edit struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Text computes the character edits turning from into to.
func Text(from, to string) []Edit {
	diffCfg := diffpatch.New()
	diffs := diffCfg.DiffMain(from, to, false)
	diffs = diffCfg.DiffCleanupSemantic(diffs)
	res := make([]Edit, 0, len(diffs))
	for i := range diffs {
		diff := &diffs[i]
		var op Op
		switch diff.Type {
		case diffpatch.DiffInsert:
			op = Insert
		case diffpatch.DiffDelete:
			op = Delete
		default:
			op = Equal
		}
		res = append(res, Edit{Op: op, Text: diff.Text})
	}
	return res
}

// Changed reports whether edits contain an insertion or deletion.
func Changed(edits []Edit) bool {
	for i := range edits {
		if edits[i].Op != Equal {
			return true
		}
	}
	return false
}

// Size is the number of bytes inserted or deleted.
func Size(edits []Edit) int {
	n := 0
	for i := range edits {
		if edits[i].Op != Equal {
			n += len(edits[i].Text)
		}
	}
	return n
}

var (
	deleteColor = color.New(color.FgRed, color.CrossedOut).SprintFunc()
	insertColor = color.New(color.FgGreen).SprintFunc()
)

// Format renders edits inline, deletions as `[-text-]` and insertions as
// `{+text+}`, or in red and green when colors is set.
func Format(edits []Edit, colors bool) string {
	buf := strings.Builder{}
	for _, e := range edits {
		switch {
		case e.Op == Equal:
			buf.WriteString(e.Text)
		case colors && e.Op == Delete:
			buf.WriteString(deleteColor(e.Text))
		case colors:
			buf.WriteString(insertColor(e.Text))
		case e.Op == Delete:
			buf.WriteString("[-" + e.Text + "-]")
		default:
			buf.WriteString("{+" + e.Text + "+}")
		}
	}
	return buf.String()
}
