package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// contextLines is how many unchanged lines are shown around each change.
const contextLines = 3

// Unified renders a unified line diff between the old and new contents of a
// file. Unchanged runs beyond the context window are collapsed into
// separate hunks so a whole-file rewrite with one changed import block
// stays readable. Identical contents yield an empty string.
func Unified(path, oldText, newText string) string {
	if oldText == newText {
		return ""
	}

	ops := lineOps(oldText, newText)
	hunks := groupHunks(ops, contextLines)

	var b strings.Builder
	fmt.Fprintf(&b, "--- a/%s\n+++ b/%s\n", path, path)
	for _, h := range hunks {
		fmt.Fprintf(&b, "@@ -%d,%d +%d,%d @@\n", h.oldStart, h.oldCount, h.newStart, h.newCount)
		for _, op := range h.ops {
			b.WriteByte(op.marker)
			b.WriteString(strings.TrimSuffix(op.text, "\n"))
			b.WriteByte('\n')
		}
	}
	return b.String()
}

type lineOp struct {
	marker byte // ' ', '-' or '+'
	text   string
}

type hunk struct {
	oldStart, oldCount int
	newStart, newCount int
	ops                []lineOp
}

// lineOps produces one marked entry per line of the diff.
func lineOps(oldText, newText string) []lineOp {
	dmp := diffmatchpatch.New()

	// Diff based on lines:
	rOld, rNew, lineArray := dmp.DiffLinesToRunes(oldText, newText)
	diffs := dmp.DiffMainRunes(rOld, rNew, false)
	diffs = dmp.DiffCleanupMerge(diffs)

	var ops []lineOp
	for _, d := range diffs {
		marker := byte(' ')
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			marker = '-'
		case diffmatchpatch.DiffInsert:
			marker = '+'
		}
		// Decode the rune-string back to original lines via lineArray.
		for _, r := range d.Text {
			idx := int(r)
			if idx < 0 || idx >= len(lineArray) {
				continue
			}
			ops = append(ops, lineOp{marker: marker, text: lineArray[idx]})
		}
	}
	return ops
}

// groupHunks selects every change plus its surrounding context and walks
// the kept runs into hunks. Changes whose context windows touch end up in
// the same hunk.
func groupHunks(ops []lineOp, context int) []hunk {
	keep := make([]bool, len(ops))
	for i, op := range ops {
		if op.marker == ' ' {
			continue
		}
		lo := i - context
		if lo < 0 {
			lo = 0
		}
		hi := i + context
		if hi > len(ops)-1 {
			hi = len(ops) - 1
		}
		for j := lo; j <= hi; j++ {
			keep[j] = true
		}
	}

	var hunks []hunk
	oldLine, newLine := 1, 1
	i := 0
	for i < len(ops) {
		if !keep[i] {
			oldLine++
			newLine++
			i++
			continue
		}
		h := hunk{oldStart: oldLine, newStart: newLine}
		for i < len(ops) && keep[i] {
			op := ops[i]
			h.ops = append(h.ops, op)
			if op.marker != '+' {
				h.oldCount++
				oldLine++
			}
			if op.marker != '-' {
				h.newCount++
				newLine++
			}
			i++
		}
		hunks = append(hunks, h)
	}
	return hunks
}
