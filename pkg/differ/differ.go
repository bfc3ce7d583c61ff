// Package differ computes line-level edit scripts between two canonical
// texts and scores the amount of change they represent.
package differ

import (
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// Op classifies one line of an edit script.
type Op string

const (
	OpUnchanged Op = "unchanged"
	OpAdded     Op = "added"
	OpRemoved   Op = "removed"
)

// Line is one line of an edit script. Every line of both input texts
// appears exactly once in a transcript, tagged with its Op.
type Line struct {
	Op   Op     `json:"op"`
	Text string `json:"text"`
}

// Diff computes a minimal line-level edit script between oldText and
// newText. The alignment is diffmatchpatch's Myers diff run in line mode,
// so identical aligned lines are never reported as a remove/add pair.
// Pure and deterministic; no external tools.
func Diff(oldText, newText string) []Line {
	dmp := diffmatchpatch.New()
	oldChars, newChars, lineArray := dmp.DiffLinesToChars(terminate(oldText), terminate(newText))
	diffs := dmp.DiffMain(oldChars, newChars, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	var script []Line
	for _, d := range diffs {
		var op Op
		switch d.Type {
		case diffmatchpatch.DiffInsert:
			op = OpAdded
		case diffmatchpatch.DiffDelete:
			op = OpRemoved
		default:
			op = OpUnchanged
		}
		for _, text := range splitLines(d.Text) {
			script = append(script, Line{Op: op, Text: text})
		}
	}
	return script
}

// Transcript renders an edit script as a human-readable block with
// "+ " / "- " / "  " prefixes, one line per script entry.
func Transcript(script []Line) string {
	rendered := make([]string, len(script))
	for i, line := range script {
		switch line.Op {
		case OpAdded:
			rendered[i] = "+ " + line.Text
		case OpRemoved:
			rendered[i] = "- " + line.Text
		default:
			rendered[i] = "  " + line.Text
		}
	}
	return strings.Join(rendered, "\n")
}

// terminate guarantees the trailing newline line mode needs to treat the
// final line like every other one. Empty texts stay empty so they
// contribute zero lines.
func terminate(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}

func splitLines(s string) []string {
	if s == "" {
		return nil
	}
	return strings.Split(strings.TrimSuffix(s, "\n"), "\n")
}
