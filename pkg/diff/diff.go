// Package diff renders line-oriented unified diffs.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	contextLines    = 3
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

type op struct {
	kind diffmatchpatch.Operation
	line string
}

// Unified compares two texts line by line and returns a unified diff with
// three lines of context. Identical inputs produce an empty string.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	ops := flatten(diffs)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	for _, h := range hunks(ops) {
		writeHunk(&buf, ops, h)
	}

	result := buf.String()
	out := strings.Split(result, "\n")
	if len(out) > maxDiffLines {
		return strings.Join(out[:maxDiffLines], "\n") + "\n" + truncateMessage + "\n"
	}
	return result
}

func flatten(diffs []diffmatchpatch.Diff) []op {
	var ops []op
	for _, d := range diffs {
		text := strings.TrimSuffix(d.Text, "\n")
		if d.Text == "" {
			continue
		}
		for _, line := range strings.Split(text, "\n") {
			ops = append(ops, op{kind: d.Type, line: line})
		}
	}
	return ops
}

type span struct{ start, end int }

// hunks groups changed lines whose context windows touch.
func hunks(ops []op) []span {
	var out []span
	for i, o := range ops {
		if o.kind == diffmatchpatch.DiffEqual {
			continue
		}
		start := max(i-contextLines, 0)
		end := min(i+contextLines+1, len(ops))
		if n := len(out); n > 0 && start <= out[n-1].end {
			out[n-1].end = max(out[n-1].end, end)
			continue
		}
		out = append(out, span{start: start, end: end})
	}
	return out
}

func writeHunk(buf *bytes.Buffer, ops []op, h span) {
	beforeStart, afterStart := 1, 1
	for _, o := range ops[:h.start] {
		if o.kind != diffmatchpatch.DiffInsert {
			beforeStart++
		}
		if o.kind != diffmatchpatch.DiffDelete {
			afterStart++
		}
	}

	var beforeLen, afterLen int
	var body strings.Builder
	for _, o := range ops[h.start:h.end] {
		switch o.kind {
		case diffmatchpatch.DiffEqual:
			body.WriteString(" ")
			beforeLen++
			afterLen++
		case diffmatchpatch.DiffDelete:
			body.WriteString("-")
			beforeLen++
		case diffmatchpatch.DiffInsert:
			body.WriteString("+")
			afterLen++
		}
		body.WriteString(o.line)
		body.WriteString("\n")
	}

	if beforeLen == 0 {
		beforeStart--
	}
	if afterLen == 0 {
		afterStart--
	}
	fmt.Fprintf(buf, "@@ -%d,%d +%d,%d @@\n", beforeStart, beforeLen, afterStart, afterLen)
	buf.WriteString(body.String())
}
