// Package diff renders line based unified diffs, used to compare a theme
// document with the base theme it overrides.
package diff

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 10000
	truncateMessage = "... (diff truncated, exceeds 10,000 lines) ..."
)

// Unified compares before and after line by line. It returns "" when
// they are equal.
func Unified(before, after []byte, beforeLabel, afterLabel string) string {
	if bytes.Equal(before, after) {
		return ""
	}

	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "--- %s\n", beforeLabel)
	fmt.Fprintf(&buf, "+++ %s\n", afterLabel)
	fmt.Fprintf(&buf, "@@ -1,%d +1,%d @@\n", countLines(before), countLines(after))

	written := 3
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range splitLines(d.Text) {
			if written >= maxDiffLines {
				buf.WriteString(truncateMessage + "\n")
				return buf.String()
			}
			buf.WriteString(prefix + line + "\n")
			written++
		}
	}
	return buf.String()
}

// Changed counts the lines removed and added between before and after.
func Changed(before, after []byte) (removed, added int) {
	dmp := diffmatchpatch.New()
	a, b, lines := dmp.DiffLinesToChars(string(before), string(after))
	for _, d := range dmp.DiffCharsToLines(dmp.DiffMain(a, b, false), lines) {
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			removed += len(splitLines(d.Text))
		case diffmatchpatch.DiffInsert:
			added += len(splitLines(d.Text))
		}
	}
	return removed, added
}

func splitLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	if text == "" {
		return nil
	}
	return strings.Split(text, "\n")
}

func countLines(data []byte) int {
	return len(splitLines(string(data)))
}
