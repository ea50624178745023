// Package scanner applies a compiled matcher to the lines of an
// in-memory text buffer.
package scanner

import (
	"strings"

	"github.com/harrison/tinygrep/internal/matcher"
)

// Match is one line that satisfied the matcher, with its 1-based
// position within the source.
type Match struct {
	LineNumber int
	Text       string
}

// Scan evaluates m against every line of content, in order, and
// returns the matching lines. Line numbers are 1-based with no gaps or
// duplicates; a trailing newline does not produce a spurious empty
// final line. Scan has no side effects, so re-scanning the same
// content yields the same result.
func Scan(m matcher.Matcher, content string) []Match {
	var results []Match

	for i, line := range splitLines(content) {
		if m.Match(line) {
			results = append(results, Match{LineNumber: i + 1, Text: line})
		}
	}

	return results
}

// splitLines splits content on line boundaries, tolerating both LF and
// CRLF terminators. A terminator on the final line does not add an
// empty trailing segment.
func splitLines(content string) []string {
	if content == "" {
		return nil
	}

	content = strings.TrimSuffix(content, "\n")
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
