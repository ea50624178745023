// Package highlight re-renders matched lines with the matched spans
// wrapped in terminal color markers.
//
// All functions are pure: the same inputs always produce the same
// output string. Marker bytes are emitted unconditionally (color is
// forced on) so that rendering does not depend on the ambient TTY;
// whether highlighting happens at all is the caller's decision.
package highlight

import (
	"regexp"
	"strings"

	"github.com/fatih/color"
)

// marker is the fixed bold-yellow start/reset end pair used to bracket
// matched text. EnableColor pins the escape bytes regardless of TTY
// detection, keeping output deterministic.
var marker = func() *color.Color {
	c := color.New(color.Bold, color.FgYellow)
	c.EnableColor()
	return c
}()

// Apply wraps text in the highlight marker pair.
func Apply(text string) string {
	return marker.Sprint(text)
}

// Match renders line with its matched span(s) highlighted.
//
// When re is non-nil, every non-overlapping match of re within line is
// wrapped, left to right, using the regex engine's match offsets
// directly. When re is nil (literal mode), only the first
// case-adjusted occurrence of query is wrapped; repeated occurrences
// on the same line are left untouched.
//
// A line the query does not occur in is returned unchanged.
func Match(query, line string, ignoreCase bool, re *regexp.Regexp) string {
	if re != nil {
		return withRegex(re, line)
	}
	if ignoreCase {
		query = strings.ToLower(query)
	}
	return withSubstring(query, line, ignoreCase)
}

// withRegex wraps each match span by its start/end offsets. Wrapping by
// offset (rather than substring replacement) keeps text outside the
// located spans untouched even when it happens to equal the matched
// text.
func withRegex(re *regexp.Regexp, line string) string {
	locs := re.FindAllStringIndex(line, -1)
	if len(locs) == 0 {
		return line
	}

	var b strings.Builder
	prev := 0
	for _, loc := range locs {
		b.WriteString(line[prev:loc[0]])
		b.WriteString(Apply(line[loc[0]:loc[1]]))
		prev = loc[1]
	}
	b.WriteString(line[prev:])

	return b.String()
}

// withSubstring wraps the first occurrence of query within line. The
// position is located on the case-adjusted copy but the wrapped bytes
// come from the original line. Lowercasing can change byte length for
// some scripts, so both span offsets are clamped to the line; an
// offset past the end leaves the line unchanged.
func withSubstring(query, line string, ignoreCase bool) string {
	search := line
	if ignoreCase {
		search = strings.ToLower(line)
	}

	pos := strings.Index(search, query)
	if pos < 0 || pos >= len(line) {
		return line
	}

	end := pos + len(query)
	if end > len(line) {
		end = len(line)
	}

	return line[:pos] + Apply(line[pos:end]) + line[end:]
}
