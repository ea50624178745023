package highlight

import (
	"regexp"
	"strings"
)

// MatchCompat reproduces the historical regex highlighting behavior:
// for each located match, every textual occurrence of the matched
// substring within the line is wrapped, not just the located span.
// This over-highlights when the matched text recurs elsewhere in the
// line and can nest markers for repeated identical matches. It exists
// only for output compatibility with older releases, selected via the
// highlight_compat config key; new callers should use Match.
func MatchCompat(query, line string, ignoreCase bool, re *regexp.Regexp) string {
	if re == nil {
		return Match(query, line, ignoreCase, nil)
	}

	highlighted := line
	for _, loc := range re.FindAllStringIndex(line, -1) {
		matched := line[loc[0]:loc[1]]
		highlighted = strings.ReplaceAll(highlighted, matched, Apply(matched))
	}

	return highlighted
}
