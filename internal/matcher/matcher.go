// Package matcher compiles a raw query into an executable Matcher.
//
// A query compiles into one of two variants: a literal substring
// matcher or a compiled regular expression. Case sensitivity is fixed
// at compile time for both variants, so callers never re-apply it per
// line.
package matcher

import (
	"regexp"
	"strings"
)

// Matcher tests a single line of text against a compiled query.
// Implementations are immutable after construction and safe to reuse
// across sources.
type Matcher interface {
	// Match reports whether line satisfies the query.
	Match(line string) bool
}

// Literal matches by substring containment. When case folding is
// enabled the pattern is stored pre-lowercased and each line is
// lowercased before the containment test.
type Literal struct {
	pattern    string
	ignoreCase bool
}

// Match implements Matcher.
func (l *Literal) Match(line string) bool {
	if l.ignoreCase {
		return strings.Contains(strings.ToLower(line), l.pattern)
	}
	return strings.Contains(line, l.pattern)
}

// Regex matches with a compiled regular expression. Case
// insensitivity, if requested, is baked into the compiled pattern via
// the (?i) flag rather than reapplied per line.
type Regex struct {
	re *regexp.Regexp
}

// Match implements Matcher.
func (r *Regex) Match(line string) bool {
	return r.re.MatchString(line)
}

// Pattern returns the underlying compiled expression for callers that
// need match positions (e.g. highlighting).
func (r *Regex) Pattern() *regexp.Regexp {
	return r.re
}

// Compile turns a raw query into a Matcher.
//
// With useRegex false the result is a Literal and compilation cannot
// fail. With useRegex true the pattern is compiled as a regular
// expression, case-insensitively when ignoreCase is set; a
// syntactically invalid pattern returns *InvalidPatternError.
// Compiling the same (pattern, flags) twice yields matchers with
// identical match behavior.
func Compile(pattern string, useRegex, ignoreCase bool) (Matcher, error) {
	if !useRegex {
		p := pattern
		if ignoreCase {
			p = strings.ToLower(p)
		}
		return &Literal{pattern: p, ignoreCase: ignoreCase}, nil
	}

	expr := pattern
	if ignoreCase {
		expr = "(?i)" + expr
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	return &Regex{re: re}, nil
}
