// Package grep wires pattern compilation, source traversal, line
// scanning, and highlighting into one synchronous search run.
package grep

import (
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/harrison/tinygrep/internal/highlight"
	"github.com/harrison/tinygrep/internal/logger"
	"github.com/harrison/tinygrep/internal/matcher"
	"github.com/harrison/tinygrep/internal/scanner"
	"github.com/harrison/tinygrep/internal/walker"
)

// Options is the validated configuration for one search run. It is
// assembled by the CLI layer; the pipeline never parses flags itself.
type Options struct {
	// Query is the raw search pattern
	Query string

	// Paths are the sources to search, in order. Empty means read stdin.
	Paths []string

	// IgnoreCase enables case-insensitive matching
	IgnoreCase bool

	// ShowLineNumbers prefixes each match with its 1-based line number
	ShowLineNumbers bool

	// UseRegex treats Query as a regular expression
	UseRegex bool

	// Highlight wraps matched spans in color markers
	Highlight bool

	// Recursive allows directory sources to be walked
	Recursive bool

	// HighlightCompat selects the historical all-occurrences regex
	// highlighting instead of span-based wrapping
	HighlightCompat bool
}

// Pipeline runs a search: compile once, then scan each source in order
// and write matches to the output writer. A Pipeline is single-use per
// Run call but holds no per-run state, so Run may be called again with
// identical results for identical inputs.
type Pipeline struct {
	opts  Options
	out   io.Writer
	stdin io.Reader
	log   *logger.ConsoleLogger
}

// NewPipeline creates a Pipeline writing matches to out. Verbose
// logging is discarded unless a logger is attached with WithLogger.
func NewPipeline(opts Options, out io.Writer) *Pipeline {
	return &Pipeline{
		opts:  opts,
		out:   out,
		stdin: os.Stdin,
		log:   logger.NewConsoleLogger(nil, ""),
	}
}

// WithStdin overrides the reader used when no paths are configured.
func (p *Pipeline) WithStdin(r io.Reader) *Pipeline {
	p.stdin = r
	return p
}

// WithLogger attaches a logger for verbose progress output.
func (p *Pipeline) WithLogger(l *logger.ConsoleLogger) *Pipeline {
	p.log = l
	return p
}

// Run executes the search. The query is compiled exactly once; a
// compile failure returns before any source is read. Sources are then
// processed in configured order (stdin when none), and the first error
// aborts the run. Matches already written remain written.
func (p *Pipeline) Run() error {
	m, err := matcher.Compile(p.opts.Query, p.opts.UseRegex, p.opts.IgnoreCase)
	if err != nil {
		return err
	}

	// The highlighter needs match offsets, so surface the compiled
	// expression when the matcher is the regex variant.
	var re *regexp.Regexp
	if rm, ok := m.(*matcher.Regex); ok {
		re = rm.Pattern()
	}

	if len(p.opts.Paths) == 0 {
		p.log.LogDebug("no paths configured, reading stdin")
		entry, err := walker.ReadStdin(p.stdin)
		if err != nil {
			return err
		}
		return p.searchEntry(m, re, entry)
	}

	for _, path := range p.opts.Paths {
		err := walker.Walk(path, p.opts.Recursive, func(entry walker.SourceEntry) error {
			return p.searchEntry(m, re, entry)
		})
		if err != nil {
			return err
		}
	}

	return nil
}

// searchEntry scans one source and writes its matches. Sources with
// zero matches emit nothing.
func (p *Pipeline) searchEntry(m matcher.Matcher, re *regexp.Regexp, entry walker.SourceEntry) error {
	matches := scanner.Scan(m, entry.Content)
	p.log.LogDebug(fmt.Sprintf("scanned %s: %d matching line(s)", entry.Name, len(matches)))

	for _, match := range matches {
		text := match.Text
		if p.opts.Highlight {
			if p.opts.HighlightCompat {
				text = highlight.MatchCompat(p.opts.Query, text, p.opts.IgnoreCase, re)
			} else {
				text = highlight.Match(p.opts.Query, text, p.opts.IgnoreCase, re)
			}
		}

		if p.opts.ShowLineNumbers {
			fmt.Fprintf(p.out, "%s:%d: %s\n", entry.Name, match.LineNumber, text)
		} else {
			fmt.Fprintf(p.out, "%s:%s\n", entry.Name, text)
		}
	}

	return nil
}
