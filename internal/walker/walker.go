// Package walker resolves search sources (files, directories, stdin)
// into units of searchable content.
//
// Each resolved unit is a SourceEntry: a display name paired with the
// source's full text. Directory sources expand depth-first into one
// entry per contained file; the directory itself owns no content.
package walker

import (
	"io"
	"os"
	"path/filepath"
	"sort"
)

// StdinName is the display identifier for content read from standard
// input.
const StdinName = "stdin"

// SourceEntry is one unit of searchable content: a file's text or
// stdin's text, paired with the name used to prefix its matches.
type SourceEntry struct {
	Name    string
	Content string
}

// ReadStdin reads r to end-of-stream and returns a single entry named
// "stdin". A read failure returns *IOError.
func ReadStdin(r io.Reader) (SourceEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return SourceEntry{}, &IOError{Err: err}
	}
	return SourceEntry{Name: StdinName, Content: string(data)}, nil
}

// ReadFile reads the file at path fully into memory. An unreadable
// path returns *NotFoundError.
func ReadFile(path string) (SourceEntry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return SourceEntry{}, &NotFoundError{Path: path, Err: err}
	}
	return SourceEntry{Name: path, Content: string(data)}, nil
}

// Walk resolves path into SourceEntry values and passes each to fn in
// traversal order.
//
// A file path yields exactly one entry. A directory path fails with
// ErrDirectoryWithoutRecursive unless recursive is set; with recursive
// set it is walked depth-first, visiting each directory's entries in
// name order, emitting one entry per file. The walk uses an explicit
// stack, so traversal depth is bounded by the filesystem tree, not the
// call stack.
//
// The first read error aborts the walk and is returned as-is; entries
// already passed to fn are not affected. A non-nil error from fn also
// aborts the walk.
func Walk(path string, recursive bool, fn func(SourceEntry) error) error {
	info, err := os.Stat(path)
	if err != nil {
		return &NotFoundError{Path: path, Err: err}
	}

	if !info.IsDir() {
		entry, err := ReadFile(path)
		if err != nil {
			return err
		}
		return fn(entry)
	}

	if !recursive {
		return ErrDirectoryWithoutRecursive
	}

	// Depth-first walk. Popping a directory pushes its children on
	// top of the stack, so a subdirectory is fully expanded before
	// its later siblings are visited.
	stack := []string{path}
	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		info, err := os.Stat(current)
		if err != nil {
			return &NotFoundError{Path: current, Err: err}
		}

		if !info.IsDir() {
			entry, err := ReadFile(current)
			if err != nil {
				return err
			}
			if err := fn(entry); err != nil {
				return err
			}
			continue
		}

		children, err := os.ReadDir(current)
		if err != nil {
			return &NotFoundError{Path: current, Err: err}
		}

		// Entries are visited in name order for deterministic
		// output; pushed in reverse so the first name pops first.
		sort.Slice(children, func(i, j int) bool {
			return children[i].Name() < children[j].Name()
		})
		for i := len(children) - 1; i >= 0; i-- {
			stack = append(stack, filepath.Join(current, children[i].Name()))
		}
	}

	return nil
}
