package walker

import (
	"errors"
	"fmt"
)

// ErrDirectoryWithoutRecursive is returned when a directory source is
// given without the recursive flag. No entries are emitted in that
// case.
var ErrDirectoryWithoutRecursive = errors.New("you provided a directory, but did not use the '-R' option for recursive search")

// NotFoundError reports a path that could not be read. It covers both
// nonexistent paths and generic read failures; the two are not
// distinguished.
type NotFoundError struct {
	Path string // the unreadable path
	Err  error  // underlying filesystem error (optional)
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("file '%s' not found", e.Path)
}

// Unwrap returns the underlying filesystem error for error wrapping
// support.
func (e *NotFoundError) Unwrap() error {
	return e.Err
}

// IOError reports a failure reading an input stream. It keeps stream
// failures (stdin) in the same typed taxonomy as path failures.
type IOError struct {
	Err error // underlying read error
}

// Error implements the error interface.
func (e *IOError) Error() string {
	return fmt.Sprintf("i/o error: %v", e.Err)
}

// Unwrap returns the underlying read error for error wrapping support.
func (e *IOError) Unwrap() error {
	return e.Err
}

// IsIOError checks if the error is or wraps an IOError.
func IsIOError(err error) bool {
	if err == nil {
		return false
	}
	var ie *IOError
	return errors.As(err, &ie)
}

// IsNotFound checks if the error is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	if err == nil {
		return false
	}
	var ne *NotFoundError
	return errors.As(err, &ne)
}
