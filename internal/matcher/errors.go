package matcher

import (
	"errors"
	"fmt"
)

// InvalidPatternError reports a query that failed to compile as a
// regular expression. It carries the raw pattern as the user typed it.
type InvalidPatternError struct {
	Pattern string // the raw, uncompilable pattern
	Err     error  // underlying regexp compile error (optional)
}

// Error implements the error interface.
func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid regular expression: '%s'", e.Pattern)
}

// Unwrap returns the underlying compile error for error wrapping
// support.
func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// IsInvalidPattern checks if the error is or wraps an
// InvalidPatternError.
func IsInvalidPattern(err error) bool {
	if err == nil {
		return false
	}
	var pe *InvalidPatternError
	return errors.As(err, &pe)
}
