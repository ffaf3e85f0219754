package report

import "fmt"

// InputPathError represents a source directory that does not exist or
// cannot be traversed. It is fatal: no output is written.
type InputPathError struct {
	Path  string
	Cause error
}

func (e *InputPathError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("input path error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("input path error: %s", e.Path)
}

func (e *InputPathError) Unwrap() error {
	return e.Cause
}

// OutputWriteError represents a destination that cannot be created or
// written.
type OutputWriteError struct {
	Path  string
	Cause error
}

func (e *OutputWriteError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("output write error: %s: %v", e.Path, e.Cause)
	}
	return fmt.Sprintf("output write error: %s", e.Path)
}

func (e *OutputWriteError) Unwrap() error {
	return e.Cause
}
