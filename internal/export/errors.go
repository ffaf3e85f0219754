package export

import "fmt"

// ReportParseError represents an issues.json file that is missing,
// unreadable, or does not match the expected report shape. It is fatal:
// no CSV is written.
type ReportParseError struct {
	Path    string
	Message string
	Cause   error
}

func (e *ReportParseError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("report parse error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("report parse error: %s: %s", e.Path, e.Message)
}

func (e *ReportParseError) Unwrap() error {
	return e.Cause
}
