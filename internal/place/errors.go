package place

import "fmt"

// RecordReadError represents a record file that could not be read or parsed.
// The collector recovers from it by reporting the record as unreadable.
type RecordReadError struct {
	Path    string
	Message string
	Cause   error
}

func (e *RecordReadError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("record read error: %s: %s: %v", e.Path, e.Message, e.Cause)
	}
	return fmt.Sprintf("record read error: %s: %s", e.Path, e.Message)
}

func (e *RecordReadError) Unwrap() error {
	return e.Cause
}
