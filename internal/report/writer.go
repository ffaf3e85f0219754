package report

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/isawnyu/pleiades-quality/internal/types"
)

// FileName is the fixed name of the report file inside the destination
// directory.
const FileName = "issues.json"

// Write serializes the report to <destDir>/issues.json, creating destDir if
// needed and fully replacing any prior report. It returns the path written.
func Write(r *types.Report, destDir string) (string, error) {
	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return "", &OutputWriteError{Path: destDir, Cause: err}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", &OutputWriteError{Path: destDir, Cause: err}
	}

	path := filepath.Join(destDir, FileName)
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return "", &OutputWriteError{Path: path, Cause: err}
	}
	return path, nil
}
