// Package export slices a previously written issues.json report into one
// CSV file per issue category.
package export

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/isawnyu/pleiades-quality/internal/schemas"
	"github.com/isawnyu/pleiades-quality/internal/types"
)

// CSVs reads the report at issuesPath and writes <category>.csv for every
// key of its issues mapping into the report's directory, overwriting any
// prior export. A category with no issues still gets a header-only CSV, so
// consumers can tell "clean" from "absent". The written paths are returned
// in creation order.
func CSVs(issuesPath string, log *zap.SugaredLogger) ([]string, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	data, err := os.ReadFile(issuesPath)
	if err != nil {
		return nil, &ReportParseError{Path: issuesPath, Message: "failed to read report file", Cause: err}
	}
	if err := schemas.ValidateReport(data); err != nil {
		return nil, &ReportParseError{Path: issuesPath, Message: "report does not match expected shape", Cause: err}
	}

	var rep types.Report
	if err := json.Unmarshal(data, &rep); err != nil {
		return nil, &ReportParseError{Path: issuesPath, Message: "failed to parse report JSON", Cause: err}
	}

	outDir := filepath.Dir(issuesPath)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %s: %w", outDir, err)
	}

	categories := make([]string, 0, len(rep.Issues))
	for c := range rep.Issues {
		categories = append(categories, c)
	}
	sort.Strings(categories)

	var written []string
	for _, category := range categories {
		path := filepath.Join(outDir, category+".csv")
		if err := writeCategory(path, rep.Issues[category]); err != nil {
			return written, err
		}
		log.Infof("wrote %s (%d rows)", path, len(rep.Issues[category]))
		written = append(written, path)
	}
	return written, nil
}

// writeCategory writes one category's issues as a CSV file. The header is
// "id" plus the sorted union of detail keys across the category's entries;
// a scalar detail contributes a plain "detail" column. Rows are sorted by
// record id, numerically when every id parses as an integer.
func writeCategory(path string, issues types.IssueList) error {
	header := append([]string{"id"}, detailColumns(issues)...)

	rows := make([]map[string]string, 0, len(issues))
	for _, issue := range issues {
		rows = append(rows, flatten(issue))
	}
	sortRows(rows)

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := csv.NewWriter(f)
	if err := w.Write(header); err != nil {
		return fmt.Errorf("failed to write CSV header to %s: %w", path, err)
	}
	record := make([]string, len(header))
	for _, row := range rows {
		for i, col := range header {
			record[i] = row[col]
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("failed to write CSV row to %s: %w", path, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("failed to flush CSV file %s: %w", path, err)
	}
	return f.Close()
}

// detailColumns returns the sorted union of detail keys across the entries.
func detailColumns(issues types.IssueList) []string {
	seen := map[string]struct{}{}
	for _, issue := range issues {
		switch d := issue.Detail.(type) {
		case nil:
		case map[string]any:
			for k := range d {
				if k == "id" {
					continue
				}
				seen[k] = struct{}{}
			}
		default:
			seen["detail"] = struct{}{}
		}
	}
	cols := make([]string, 0, len(seen))
	for k := range seen {
		cols = append(cols, k)
	}
	sort.Strings(cols)
	return cols
}

// flatten turns an issue into a column→value map.
func flatten(issue types.Issue) map[string]string {
	row := map[string]string{"id": issue.ID}
	switch d := issue.Detail.(type) {
	case nil:
	case map[string]any:
		for k, v := range d {
			// The id column always carries the record identifier; a
			// detail field of the same name must not clobber it.
			if k == "id" {
				continue
			}
			row[k] = formatValue(v)
		}
	default:
		row["detail"] = formatValue(d)
	}
	return row
}

// formatValue renders a detail value for a CSV cell. Lists are joined with
// "|"; everything else is rendered as its natural string form.
func formatValue(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		return strconv.FormatBool(val)
	case []any:
		parts := make([]string, 0, len(val))
		for _, item := range val {
			parts = append(parts, formatValue(item))
		}
		return strings.Join(parts, "|")
	case []string:
		return strings.Join(val, "|")
	case nil:
		return ""
	default:
		// Nested objects are rare; render them as compact JSON.
		b, err := json.Marshal(val)
		if err != nil {
			return fmt.Sprintf("%v", val)
		}
		return string(b)
	}
}

// sortRows orders rows by id, numerically when every id is an integer.
func sortRows(rows []map[string]string) {
	numeric := true
	for _, row := range rows {
		if _, err := strconv.Atoi(row["id"]); err != nil {
			numeric = false
			break
		}
	}
	sort.SliceStable(rows, func(i, j int) bool {
		if numeric {
			a, _ := strconv.Atoi(rows[i]["id"])
			b, _ := strconv.Atoi(rows[j]["id"])
			return a < b
		}
		return rows[i]["id"] < rows[j]["id"]
	})
}
