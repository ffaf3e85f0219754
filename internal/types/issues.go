// Package types provides type definitions for the structured data exchanged
// between the collector, the report writer, and the CSV exporter.
package types

// Issue records a single place's failure of a single quality check.
// Detail is optional; depending on what the check captured it is either a
// plain string or a string-keyed map of extra fields.
type Issue struct {
	ID     string `json:"id"`
	Detail any    `json:"detail,omitempty"`
}

// IssueList is the ordered sequence of failures for one category.
// Order follows the order records were scanned.
type IssueList []Issue

// Summary maps category names to failure counts. It also carries the
// bookkeeping keys "place_count" and "problem_count".
type Summary map[string]int

// Summary bookkeeping keys that are not check categories.
const (
	KeyPlaceCount   = "place_count"
	KeyProblemCount = "problem_count"
)

// Report is the top-level structure written to issues.json.
type Report struct {
	Summary Summary              `json:"summary"`
	Issues  map[string]IssueList `json:"issues"`
}

// NewReport returns an empty Report with one (empty) issue list per
// category, so every category appears in the output even when clean.
func NewReport(categories []string) *Report {
	r := &Report{
		Summary: Summary{},
		Issues:  make(map[string]IssueList, len(categories)),
	}
	for _, c := range categories {
		r.Issues[c] = IssueList{}
	}
	return r
}

// Add appends an issue to the named category's list.
func (r *Report) Add(category string, issue Issue) {
	r.Issues[category] = append(r.Issues[category], issue)
}

// Finalize derives the summary from the accumulated issue lists and records
// the scan totals. After Finalize, summary[c] == len(issues[c]) for every
// category c.
func (r *Report) Finalize(placeCount, problemCount int) {
	for c, list := range r.Issues {
		r.Summary[c] = len(list)
	}
	r.Summary[KeyPlaceCount] = placeCount
	r.Summary[KeyProblemCount] = problemCount
}
