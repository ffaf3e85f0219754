// Package observability provides formatted human-readable output for the
// end of a report run.
package observability

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/isawnyu/pleiades-quality/internal/checks"
	"github.com/isawnyu/pleiades-quality/internal/types"
)

// categoryPhrasing maps each category to the sentence template used in the
// human-readable summary. The %s is the formatted count.
var categoryPhrasing = map[string]string{
	checks.RoughNotUnlocated:           "%s places with 'rough' precision (i.e., no specific geometry), but not marked 'unlocated'.",
	checks.PoorAccuracy:                fmt.Sprintf("%%s places whose locations have no horizontal accuracy smaller than %s meters.", groupDigits(int(checks.AccuracyThreshold))),
	checks.MissingAccuracy:             "%s places whose locations have no associated accuracy value.",
	checks.BadOSMWay:                   "%s places whose locations include an OSM Way that has been incompletely imported as a Node.",
	checks.BadPlaceType:                "%s places that make use of a deprecated place type.",
	checks.QuestionMarkTitles:          "%s place titles that include a question mark.",
	checks.NamesRomanizedOnly:          "%s places with names that only have values in the 'romanized' field (no 'attested' field value in original language and script).",
	checks.MissingModernName:           "%s places that have no assigned 'modern name'.",
	checks.ReferencesWithoutZotero:     "%s places that have at least one reference without a Zotero URI.",
	checks.ReferencesWithInvalidZotero: "%s places that have at least one reference with an invalid Zotero URI.",
	checks.EmptyDescription:            "%s places with an empty description.",
	checks.InadequateDescription:       "%s places whose description is clearly inadequate (i.e., 'cited: BAtlas' or 'A place from the TAVO Index').",
	checks.UnreadableRecord:            "%s record files that could not be parsed.",
}

// Printer handles formatted output for the report summary.
type Printer struct {
	out io.Writer
	now func() time.Time
}

// NewPrinter creates a Printer that writes to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out, now: time.Now}
}

// PrintReportSummary outputs the human-readable summary block for a
// completed report: a dated heading followed by one line per category.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintReportSummary(rep *types.Report, categories []string) {
	fmt.Fprintf(p.out, "Pleiades Data Quality Report %s\n", p.now().Format("2006-01-02"))
	fmt.Fprintf(p.out, "%s\n", strings.Repeat("-", 78))
	fmt.Fprintf(p.out, "%s places examined, %s with at least one problem.\n",
		groupDigits(rep.Summary[types.KeyPlaceCount]),
		groupDigits(rep.Summary[types.KeyProblemCount]))
	for _, category := range categories {
		line := p.categoryLine(category, rep.Summary[category])
		fmt.Fprintf(p.out, "- %s\n", line)
	}
}

func (p *Printer) categoryLine(category string, count int) string {
	phrasing, ok := categoryPhrasing[category]
	if !ok {
		phrasing = "%s places flagged for " + category + "."
	}
	return fmt.Sprintf(phrasing, groupDigits(count))
}

// groupDigits formats a count with comma thousands separators.
func groupDigits(n int) string {
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}
	var sb strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		sb.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if sb.Len() > 0 {
			sb.WriteString(",")
		}
		sb.WriteString(s[i : i+3])
	}
	return sb.String()
}
