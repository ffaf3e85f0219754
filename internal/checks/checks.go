// Package checks implements the battery of independent quality checks run
// against each place record. Each check inspects one quality dimension and
// is pure: it never mutates the record and shares no state with other
// checks.
package checks

import "github.com/isawnyu/pleiades-quality/internal/place"

// Category names. UnreadableRecord is reserved for records the collector
// could not parse; it is not a registered check.
const (
	QuestionMarkTitles          = "question_mark_titles"
	RoughNotUnlocated           = "rough_not_unlocated"
	PoorAccuracy                = "poor_accuracy"
	MissingAccuracy             = "missing_accuracy"
	BadOSMWay                   = "bad_osm_way"
	BadPlaceType                = "bad_place_type"
	NamesRomanizedOnly          = "names_romanized_only"
	MissingModernName           = "missing_modern_name"
	ReferencesWithoutZotero     = "references_without_zotero"
	ReferencesWithInvalidZotero = "references_with_invalid_zotero"
	EmptyDescription            = "empty_description"
	InadequateDescription       = "inadequate_description"
	UnreadableRecord            = "unreadable_record"
)

// Check is a named quality rule. Run reports whether the place fails the
// rule; on failure it may return a detail payload (a string or a
// string-keyed map) for the report.
type Check struct {
	Name string
	Run  func(p *place.Place) (detail any, failed bool)
}

// Default returns the fixed check battery in its canonical order.
func Default() []Check {
	return []Check{
		{Name: QuestionMarkTitles, Run: questionMarkTitles},
		{Name: RoughNotUnlocated, Run: roughNotUnlocated},
		{Name: PoorAccuracy, Run: poorAccuracy},
		{Name: MissingAccuracy, Run: missingAccuracy},
		{Name: BadOSMWay, Run: badOSMWay},
		{Name: BadPlaceType, Run: badPlaceType},
		{Name: NamesRomanizedOnly, Run: namesRomanizedOnly},
		{Name: MissingModernName, Run: missingModernName},
		{Name: ReferencesWithoutZotero, Run: referencesWithoutZotero},
		{Name: ReferencesWithInvalidZotero, Run: referencesWithInvalidZotero},
		{Name: EmptyDescription, Run: emptyDescription},
		{Name: InadequateDescription, Run: inadequateDescription},
	}
}

// Categories returns every category name a report can contain: the names
// of the given checks plus the reserved unreadable-record category.
func Categories(cs []Check) []string {
	names := make([]string, 0, len(cs)+1)
	for _, c := range cs {
		names = append(names, c.Name)
	}
	return append(names, UnreadableRecord)
}
