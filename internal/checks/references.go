package checks

import (
	"fmt"

	"github.com/isawnyu/pleiades-quality/internal/place"
)

// referencesWithoutZotero flags places with at least one reference that
// carries no Zotero URI at all.
func referencesWithoutZotero(p *place.Place) (any, bool) {
	refs := p.ReferencesWithoutZotero()
	if len(refs) == 0 {
		return nil, false
	}
	return map[string]any{"references": formatAccessRefs(refs)}, true
}

// referencesWithInvalidZotero flags places with at least one reference
// whose Zotero URI does not resolve to a group library item.
func referencesWithInvalidZotero(p *place.Place) (any, bool) {
	refs := p.ReferencesWithInvalidZotero()
	if len(refs) == 0 {
		return nil, false
	}
	return map[string]any{"references": formatZoteroRefs(refs)}, true
}

// formatAccessRefs renders references missing a Zotero URI as
// "short:access>citationDetail>formattedCitation" strings.
func formatAccessRefs(refs []place.Reference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, fmt.Sprintf("%s:%s>%s>%s", r.ShortTitle, r.AccessURI, r.CitationDetail, r.FormattedCitation))
	}
	return out
}

// formatZoteroRefs renders references with a malformed Zotero URI as
// "short:bibliographicURI>formattedCitation" strings.
func formatZoteroRefs(refs []place.Reference) []string {
	out := make([]string, 0, len(refs))
	for _, r := range refs {
		out = append(out, fmt.Sprintf("%s:%s>%s", r.ShortTitle, r.BibliographicURI, r.FormattedCitation))
	}
	return out
}
