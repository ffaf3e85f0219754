package checks

import (
	"strings"

	"github.com/isawnyu/pleiades-quality/internal/place"
)

// emptyDescription flags places whose description is blank.
func emptyDescription(p *place.Place) (any, bool) {
	if strings.TrimSpace(p.Description) == "" {
		return nil, true
	}
	return nil, false
}

// inadequateDescription flags pro-forma legacy descriptions carried over
// from the Barrington Atlas or TAVO Index imports.
func inadequateDescription(p *place.Place) (any, bool) {
	if strings.TrimSpace(p.Description) == "" {
		return nil, false
	}
	if strings.Contains(p.Description, "cited: BAtlas") {
		return p.Description, true
	}
	if strings.ToLower(strings.TrimSpace(p.Description)) == "a place from the tavo index" {
		return p.Description, true
	}
	return nil, false
}
