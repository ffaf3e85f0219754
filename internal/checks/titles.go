package checks

import (
	"strings"

	"github.com/isawnyu/pleiades-quality/internal/place"
)

// questionMarkTitles flags titles that carry an editorial question mark,
// e.g. "Ad Fines?".
func questionMarkTitles(p *place.Place) (any, bool) {
	if strings.Contains(p.Title, "?") {
		return p.Title, true
	}
	return nil, false
}
