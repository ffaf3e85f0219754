package checks

import "github.com/isawnyu/pleiades-quality/internal/place"

// deprecatedPlaceTypes are term IDs, not full terms (e.g. "church" here
// meant "church or monastery" on the Barrington Atlas maps).
var deprecatedPlaceTypes = map[string]struct{}{
	"church":           {},
	"fort":             {},
	"labeled-feature":  {},
	"mine":             {},
	"numbered feature": {},
	"plaza":            {},
	"province":         {},
	"temple":           {},
	"unknown":          {},
	"wall":             {},
}

// badPlaceType flags places still using a deprecated place type.
func badPlaceType(p *place.Place) (any, bool) {
	for _, t := range p.PlaceTypes {
		if _, ok := deprecatedPlaceTypes[t]; ok {
			return map[string]any{"place_types": p.SortedPlaceTypes()}, true
		}
	}
	return nil, false
}
