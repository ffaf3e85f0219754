package checks

import "github.com/isawnyu/pleiades-quality/internal/place"

// AccuracyThreshold is the horizontal accuracy (meters) above which a
// precise location is considered poorly located.
const AccuracyThreshold = 1000.0

// roughNotUnlocated flags places whose every feature is rough (no specific
// geometry) without the place being marked "unlocated".
func roughNotUnlocated(p *place.Place) (any, bool) {
	if p.Rough() && !p.Unlocated() {
		return map[string]any{"place_types": p.SortedPlaceTypes()}, true
	}
	return nil, false
}

// poorAccuracy flags precise places whose best horizontal accuracy is still
// at or above the threshold.
func poorAccuracy(p *place.Place) (any, bool) {
	if !p.Precise() {
		return nil, false
	}
	min, ok := p.AccuracyMin()
	if !ok || min < AccuracyThreshold {
		return nil, false
	}
	max, _ := p.AccuracyMax()
	return map[string]any{
		"accuracy_min": min,
		"accuracy_max": max,
	}, true
}

// missingAccuracy flags precise places with no usable accuracy value.
func missingAccuracy(p *place.Place) (any, bool) {
	if !p.Precise() {
		return nil, false
	}
	if _, ok := p.AccuracyMin(); !ok {
		return nil, true
	}
	return nil, false
}

// badOSMWay flags precise places with locations imported from OSM ways
// that only have point geometry.
func badOSMWay(p *place.Place) (any, bool) {
	if !p.Precise() {
		return nil, false
	}
	ids := p.BadOSMWayIDs()
	if len(ids) == 0 {
		return nil, false
	}
	return map[string]any{"osm_way_ids": ids}, true
}
