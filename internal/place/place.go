// Package place reads and interrogates a single Pleiades place record.
package place

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"
)

// osmWayPattern extracts the way id from a location provenance string such
// as "OpenStreetMap (Way 123456789, version 3, ...)".
var osmWayPattern = regexp.MustCompile(`OpenStreetMap \(Way (\d+)`)

// zoteroItemPattern matches a well-formed Zotero bibliographic URI for a
// group library item.
var zoteroItemPattern = regexp.MustCompile(`^https?://www\.zotero\.org/groups/\d+/items/[A-Za-z0-9]+/?$`)

// Attestation ties a name to a time period.
type Attestation struct {
	TimePeriod string `json:"timePeriod"`
}

// Name is one attested or romanized name of a place.
type Name struct {
	Attested     string        `json:"attested"`
	Romanized    string        `json:"romanized"`
	Language     string        `json:"language"`
	Attestations []Attestation `json:"attestations"`
}

// Reference is one bibliographic reference attached to a place.
type Reference struct {
	ShortTitle        string `json:"shortTitle"`
	CitationDetail    string `json:"citationDetail"`
	FormattedCitation string `json:"formattedCitation"`
	AccessURI         string `json:"accessURI"`
	BibliographicURI  string `json:"bibliographicURI"`
}

// Geometry carries the GeoJSON geometry type of a location.
type Geometry struct {
	Type string `json:"type"`
}

// Location is one geolocation assertion for a place. AccuracyValue is a
// pointer because the field is nullable in the dataset.
type Location struct {
	AccuracyValue *float64  `json:"accuracy_value"`
	Provenance    string    `json:"provenance"`
	Geometry      *Geometry `json:"geometry"`
}

// FeatureProperties holds the display properties of a GeoJSON feature.
type FeatureProperties struct {
	LocationPrecision string `json:"location_precision"`
}

// Feature is one GeoJSON feature of a place.
type Feature struct {
	Properties FeatureProperties `json:"properties"`
}

// Place is one gazetteer record, as read from a Pleiades JSON file.
// Records are read-only to this tool; the schema is owned by the dataset.
type Place struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	PlaceTypes  []string    `json:"placeTypes"`
	Features    []Feature   `json:"features"`
	Locations   []Location  `json:"locations"`
	Names       []Name      `json:"names"`
	References  []Reference `json:"references"`
}

// Load reads a place record from a JSON file. A file that cannot be read or
// does not parse as a record object yields a RecordReadError; the record id
// falls back to the filename stem when the record itself carries none.
func Load(path string) (*Place, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &RecordReadError{Path: path, Message: "failed to read record file", Cause: err}
	}

	// json.Unmarshal accepts "null" (and leaves the struct zeroed), so a
	// record must be checked for object shape before decoding.
	trimmed := bytes.TrimLeft(data, " \t\r\n")
	if len(trimmed) == 0 || trimmed[0] != '{' {
		return nil, &RecordReadError{Path: path, Message: "record is not a JSON object"}
	}

	var p Place
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, &RecordReadError{Path: path, Message: "failed to parse record JSON", Cause: err}
	}

	if p.ID == "" {
		p.ID = IDFromPath(path)
	}
	return &p, nil
}

// IDFromPath derives a record identifier from a record file path (the
// filename without its .json extension).
func IDFromPath(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Unlocated reports whether the place is explicitly typed "unlocated".
func (p *Place) Unlocated() bool {
	for _, t := range p.PlaceTypes {
		if t == "unlocated" {
			return true
		}
	}
	return false
}

// precisions collects the distinct location_precision values across the
// place's features.
func (p *Place) precisions() map[string]struct{} {
	vals := make(map[string]struct{}, 2)
	for _, f := range p.Features {
		vals[f.Properties.LocationPrecision] = struct{}{}
	}
	return vals
}

// Precise reports whether every feature of the place is precise. A place
// with no features is neither precise nor rough.
func (p *Place) Precise() bool {
	vals := p.precisions()
	_, ok := vals["precise"]
	return len(vals) == 1 && ok
}

// Rough reports whether every feature of the place is rough.
func (p *Place) Rough() bool {
	vals := p.precisions()
	_, ok := vals["rough"]
	return len(vals) == 1 && ok
}

// AccuracyMin returns the smallest horizontal accuracy value (meters)
// across the place's locations. ok is false when the place has no
// locations or any location lacks an accuracy value.
func (p *Place) AccuracyMin() (float64, bool) {
	return p.accuracyBound(func(v, best float64) bool { return v < best })
}

// AccuracyMax returns the largest horizontal accuracy value across the
// place's locations, with the same availability rule as AccuracyMin.
func (p *Place) AccuracyMax() (float64, bool) {
	return p.accuracyBound(func(v, best float64) bool { return v > best })
}

func (p *Place) accuracyBound(better func(v, best float64) bool) (float64, bool) {
	if len(p.Locations) == 0 {
		return 0, false
	}
	var bound float64
	for i, l := range p.Locations {
		if l.AccuracyValue == nil {
			return 0, false
		}
		if i == 0 || better(*l.AccuracyValue, bound) {
			bound = *l.AccuracyValue
		}
	}
	return bound, true
}

// BadOSMWayIDs returns the ids of locations imported from OpenStreetMap
// ways that only carry point geometry (an incomplete import).
func (p *Place) BadOSMWayIDs() []string {
	var ids []string
	for _, l := range p.Locations {
		if l.Geometry == nil || l.Geometry.Type != "Point" {
			continue
		}
		if m := osmWayPattern.FindStringSubmatch(l.Provenance); m != nil {
			ids = append(ids, m[1])
		}
	}
	return ids
}

// SortedPlaceTypes returns the place's types as a sorted, de-duplicated
// list.
func (p *Place) SortedPlaceTypes() []string {
	seen := make(map[string]struct{}, len(p.PlaceTypes))
	var out []string
	for _, t := range p.PlaceTypes {
		if _, ok := seen[t]; ok {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// NamesRomanizedOnly returns the names that carry a romanized form but no
// attested form in the original language and script.
func (p *Place) NamesRomanizedOnly() []Name {
	var out []Name
	for _, n := range p.Names {
		if strings.TrimSpace(n.Romanized) != "" && strings.TrimSpace(n.Attested) == "" {
			out = append(out, n)
		}
	}
	return out
}

// ModernNames returns the names with a modern-period attestation.
func (p *Place) ModernNames() []Name {
	var out []Name
	for _, n := range p.Names {
		for _, a := range n.Attestations {
			if a.TimePeriod == "modern" {
				out = append(out, n)
				break
			}
		}
	}
	return out
}

// hasZotero reports whether the reference points at the Zotero bibliography
// at all; validZotero whether it does so with a well-formed item URI.
func hasZotero(r Reference) bool {
	return strings.Contains(r.BibliographicURI, "zotero.org")
}

func validZotero(r Reference) bool {
	return zoteroItemPattern.MatchString(r.BibliographicURI)
}

// ReferencesWithoutZotero returns the references that carry no Zotero URI.
func (p *Place) ReferencesWithoutZotero() []Reference {
	var out []Reference
	for _, r := range p.References {
		if !hasZotero(r) {
			out = append(out, r)
		}
	}
	return out
}

// ReferencesWithInvalidZotero returns the references whose Zotero URI does
// not resolve to a group library item.
func (p *Place) ReferencesWithInvalidZotero() []Reference {
	var out []Reference
	for _, r := range p.References {
		if hasZotero(r) && !validZotero(r) {
			out = append(out, r)
		}
	}
	return out
}
