package place

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRecord = `{
  "id": "579885",
  "title": "Byzantium/Constantinople",
  "description": "Byzantium was an ancient Greek city.",
  "placeTypes": ["settlement", "station"],
  "features": [
    {"properties": {"location_precision": "precise"}},
    {"properties": {"location_precision": "precise"}}
  ],
  "locations": [
    {"accuracy_value": 20.0, "provenance": "Pleiades", "geometry": {"type": "Point"}},
    {"accuracy_value": 150.5, "provenance": "OpenStreetMap (Way 123456789, version 3)", "geometry": {"type": "Point"}}
  ],
  "names": [
    {
      "attested": "Βυζάντιον",
      "romanized": "Byzantion, Byzantium",
      "language": "grc",
      "attestations": [{"timePeriod": "classical"}]
    },
    {
      "attested": "",
      "romanized": "Constantinople",
      "language": "en",
      "attestations": [{"timePeriod": "modern"}]
    }
  ],
  "references": [
    {
      "shortTitle": "BAtlas",
      "citationDetail": "53 B2",
      "formattedCitation": "BAtlas 53 B2 Byzantion",
      "accessURI": "http://www.worldcat.org/oclc/43970336",
      "bibliographicURI": "https://www.zotero.org/groups/2533/items/MIAGQ5C6"
    },
    {
      "shortTitle": "TAVO",
      "citationDetail": "",
      "formattedCitation": "TAVO Index",
      "accessURI": "",
      "bibliographicURI": ""
    },
    {
      "shortTitle": "PECS",
      "citationDetail": "",
      "formattedCitation": "PECS Byzantion",
      "accessURI": "",
      "bibliographicURI": "https://www.zotero.org/groups/2533"
    }
  ]
}`

func writeRecord(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_Sample(t *testing.T) {
	path := writeRecord(t, "579885.json", sampleRecord)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "579885", p.ID)
	assert.Equal(t, "Byzantium/Constantinople", p.Title)
	assert.Len(t, p.Names, 2)
	assert.Len(t, p.References, 3)
}

func TestLoad_IDFallsBackToFilename(t *testing.T) {
	path := writeRecord(t, "123456.json", `{"title": "Nowhere"}`)

	p, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "123456", p.ID)
}

func TestLoad_UnparseableFile(t *testing.T) {
	path := writeRecord(t, "broken.json", `{"title": "Nowhere"`)

	_, err := Load(path)
	require.Error(t, err)
	var readErr *RecordReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_NotAnObject(t *testing.T) {
	path := writeRecord(t, "list.json", `[1, 2, 3]`)

	_, err := Load(path)
	var readErr *RecordReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_NullDocument(t *testing.T) {
	// "null" unmarshals into a struct without error; it must still be
	// rejected rather than scanned as a zero-valued place.
	path := writeRecord(t, "999.json", `null`)

	_, err := Load(path)
	var readErr *RecordReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_EmptyFile(t *testing.T) {
	path := writeRecord(t, "empty.json", "")

	_, err := Load(path)
	var readErr *RecordReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.json"))
	var readErr *RecordReadError
	assert.ErrorAs(t, err, &readErr)
}

func TestPrecision(t *testing.T) {
	precise := &Place{Features: []Feature{
		{Properties: FeatureProperties{LocationPrecision: "precise"}},
		{Properties: FeatureProperties{LocationPrecision: "precise"}},
	}}
	assert.True(t, precise.Precise())
	assert.False(t, precise.Rough())

	rough := &Place{Features: []Feature{
		{Properties: FeatureProperties{LocationPrecision: "rough"}},
	}}
	assert.True(t, rough.Rough())
	assert.False(t, rough.Precise())

	mixed := &Place{Features: []Feature{
		{Properties: FeatureProperties{LocationPrecision: "precise"}},
		{Properties: FeatureProperties{LocationPrecision: "rough"}},
	}}
	assert.False(t, mixed.Precise())
	assert.False(t, mixed.Rough())

	// No features means neither.
	empty := &Place{}
	assert.False(t, empty.Precise())
	assert.False(t, empty.Rough())
}

func TestAccuracyBounds(t *testing.T) {
	v1, v2 := 20.0, 150.5
	p := &Place{Locations: []Location{
		{AccuracyValue: &v2},
		{AccuracyValue: &v1},
	}}

	min, ok := p.AccuracyMin()
	require.True(t, ok)
	assert.Equal(t, 20.0, min)

	max, ok := p.AccuracyMax()
	require.True(t, ok)
	assert.Equal(t, 150.5, max)
}

func TestAccuracyBounds_MissingValue(t *testing.T) {
	v := 20.0
	p := &Place{Locations: []Location{
		{AccuracyValue: &v},
		{AccuracyValue: nil},
	}}

	_, ok := p.AccuracyMin()
	assert.False(t, ok)

	// No locations at all is also unavailable.
	_, ok = (&Place{}).AccuracyMin()
	assert.False(t, ok)
}

func TestBadOSMWayIDs(t *testing.T) {
	p := &Place{Locations: []Location{
		{Provenance: "OpenStreetMap (Way 123456789, version 3)", Geometry: &Geometry{Type: "Point"}},
		{Provenance: "OpenStreetMap (Way 987654321, version 1)", Geometry: &Geometry{Type: "LineString"}},
		{Provenance: "OpenStreetMap (Node 42, version 2)", Geometry: &Geometry{Type: "Point"}},
		{Provenance: "Barrington Atlas", Geometry: &Geometry{Type: "Point"}},
	}}

	assert.Equal(t, []string{"123456789"}, p.BadOSMWayIDs())
}

func TestUnlocated(t *testing.T) {
	assert.True(t, (&Place{PlaceTypes: []string{"settlement", "unlocated"}}).Unlocated())
	assert.False(t, (&Place{PlaceTypes: []string{"settlement"}}).Unlocated())
}

func TestSortedPlaceTypes(t *testing.T) {
	p := &Place{PlaceTypes: []string{"station", "settlement", "station"}}
	assert.Equal(t, []string{"settlement", "station"}, p.SortedPlaceTypes())
}

func TestNamesRomanizedOnly(t *testing.T) {
	p := &Place{Names: []Name{
		{Attested: "Βυζάντιον", Romanized: "Byzantion"},
		{Attested: "", Romanized: "Constantinople"},
		{Attested: "", Romanized: "   "},
	}}

	only := p.NamesRomanizedOnly()
	require.Len(t, only, 1)
	assert.Equal(t, "Constantinople", only[0].Romanized)
}

func TestModernNames(t *testing.T) {
	p := &Place{Names: []Name{
		{Romanized: "Byzantion", Attestations: []Attestation{{TimePeriod: "classical"}}},
		{Romanized: "Istanbul", Attestations: []Attestation{{TimePeriod: "ottoman"}, {TimePeriod: "modern"}}},
	}}

	modern := p.ModernNames()
	require.Len(t, modern, 1)
	assert.Equal(t, "Istanbul", modern[0].Romanized)
}

func TestZoteroClassification(t *testing.T) {
	valid := Reference{ShortTitle: "BAtlas", BibliographicURI: "https://www.zotero.org/groups/2533/items/MIAGQ5C6"}
	invalid := Reference{ShortTitle: "PECS", BibliographicURI: "https://www.zotero.org/groups/2533"}
	missing := Reference{ShortTitle: "TAVO", BibliographicURI: ""}

	p := &Place{References: []Reference{valid, invalid, missing}}

	without := p.ReferencesWithoutZotero()
	require.Len(t, without, 1)
	assert.Equal(t, "TAVO", without[0].ShortTitle)

	bad := p.ReferencesWithInvalidZotero()
	require.Len(t, bad, 1)
	assert.Equal(t, "PECS", bad[0].ShortTitle)
}

func TestIDFromPath(t *testing.T) {
	assert.Equal(t, "579885", IDFromPath("/data/579/579885.json"))
	assert.Equal(t, "no-ext", IDFromPath("no-ext"))
}
