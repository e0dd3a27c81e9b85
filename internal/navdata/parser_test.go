package navdata

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleData = `; Static reference dataset
; Comment lines start with a semicolon

[Countries]
United States|K|
Canada|C|

[Airports]
KJFK|John F Kennedy Intl|40.6413|-73.7781|JFK|KZNY|0
KJFK|Duplicate Kennedy|0.0|0.0|JFK|KZNY|0
KLAX|Los Angeles Intl|33.9416|-118.4085|LAX|KZLA|0
CYYZ|Toronto Pearson Intl|43.6777|-79.6248|YYZ|CZYZ|0
KZNY|New York Center|40.0|-73.0||KZNY|1
EGLL|Heathrow|not-a-number|-0.4614|LHR|EGTT|0
EHAM|Schiphol|52.3105
XXXX||10.0|10.0||ZZZZ|0

[FIRs]
KZNY|New York|NY|KZNY
KZNY|Duplicate New York|NY|KZNY
KZLA|Los Angeles|LA|KZLA
CZYZ|Toronto|YZ|CZYZ
SHORT

[UIRs]
CZUL-FSS|Montreal Radio|CZUL
`

func TestParseAdmitsFirstWins(t *testing.T) {
	snap := Parse(sampleData)

	ap, ok := snap.Airport("KJFK")
	require.True(t, ok)
	assert.Equal(t, "John F Kennedy Intl", ap.Name)
	assert.Equal(t, 40.6413, ap.Lat)
	assert.Equal(t, -73.7781, ap.Lon)
	assert.Equal(t, "JFK", ap.IATA)
	assert.Equal(t, "KZNY", ap.FIR)
}

func TestParseExcludesPseudoAirports(t *testing.T) {
	snap := Parse(sampleData)

	_, ok := snap.Airport("KZNY")
	assert.False(t, ok, "pseudo entries must never be retrievable")
}

func TestParseSkipsMalformedLines(t *testing.T) {
	snap := Parse(sampleData)

	// Unparsable latitude
	_, ok := snap.Airport("EGLL")
	assert.False(t, ok)

	// Too few fields
	_, ok = snap.Airport("EHAM")
	assert.False(t, ok)

	// Empty name
	_, ok = snap.Airport("XXXX")
	assert.False(t, ok)

	assert.Len(t, snap.Airports, 3)
}

func TestParseFIRNamesFirstWins(t *testing.T) {
	snap := Parse(sampleData)

	assert.Equal(t, "New York", snap.FIRName("KZNY"))
	assert.Equal(t, "Toronto", snap.FIRName("CZYZ"))
}

func TestFIRNameFallsBackToID(t *testing.T) {
	snap := Parse(sampleData)

	assert.Equal(t, "UNKN", snap.FIRName("UNKN"))
}

func TestParseIgnoresOtherSections(t *testing.T) {
	snap := Parse(sampleData)

	// [Countries] and [UIRs] content must not leak into airports or FIR names
	_, ok := snap.Airport("UNITED STATES")
	assert.False(t, ok)
	assert.Equal(t, "CZUL-FSS", snap.FIRName("CZUL-FSS"))
}

func TestParseEmptyInput(t *testing.T) {
	snap := Parse("")

	assert.Empty(t, snap.Airports)
	assert.Empty(t, snap.FIRNames)
	assert.Empty(t, snap.Search("anything", 10))
}

func TestParseLinesOutsideSections(t *testing.T) {
	// Data lines before any section header belong to no section and are ignored
	snap := Parse("KJFK|Kennedy|40.6|-73.7|JFK|KZNY|0\n")
	assert.Empty(t, snap.Airports)
}

func TestSearch(t *testing.T) {
	snap := Parse(sampleData)

	results := snap.Search("intl", 10)
	require.Len(t, results, 3)
	// Encounter order follows the dataset
	assert.Equal(t, "KJFK", results[0].ICAO)
	assert.Equal(t, "KLAX", results[1].ICAO)
	assert.Equal(t, "CYYZ", results[2].ICAO)

	results = snap.Search("INTL", 2)
	require.Len(t, results, 2)

	assert.Empty(t, snap.Search("nowhere", 10))
	assert.Nil(t, snap.Search("intl", 0))
}

func TestLookupCaseInsensitive(t *testing.T) {
	snap := Parse(sampleData)

	lowerResult, ok := snap.Airport("kjfk")
	require.True(t, ok)
	upperResult, ok := snap.Airport("KJFK")
	require.True(t, ok)
	assert.Equal(t, upperResult, lowerResult)
}
