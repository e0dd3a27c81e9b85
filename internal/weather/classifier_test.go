package weather

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func f(v float64) *float64 { return &v }

func TestClassifyFlightCategoryBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		visibility *float64
		ceiling    *float64
		want       FlightCategory
	}{
		{"low visibility alone", f(0.5), nil, LIFR},
		{"unrestricted", f(10), nil, VFR},
		{"low ceiling alone", f(10), f(400), LIFR},
		{"marginal visibility", f(4), f(10000), MVFR},
		{"both missing", nil, nil, VFR},
		{"exactly 1sm", f(1), nil, IFR},
		{"exactly 3sm", f(3), nil, MVFR},
		{"exactly 5sm", f(5), nil, VFR},
		{"exactly 500ft", f(10), f(500), IFR},
		{"exactly 1000ft", f(10), f(1000), MVFR},
		{"exactly 3000ft", f(10), f(3000), VFR},
		{"ifr visibility", f(2.5), nil, IFR},
		{"worst rule wins", f(0.25), f(20000), LIFR},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ClassifyFlightCategory(tt.visibility, tt.ceiling))
		})
	}
}

func TestCeiling(t *testing.T) {
	layers := []CloudLayer{
		{Cover: CoverFew, BaseFt: f(800)},
		{Cover: CoverScattered, BaseFt: f(1500)},
		{Cover: CoverBroken, BaseFt: f(2500)},
		{Cover: CoverOvercast, BaseFt: f(4000)},
	}

	ceiling := Ceiling(layers)
	assert.NotNil(t, ceiling)
	assert.Equal(t, 2500.0, *ceiling)
}

func TestCeilingIgnoresNonCeilingLayers(t *testing.T) {
	layers := []CloudLayer{
		{Cover: CoverFew, BaseFt: f(500)},
		{Cover: CoverScattered, BaseFt: f(1200)},
	}
	assert.Nil(t, Ceiling(layers))
	assert.Nil(t, Ceiling(nil))
}

func TestCeilingLowestWins(t *testing.T) {
	layers := []CloudLayer{
		{Cover: CoverOvercast, BaseFt: f(900)},
		{Cover: CoverBroken, BaseFt: f(600)},
		{Cover: CoverBroken, BaseFt: nil},
	}

	ceiling := Ceiling(layers)
	assert.NotNil(t, ceiling)
	assert.Equal(t, 600.0, *ceiling)
}

func TestClassifyObservation(t *testing.T) {
	obs := &Observation{
		VisibilitySM: f(2),
		CloudLayers: []CloudLayer{
			{Cover: CoverScattered, BaseFt: f(700)},
			{Cover: CoverOvercast, BaseFt: f(800)},
		},
	}
	assert.Equal(t, IFR, Classify(obs))
}

func TestFlightCategoryString(t *testing.T) {
	assert.Equal(t, "VFR", VFR.String())
	assert.Equal(t, "MVFR", MVFR.String())
	assert.Equal(t, "IFR", IFR.String())
	assert.Equal(t, "LIFR", LIFR.String())
}
