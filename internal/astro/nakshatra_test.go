package astro

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

func TestNakshatraOfRohini(t *testing.T) {
	n := NakshatraOf(45.0)

	assert.Equal(t, 3, n.Index)
	assert.Equal(t, "Rohini", n.Name)
	assert.Equal(t, model.Moon, n.Lord)
	assert.Equal(t, 2, n.Pada)
	assert.InDelta(t, 0.375, n.Fraction, 1e-9)
}

func TestNakshatraBoundaries(t *testing.T) {
	cases := []struct {
		longitude float64
		name      string
		lord      model.Planet
		pada      int
	}{
		{0, "Ashwini", model.Ketu, 1},
		{NakshatraSpan, "Bharani", model.Venus, 1},
		{PadaSpan * 3.5, "Ashwini", model.Ketu, 4},
		{9*NakshatraSpan + 0.01, "Magha", model.Ketu, 1},
		{18*NakshatraSpan + 0.1, "Mula", model.Ketu, 1},
		{359.9999, "Revati", model.Mercury, 4},
	}
	for _, tc := range cases {
		n := NakshatraOf(tc.longitude)
		assert.Equal(t, tc.name, n.Name, "longitude %v", tc.longitude)
		assert.Equal(t, tc.lord, n.Lord, "longitude %v", tc.longitude)
		assert.Equal(t, tc.pada, n.Pada, "longitude %v", tc.longitude)
		assert.GreaterOrEqual(t, n.Fraction, 0.0)
		assert.Less(t, n.Fraction, 1.0)
	}
}

func TestNakshatraWholeDegreeBoundaries(t *testing.T) {
	cases := []struct {
		longitude float64
		name      string
		lord      model.Planet
	}{
		{40, "Rohini", model.Moon},
		{80, "Punarvasu", model.Jupiter},
		{120, "Magha", model.Ketu},
		{160, "Hasta", model.Moon},
		{200, "Vishakha", model.Jupiter},
		{240, "Mula", model.Ketu},
		{280, "Shravana", model.Moon},
		{320, "Purva Bhadrapada", model.Jupiter},
	}
	for _, tc := range cases {
		n := NakshatraOf(tc.longitude)
		assert.Equal(t, tc.name, n.Name, "longitude %v", tc.longitude)
		assert.Equal(t, tc.lord, n.Lord, "longitude %v", tc.longitude)
		assert.Equal(t, 1, n.Pada, "longitude %v", tc.longitude)
		assert.Zero(t, n.Fraction, "longitude %v", tc.longitude)
	}
}

func TestNakshatraIndexAtEveryBoundary(t *testing.T) {
	for k := 0; k < NakshatraCount; k++ {
		n := NakshatraOf(float64(k) * NakshatraSpan)
		assert.Equal(t, k, n.Index, "boundary %d", k)
		assert.Equal(t, 1, n.Pada, "boundary %d", k)
		assert.InDelta(t, 0, n.Fraction, 1e-12, "boundary %d", k)
	}
}

func TestNakshatraIndexMatchesFloorForWholeDegrees(t *testing.T) {
	for deg := 0; deg < 360; deg++ {
		l := float64(deg)
		n := NakshatraOf(l)
		assert.Equal(t, int(math.Floor(l/NakshatraSpan)), n.Index, "longitude %d", deg)
		start := float64(n.Index) * NakshatraSpan
		assert.InDelta(t, (l-start)/NakshatraSpan, n.Fraction, 1e-12, "longitude %d", deg)
	}
}

func TestNakshatraLordsRepeatEveryNine(t *testing.T) {
	for i := 0; i < NakshatraCount; i++ {
		mid := (float64(i) + 0.5) * NakshatraSpan
		assert.Equal(t, DashaSequence[i%9], NakshatraOf(mid).Lord)
		assert.Equal(t, NakshatraName(i), NakshatraOf(mid).Name)
	}
}
