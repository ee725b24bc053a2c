// Package astro turns sidereal longitudes into a Vedic chart: signs, houses,
// nakshatras, dignity and the Vimshottari dasha timeline.
//
// Every function in this package is pure and the rule tables are never
// written after initialisation, so charts can be computed concurrently.
package astro

import (
	"math"

	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

// SignSpan is the width of one zodiac sign in degrees.
const SignSpan = 30.0

// NormalizeLongitude maps any finite longitude into [0,360).
func NormalizeLongitude(longitude float64) float64 {
	l := math.Mod(longitude, 360)
	if l < 0 {
		l += 360
	}
	if l >= 360 {
		l = 0
	}
	return l
}

// SignOf returns the sign containing longitude. Callers pass longitudes
// already in [0,360); values outside still wrap onto the zodiac.
func SignOf(longitude float64) model.Sign {
	return model.SignAt(int(math.Floor(longitude / SignSpan)))
}

// HouseOf returns the whole-sign house (1..12) of sign for the given ascendant sign.
func HouseOf(sign, ascendant model.Sign) int {
	return ((sign.Index()-ascendant.Index()+model.SignCount)%model.SignCount + 1)
}

// HouseSign is the inverse of HouseOf: the sign occupying house for the ascendant.
func HouseSign(house int, ascendant model.Sign) model.Sign {
	return model.SignAt(ascendant.Index() + house - 1)
}
