package astro

import (
	"math"

	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

const (
	// NakshatraCount is the number of lunar mansions.
	NakshatraCount = 27
	// NakshatraSpan is 13°20′, the width of one mansion.
	NakshatraSpan = 360.0 / NakshatraCount
	// PadaSpan is one quarter of a mansion.
	PadaSpan = NakshatraSpan / 4
)

var nakshatraNames = [NakshatraCount]string{
	"Ashwini", "Bharani", "Krittika", "Rohini", "Mrigashira", "Ardra", "Punarvasu", "Pushya", "Ashlesha",
	"Magha", "Purva Phalguni", "Uttara Phalguni", "Hasta", "Chitra", "Swati", "Vishakha", "Anuradha", "Jyeshtha",
	"Mula", "Purva Ashadha", "Uttara Ashadha", "Shravana", "Dhanishta", "Shatabhisha", "Purva Bhadrapada", "Uttara Bhadrapada", "Revati",
}

// NakshatraName returns the name of the mansion at index (mod 27).
func NakshatraName(index int) string {
	return nakshatraNames[((index%NakshatraCount)+NakshatraCount)%NakshatraCount]
}

// NakshatraOf resolves the mansion, its lord, the pada and the elapsed
// fraction for a longitude in [0,360).
func NakshatraOf(longitude float64) model.Nakshatra {
	index := int(math.Floor(longitude / NakshatraSpan))
	remainder := longitude - float64(index)*NakshatraSpan
	// The division can land one ulp either side of a mansion boundary.
	if remainder >= NakshatraSpan {
		index++
		remainder -= NakshatraSpan
	}
	if remainder < 0 {
		remainder = 0
	}
	index = ((index % NakshatraCount) + NakshatraCount) % NakshatraCount

	pada := int(math.Floor(remainder/PadaSpan)) + 1
	fraction := remainder / NakshatraSpan

	return model.Nakshatra{
		Index:    index,
		Name:     nakshatraNames[index],
		Lord:     DashaSequence[index%len(DashaSequence)],
		Pada:     pada,
		Fraction: fraction,
	}
}
