package astro

import (
	"math"
	"testing"
	"time"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"

	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

func propertyParameters() *gopter.TestParameters {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	parameters.Rng.Seed(time.Now().UnixNano())
	return parameters
}

// Property: the sign of L depends only on L modulo 360.
func TestProperty_SignInvariantUnderFullTurns(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("signOf(L) == ZODIAC[floor(L/30)] and survives L+360k", prop.ForAll(
		func(l float64, k int) bool {
			sign := SignOf(l)
			if sign.Index() != int(l/30) {
				return false
			}
			return SignOf(NormalizeLongitude(l+360*float64(k))) == sign
		},
		gen.Float64Range(0, 359.5),
		gen.IntRange(-5, 5),
	))

	properties.TestingRun(t)
}

// Property: pada is always 1..4 and the elapsed fraction is in [0,1).
func TestProperty_NakshatraBounds(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("pada in 1..4, fraction in [0,1)", prop.ForAll(
		func(l float64) bool {
			n := NakshatraOf(l)
			return n.Pada >= 1 && n.Pada <= 4 &&
				n.Fraction >= 0 && n.Fraction < 1 &&
				n.Index >= 0 && n.Index < NakshatraCount &&
				n.Lord == DashaSequence[n.Index%9]
		},
		gen.Float64Range(0, 359.999999),
	))

	properties.TestingRun(t)
}

// Property: the mansion index is floor(L/span) and the fraction is measured
// from that mansion's start.
func TestProperty_NakshatraIndexIsFloor(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("index == floor(L/span), fraction consistent with index", prop.ForAll(
		func(k int, offset float64) bool {
			l := float64(k)*NakshatraSpan + offset
			n := NakshatraOf(l)
			if n.Index != int(math.Floor(l/NakshatraSpan)) {
				return false
			}
			elapsed := (l - float64(n.Index)*NakshatraSpan) / NakshatraSpan
			return math.Abs(elapsed-n.Fraction) < 1e-9
		},
		gen.IntRange(0, NakshatraCount-1),
		gen.OneGenOf(gen.Const(0.0), gen.Float64Range(0.001, NakshatraSpan-0.001)),
	))

	properties.TestingRun(t)
}

// Property: for a fixed ascendant, HouseOf is a bijection from signs onto 1..12.
func TestProperty_HouseBijection(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())

	properties.Property("houses 1..12 each hit exactly once", prop.ForAll(
		func(asc int) bool {
			var seen [13]bool
			for s := 0; s < model.SignCount; s++ {
				h := HouseOf(model.Sign(s), model.Sign(asc))
				if h < 1 || h > 12 || seen[h] {
					return false
				}
				seen[h] = true
			}
			return true
		},
		gen.IntRange(0, 11),
	))

	properties.TestingRun(t)
}

// Property: sub periods are contiguous and close their major period, and
// the timeline respects the 12-period cap.
func TestProperty_TimelineContiguity(t *testing.T) {
	properties := gopter.NewProperties(propertyParameters())
	base := time.Date(1950, time.January, 1, 0, 0, 0, 0, time.UTC)

	properties.Property("antardashas tile each mahadasha", prop.ForAll(
		func(moonLongitude float64, days int) bool {
			birth := base.AddDate(0, 0, days)
			timeline, err := GenerateTimelineFor(NakshatraOf(moonLongitude), birth)
			if err != nil || len(timeline) == 0 || len(timeline) > MaxMahadashas {
				return false
			}
			if !timeline[0].Start.Equal(birth) {
				return false
			}
			for _, m := range timeline {
				subs := m.Antardashas
				if len(subs) == 0 || len(subs) > 9 {
					return false
				}
				for i := 0; i+1 < len(subs); i++ {
					if !subs[i].End.Equal(subs[i+1].Start) {
						return false
					}
				}
				if !subs[len(subs)-1].End.Equal(m.End) || m.Start.Before(birth) {
					return false
				}
				if m.Start.Year() > birth.Year()+HorizonYears {
					return false
				}
			}
			return true
		},
		gen.Float64Range(0, 359.999999),
		gen.IntRange(0, 365*60),
	))

	properties.TestingRun(t)
}
