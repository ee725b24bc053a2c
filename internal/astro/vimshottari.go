package astro

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

const (
	// SiderealYearDays is the year length used for every dasha offset.
	SiderealYearDays = 365.256363004
	// CycleYears is the length of the full Vimshottari cycle.
	CycleYears = 120
	// MaxMahadashas bounds how many major periods are enumerated, skipped ones included.
	MaxMahadashas = 12
	// HorizonYears is the calendar-year cutoff past the birth year.
	HorizonYears = 110
)

// DashaSequence is the fixed cyclic lord order. Nakshatra i is ruled by
// DashaSequence[i mod 9].
var DashaSequence = [model.PlanetCount]model.Planet{
	model.Ketu, model.Venus, model.Sun, model.Moon, model.Mars,
	model.Rahu, model.Jupiter, model.Saturn, model.Mercury,
}

// DashaYears is the length of each lord's major period in sidereal years.
var DashaYears = [model.PlanetCount]int{
	model.Sun:     6,
	model.Moon:    10,
	model.Mars:    7,
	model.Mercury: 17,
	model.Jupiter: 16,
	model.Venus:   20,
	model.Saturn:  19,
	model.Rahu:    18,
	model.Ketu:    7,
}

var sequencePosition = func() [model.PlanetCount]int {
	var pos [model.PlanetCount]int
	for i, p := range DashaSequence {
		pos[p] = i
	}
	return pos
}()

// AddSiderealYears offsets t by a (possibly fractional or negative) number of
// sidereal years, expressed as an exact day count.
func AddSiderealYears(t time.Time, years float64) time.Time {
	return t.Add(time.Duration(math.Round(years * SiderealYearDays * float64(24*time.Hour))))
}

// GenerateTimeline builds the major/sub period hierarchy for a Moon whose
// nakshatra is ruled by lord with the given elapsed fraction.
//
// Major periods ending before birth are skipped; the ones kept start no
// earlier than birth. Generation stops after MaxMahadashas iterations or
// once the running cursor's calendar year passes birth.Year()+HorizonYears.
func GenerateTimeline(lord model.Planet, fraction float64, birth time.Time) (model.Timeline, error) {
	if !lord.Valid() {
		return nil, apperrors.Internal("vimshottari", fmt.Sprintf("unknown dasha lord %d", lord), nil)
	}
	if math.IsNaN(fraction) || fraction < 0 || fraction >= 1 {
		return nil, apperrors.Internal("vimshottari", fmt.Sprintf("nakshatra fraction %v outside [0,1)", fraction), nil)
	}

	elapsed := float64(DashaYears[lord]) * fraction
	cursor := AddSiderealYears(birth, -elapsed)
	first := sequencePosition[lord]
	cutoffYear := birth.Year() + HorizonYears

	timeline := make(model.Timeline, 0, MaxMahadashas)
	for i := 0; i < MaxMahadashas; i++ {
		mLord := DashaSequence[(first+i)%len(DashaSequence)]
		start := cursor
		end := AddSiderealYears(start, float64(DashaYears[mLord]))
		cursor = end

		if end.Before(birth) {
			continue
		}

		timeline = append(timeline, model.MahadashaPeriod{
			Lord:        mLord,
			Start:       laterOf(birth, start),
			End:         end,
			Antardashas: antardashas(mLord, start, birth),
		})

		if cursor.Year() > cutoffYear {
			break
		}
	}
	return timeline, nil
}

// GenerateTimelineFor is GenerateTimeline driven by a resolved Moon nakshatra.
func GenerateTimelineFor(moon model.Nakshatra, birth time.Time) (model.Timeline, error) {
	return GenerateTimeline(moon.Lord, moon.Fraction, birth)
}

// antardashas splits the major period of lord starting at start into its
// nine sub periods and drops those already over at birth. Boundaries are
// taken from cumulative years so the last sub period ends exactly where the
// major period does.
func antardashas(lord model.Planet, start, birth time.Time) []model.AntardashaPeriod {
	mYears := DashaYears[lord]
	first := sequencePosition[lord]

	out := make([]model.AntardashaPeriod, 0, len(DashaSequence))
	subStart := start
	cumulative := 0
	for j := 0; j < len(DashaSequence); j++ {
		sub := DashaSequence[(first+j)%len(DashaSequence)]
		cumulative += DashaYears[sub]
		subEnd := AddSiderealYears(start, float64(mYears*cumulative)/CycleYears)

		if subEnd.After(birth) {
			out = append(out, model.AntardashaPeriod{
				Lord:  sub,
				Start: laterOf(birth, subStart),
				End:   subEnd,
			})
		}
		subStart = subEnd
	}
	return out
}

func laterOf(a, b time.Time) time.Time {
	if b.After(a) {
		return b
	}
	return a
}
