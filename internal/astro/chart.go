package astro

import (
	"fmt"
	"math"
	"time"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

// Input is what the ephemeris yields for one birth, plus the birth itself.
// Longitudes are sidereal degrees indexed by planet; the Ketu slot is
// ignored and always derived from Rahu.
type Input struct {
	// Birth is the local birth instant; its Location fixes the calendar used
	// for the timeline.
	Birth      time.Time
	Location   model.Location
	Ascendant  float64
	Longitudes [model.PlanetCount]float64
}

// KetuLongitude is the node opposite Rahu.
func KetuLongitude(rahu float64) float64 {
	return NormalizeLongitude(rahu + 180)
}

// Place annotates a single planet at longitude for the ascendant sign.
func Place(planet model.Planet, longitude float64, ascendant model.Sign) (model.PlanetPosition, error) {
	if math.IsNaN(longitude) || math.IsInf(longitude, 0) {
		return model.PlanetPosition{}, apperrors.Internal("place", fmt.Sprintf("%s longitude is not finite", planet), nil)
	}
	longitude = NormalizeLongitude(longitude)
	sign := SignOf(longitude)
	dignity, err := Classify(planet, sign, ascendant)
	if err != nil {
		return model.PlanetPosition{}, err
	}
	return model.PlanetPosition{
		Planet:    planet,
		Longitude: longitude,
		Sign:      sign,
		House:     HouseOf(sign, ascendant),
		Nakshatra: NakshatraOf(longitude),
		Dignity:   dignity,
	}, nil
}

// BuildChart composes the full chart record from ephemeris output.
func BuildChart(in Input) (*model.Chart, error) {
	if math.IsNaN(in.Ascendant) || math.IsInf(in.Ascendant, 0) {
		return nil, apperrors.Internal("chart", "ascendant is not finite", nil)
	}
	ascDegree := NormalizeLongitude(in.Ascendant)
	ascSign := SignOf(ascDegree)

	chart := &model.Chart{
		Location:  in.Location,
		Birth:     in.Birth,
		Ascendant: model.Ascendant{Sign: ascSign, Degree: ascDegree},
	}

	for _, p := range model.Planets {
		longitude := in.Longitudes[p]
		if p == model.Ketu {
			longitude = KetuLongitude(in.Longitudes[model.Rahu])
		}
		pos, err := Place(p, longitude, ascSign)
		if err != nil {
			return nil, err
		}
		chart.Planets[p] = pos
	}

	for i := range chart.Houses {
		house := i + 1
		slot := model.HouseSlot{Number: house, Sign: HouseSign(house, ascSign)}
		for _, pos := range chart.Planets {
			if pos.House == house {
				slot.Planets = append(slot.Planets, pos)
			}
		}
		chart.Houses[i] = slot
	}

	timeline, err := GenerateTimelineFor(chart.Planets[model.Moon].Nakshatra, in.Birth)
	if err != nil {
		return nil, err
	}
	chart.Timeline = timeline
	return chart, nil
}
