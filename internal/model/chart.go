package model

import "time"

// DignityStatus grades a planet by the sign it occupies.
type DignityStatus uint8

const (
	Neutral DignityStatus = iota
	Exalted
	Debilitated
	OwnSign
)

func (s DignityStatus) String() string {
	switch s {
	case Exalted:
		return "Exalted"
	case Debilitated:
		return "Debilitated"
	case OwnSign:
		return "Own Sign"
	default:
		return "Neutral"
	}
}

// Nature is a planet's benefic/malefic role relative to the ascendant.
type Nature uint8

const (
	FunctionalBenefic Nature = iota
	FunctionalMalefic
	NaturalMalefic
)

func (n Nature) String() string {
	switch n {
	case FunctionalMalefic:
		return "Functional Malefic"
	case NaturalMalefic:
		return "Natural Malefic"
	default:
		return "Functional Benefic"
	}
}

type Dignity struct {
	Status DignityStatus
	Nature Nature
}

// Nakshatra is a lunar-mansion placement. Fraction is the elapsed share of
// the mansion in [0,1).
type Nakshatra struct {
	Index    int
	Name     string
	Lord     Planet
	Pada     int
	Fraction float64
}

type PlanetPosition struct {
	Planet    Planet
	Longitude float64
	Sign      Sign
	House     int
	Nakshatra Nakshatra
	Dignity   Dignity
}

type Ascendant struct {
	Sign   Sign
	Degree float64
}

// HouseSlot is one of the twelve houses counted from the ascendant.
type HouseSlot struct {
	Number  int
	Sign    Sign
	Planets []PlanetPosition
}

type Location struct {
	City      string
	Latitude  float64
	Longitude float64
	// TZOffset is the birth's UTC offset in hours.
	TZOffset float64
}

// Chart is the full record produced for one birth.
type Chart struct {
	Location  Location
	Birth     time.Time
	Ascendant Ascendant
	Planets   [PlanetCount]PlanetPosition
	Houses    [SignCount]HouseSlot
	Timeline  Timeline
}

// Position returns the placement of p.
func (c *Chart) Position(p Planet) PlanetPosition {
	return c.Planets[p]
}
