package model

import "encoding/json"

// Planet is one of the nine grahas. Rahu is the mean lunar node and Ketu is
// always derived from it.
type Planet uint8

const (
	Sun Planet = iota
	Moon
	Mars
	Mercury
	Jupiter
	Venus
	Saturn
	Rahu
	Ketu
)

// PlanetCount is the size of the closed planet enumeration.
const PlanetCount = 9

// Planets lists every planet in chart order.
var Planets = [PlanetCount]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu, Ketu}

// MeasuredPlanets are the bodies requested from the ephemeris; Ketu is not among them.
var MeasuredPlanets = [PlanetCount - 1]Planet{Sun, Moon, Mars, Mercury, Jupiter, Venus, Saturn, Rahu}

var planetNames = [PlanetCount]string{
	"Sun", "Moon", "Mars", "Mercury", "Jupiter", "Venus", "Saturn", "Rahu", "Ketu",
}

// Valid reports whether p is inside the closed enumeration.
func (p Planet) Valid() bool {
	return int(p) < PlanetCount
}

func (p Planet) String() string {
	if !p.Valid() {
		return "Planet(?)"
	}
	return planetNames[p]
}

// IsNode reports whether p is one of the lunar nodes.
func (p Planet) IsNode() bool {
	return p == Rahu || p == Ketu
}

// ParsePlanet resolves a planet by its display name.
func ParsePlanet(name string) (Planet, bool) {
	for i, n := range planetNames {
		if n == name {
			return Planet(i), true
		}
	}
	return 0, false
}

func (p Planet) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *Planet) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return err
	}
	parsed, ok := ParsePlanet(name)
	if !ok {
		return &json.UnsupportedValueError{Str: name}
	}
	*p = parsed
	return nil
}
