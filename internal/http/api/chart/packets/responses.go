package packets

import (
	"bytes"
	"encoding/json"
	"strconv"

	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

// DateLayout renders dasha boundaries as DD-MM-YYYY.
const DateLayout = "02-01-2006"

type LocationResponse struct {
	City *string `json:"city"`
	Lat  float64 `json:"lat"`
	Lon  float64 `json:"lon"`
	TZ   float64 `json:"tz"`
}

type AscendantResponse struct {
	Sign   string  `json:"sign"`
	Degree float64 `json:"degree"`
}

type MoonResponse struct {
	Nakshatra string `json:"nakshatra"`
	Pada      int    `json:"pada"`
	Sign      string `json:"sign"`
	Strength  string `json:"strength"`
}

type PeriodResponse struct {
	Lord  string `json:"lord"`
	Start string `json:"start"`
	End   string `json:"end"`
}

type MahadashaResponse struct {
	Lord        string           `json:"lord"`
	Start       string           `json:"start"`
	End         string           `json:"end"`
	Antardashas []PeriodResponse `json:"antardashas"`
}

type PlanetResponse struct {
	Name          string  `json:"name"`
	Sign          string  `json:"sign"`
	House         int     `json:"house"`
	Strength      string  `json:"strength"`
	Nature        string  `json:"nature"`
	Nakshatra     string  `json:"nakshatra"`
	NakshatraLord string  `json:"nakshatra_lord"`
	NakshatraPada int     `json:"nakshatra_pada"`
	FullDegree    float64 `json:"full_degree"`
}

type HouseResponse struct {
	Sign    string           `json:"sign"`
	Planets []PlanetResponse `json:"planets"`
}

// Houses marshals as an object keyed house_1 to house_12, in house order.
type Houses [model.SignCount]HouseResponse

func (h Houses) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, house := range h {
		if i > 0 {
			buf.WriteByte(',')
		}
		buf.WriteString(`"house_` + strconv.Itoa(i+1) + `":`)
		raw, err := json.Marshal(house)
		if err != nil {
			return nil, err
		}
		buf.Write(raw)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

type ChartResponse struct {
	Location            LocationResponse    `json:"location"`
	Ascendant           AscendantResponse   `json:"ascendant"`
	MoonIntelligence    MoonResponse        `json:"moon_intelligence"`
	VimshottariTimeline []MahadashaResponse `json:"vimshottari_timeline"`
	ChartData           Houses              `json:"chart_data"`
}

func NewPlanetResponse(p model.PlanetPosition) PlanetResponse {
	return PlanetResponse{
		Name:          p.Planet.String(),
		Sign:          p.Sign.String(),
		House:         p.House,
		Strength:      p.Dignity.Status.String(),
		Nature:        p.Dignity.Nature.String(),
		Nakshatra:     p.Nakshatra.Name,
		NakshatraLord: p.Nakshatra.Lord.String(),
		NakshatraPada: p.Nakshatra.Pada,
		FullDegree:    p.Longitude,
	}
}

// NewChartResponse renders a computed chart in the wire shape the frontend
// consumes.
func NewChartResponse(c *model.Chart) ChartResponse {
	var city *string
	if c.Location.City != "" {
		name := c.Location.City
		city = &name
	}

	moon := c.Position(model.Moon)
	out := ChartResponse{
		Location: LocationResponse{
			City: city,
			Lat:  c.Location.Latitude,
			Lon:  c.Location.Longitude,
			TZ:   c.Location.TZOffset,
		},
		Ascendant: AscendantResponse{Sign: c.Ascendant.Sign.String(), Degree: c.Ascendant.Degree},
		MoonIntelligence: MoonResponse{
			Nakshatra: moon.Nakshatra.Name,
			Pada:      moon.Nakshatra.Pada,
			Sign:      moon.Sign.String(),
			Strength:  moon.Dignity.Status.String(),
		},
		VimshottariTimeline: make([]MahadashaResponse, 0, len(c.Timeline)),
	}

	for _, m := range c.Timeline {
		maha := MahadashaResponse{
			Lord:        m.Lord.String(),
			Start:       m.Start.Format(DateLayout),
			End:         m.End.Format(DateLayout),
			Antardashas: make([]PeriodResponse, 0, len(m.Antardashas)),
		}
		for _, a := range m.Antardashas {
			maha.Antardashas = append(maha.Antardashas, PeriodResponse{
				Lord:  a.Lord.String(),
				Start: a.Start.Format(DateLayout),
				End:   a.End.Format(DateLayout),
			})
		}
		out.VimshottariTimeline = append(out.VimshottariTimeline, maha)
	}

	for i, slot := range c.Houses {
		house := HouseResponse{Sign: slot.Sign.String(), Planets: make([]PlanetResponse, 0, len(slot.Planets))}
		for _, p := range slot.Planets {
			house.Planets = append(house.Planets, NewPlanetResponse(p))
		}
		out.ChartData[i] = house
	}
	return out
}
