// Package ephemeris talks to the external ephemeris service that supplies
// sidereal longitudes and the ascendant for a birth instant and place.
package ephemeris

import (
	"context"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"time"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

// Fixed provider configuration: Lahiri ayanamsa, house system "A", mean node.
const (
	Ayanamsa    = "lahiri"
	HouseSystem = "A"
	NodeModel   = "mean"
)

// Request identifies one birth for the provider.
type Request struct {
	// Instant is the birth moment; it is sent to the provider in UTC.
	Instant   time.Time
	Latitude  float64
	Longitude float64
}

// Snapshot is the provider's answer. Longitudes are keyed by planet name
// and cover every measured planet; Ketu is never requested.
type Snapshot struct {
	Ascendant  float64            `json:"ascendant"`
	Longitudes map[string]float64 `json:"longitudes"`
}

// Provider yields a Snapshot for a birth.
type Provider interface {
	Positions(ctx context.Context, req Request) (*Snapshot, error)
}

// Validate checks the snapshot against the provider contract and returns the
// longitudes as an array indexed by planet. The Ketu slot is left at zero.
func (s *Snapshot) Validate() ([model.PlanetCount]float64, error) {
	var out [model.PlanetCount]float64
	if !inRange(s.Ascendant) {
		return out, apperrors.Upstream("ephemeris", fmt.Sprintf("ascendant %v outside [0,360)", s.Ascendant), nil)
	}
	for _, p := range model.MeasuredPlanets {
		v, ok := s.Longitudes[p.String()]
		if !ok {
			return out, apperrors.Upstream("ephemeris", fmt.Sprintf("missing longitude for %s", p), nil)
		}
		if !inRange(v) {
			return out, apperrors.Upstream("ephemeris", fmt.Sprintf("%s longitude %v outside [0,360)", p, v), nil)
		}
		out[p] = v
	}
	return out, nil
}

func inRange(v float64) bool {
	return !math.IsNaN(v) && v >= 0 && v < 360
}

// Static always answers with the same snapshot.
type Static struct {
	Snapshot Snapshot
}

func (s Static) Positions(context.Context, Request) (*Snapshot, error) {
	snap := s.Snapshot
	return &snap, nil
}

// LoadSnapshot reads a snapshot from a JSON file.
func LoadSnapshot(path string) (*Snapshot, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Input("snapshot", "cannot read snapshot file", err)
	}
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return nil, apperrors.Input("snapshot", "malformed snapshot file", err)
	}
	return &snap, nil
}
