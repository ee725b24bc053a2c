// Package chart turns submitted birth data into a computed chart by
// resolving the location, querying the ephemeris and applying the
// classification rules in internal/astro.
package chart

import (
	"context"
	"errors"

	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/astro"
	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/ephemeris"
	"github.com/Nixie-Tech-LLC/jyotish/internal/geocode"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
)

type Service struct {
	ephemeris ephemeris.Provider
	geocoder  geocode.Geocoder
	metrics   *observability.Collector
}

// NewService wires the collaborators. geocoder may be nil, in which case
// births without coordinates are rejected.
func NewService(provider ephemeris.Provider, geocoder geocode.Geocoder, metrics *observability.Collector) *Service {
	return &Service{ephemeris: provider, geocoder: geocoder, metrics: metrics}
}

// Calculate computes the chart for one birth.
func (s *Service) Calculate(ctx context.Context, data BirthData) (*model.Chart, error) {
	c, err := s.calculate(ctx, data)
	if err != nil {
		s.metrics.ObserveChart(apperrors.KindOf(err).String())
		log.Error().Err(err).Str("date", data.Date).Str("city", data.City).Msg("[chart] calculation failed")
		return nil, err
	}
	s.metrics.ObserveChart("ok")
	return c, nil
}

func (s *Service) calculate(ctx context.Context, data BirthData) (*model.Chart, error) {
	birth, err := data.Normalize()
	if err != nil {
		return nil, err
	}

	loc, err := s.resolveLocation(ctx, birth)
	if err != nil {
		return nil, err
	}

	local, err := birth.LocalTime(loc.TZOffset)
	if err != nil {
		return nil, err
	}

	snap, err := s.ephemeris.Positions(ctx, ephemeris.Request{
		Instant:   local.UTC(),
		Latitude:  loc.Latitude,
		Longitude: loc.Longitude,
	})
	if err != nil {
		return nil, asUpstream(err, "ephemeris provider unavailable")
	}
	longitudes, err := snap.Validate()
	if err != nil {
		return nil, err
	}

	return astro.BuildChart(astro.Input{
		Birth:      local,
		Location:   loc,
		Ascendant:  snap.Ascendant,
		Longitudes: longitudes,
	})
}

func (s *Service) resolveLocation(ctx context.Context, birth BirthData) (model.Location, error) {
	loc := model.Location{City: birth.City}

	if birth.needsGeocoding() {
		if s.geocoder == nil {
			return loc, apperrors.Upstream("chart", "Geocoding unavailable", nil)
		}
		place, err := geocode.Locate(ctx, s.geocoder, birth.City)
		if err != nil {
			return loc, asUpstream(err, "Geocoding unavailable")
		}
		loc.Latitude, loc.Longitude = place.Latitude, place.Longitude
	} else {
		if birth.Lat == nil || birth.Lon == nil {
			return loc, apperrors.Input("chart", "Need City or Lat/Lon", apperrors.ErrLocationRequired)
		}
		loc.Latitude, loc.Longitude = *birth.Lat, *birth.Lon
	}

	if loc.Latitude < -90 || loc.Latitude > 90 || loc.Longitude < -180 || loc.Longitude > 180 {
		return loc, apperrors.Input("chart", "coordinates out of range", nil)
	}

	if birth.Timezone == nil || *birth.Timezone == 0 {
		log.Warn().Float64("lat", loc.Latitude).Float64("lon", loc.Longitude).Msg("[chart] no timezone offset given, assuming UTC")
	} else {
		if *birth.Timezone < -14 || *birth.Timezone > 14 {
			return loc, apperrors.Input("chart", "timezone offset out of range", nil)
		}
		loc.TZOffset = *birth.Timezone
	}
	return loc, nil
}

// asUpstream keeps classified errors and treats anything else from a
// collaborator as an upstream failure.
func asUpstream(err error, message string) error {
	var appErr *apperrors.Error
	if errors.As(err, &appErr) {
		return err
	}
	return apperrors.Upstream("chart", message, err)
}
