package chart

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
)

const (
	dateLayout = "02/01/2006"
	timeLayout = "15:04"
)

// BirthData is a birth as submitted by a client. Coordinates and timezone are
// optional; a city is geocoded when coordinates are absent.
type BirthData struct {
	Date     string   `json:"date" binding:"required"`
	Time     string   `json:"time" binding:"required"`
	City     string   `json:"city,omitempty"`
	Lat      *float64 `json:"lat,omitempty"`
	Lon      *float64 `json:"lon,omitempty"`
	Timezone *float64 `json:"timezone,omitempty"`
}

// Normalize cleans the submitted fields: dates accept '-' as a separator,
// times become zero-padded HH:MM and the city is trimmed and title-cased.
func (b BirthData) Normalize() (BirthData, error) {
	out := b

	out.Date = strings.ReplaceAll(strings.TrimSpace(b.Date), "-", "/")
	if _, err := time.Parse(dateLayout, out.Date); err != nil {
		return b, apperrors.Input("birth", "Invalid date format. Please use DD/MM/YYYY", err)
	}

	t, err := normalizeClock(b.Time)
	if err != nil {
		return b, err
	}
	out.Time = t

	if city := strings.TrimSpace(b.City); city != "" {
		// Casers keep state, so one is built per call.
		out.City = cases.Title(language.English).String(city)
	} else {
		out.City = ""
	}
	return out, nil
}

func normalizeClock(v string) (string, error) {
	invalid := func(err error) error {
		return apperrors.Input("birth", "Invalid time format. Please use HH:MM", err)
	}

	parts := strings.Split(strings.TrimSpace(v), ":")
	if len(parts) != 2 {
		return "", invalid(fmt.Errorf("%q is not HH:MM", v))
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil {
		return "", invalid(err)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil {
		return "", invalid(err)
	}
	if h < 0 || h > 23 || m < 0 || m > 59 {
		return "", invalid(fmt.Errorf("%q out of range", v))
	}
	return fmt.Sprintf("%02d:%02d", h, m), nil
}

// needsGeocoding mirrors the service rule: a city is looked up whenever
// either coordinate is missing or exactly zero.
func (b BirthData) needsGeocoding() bool {
	if b.City == "" {
		return false
	}
	return b.Lat == nil || *b.Lat == 0 || b.Lon == nil || *b.Lon == 0
}

// LocalTime combines a normalized date and time in a fixed zone offset
// given in hours east of UTC.
func (b BirthData) LocalTime(offsetHours float64) (time.Time, error) {
	zone := time.FixedZone(zoneName(offsetHours), int(offsetHours*3600))
	t, err := time.ParseInLocation(dateLayout+" "+timeLayout, b.Date+" "+b.Time, zone)
	if err != nil {
		return time.Time{}, apperrors.Input("birth", "invalid birth date or time", err)
	}
	return t, nil
}

func zoneName(offsetHours float64) string {
	sign := '+'
	if offsetHours < 0 {
		sign = '-'
		offsetHours = -offsetHours
	}
	minutes := int(offsetHours*60 + 0.5)
	return fmt.Sprintf("UTC%c%02d:%02d", sign, minutes/60, minutes%60)
}
