package model

import "time"

type AntardashaPeriod struct {
	Lord  Planet
	Start time.Time
	End   time.Time
}

// MahadashaPeriod is a major period. Start is clamped to the birth instant;
// the antardashas are the sub periods still running at or after birth.
type MahadashaPeriod struct {
	Lord        Planet
	Start       time.Time
	End         time.Time
	Antardashas []AntardashaPeriod
}

// Timeline is the chronological list of major periods from birth onwards.
type Timeline []MahadashaPeriod

// Current returns the major period running at t, if any.
func (tl Timeline) Current(t time.Time) (MahadashaPeriod, bool) {
	for _, m := range tl {
		if !t.Before(m.Start) && t.Before(m.End) {
			return m, true
		}
	}
	return MahadashaPeriod{}, false
}
