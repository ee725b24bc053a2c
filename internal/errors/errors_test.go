package errors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKindOf(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want Kind
	}{
		{"input", Input("parse", "bad date", nil), KindInput},
		{"upstream wrapped", fmt.Errorf("chart: %w", Upstream("ephemeris", "timeout", nil)), KindUpstream},
		{"internal", Internal("dasha", "unknown lord", nil), KindInternal},
		{"unclassified", errors.New("boom"), KindInternal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, KindOf(tc.err))
		})
	}
}

func TestErrorUnwrapsSentinel(t *testing.T) {
	err := Input("geocode", "city lookup", ErrCityNotFound)
	assert.True(t, errors.Is(err, ErrCityNotFound))
	assert.True(t, Is(err, KindInput))
	assert.False(t, Is(nil, KindInput))
	assert.Equal(t, "input error [geocode]: city lookup: city not found", err.Error())
}
