package astro

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

func TestDignityStatusOf(t *testing.T) {
	cases := []struct {
		planet model.Planet
		sign   model.Sign
		want   model.DignityStatus
	}{
		{model.Sun, model.Aries, model.Exalted},
		{model.Sun, model.Libra, model.Debilitated},
		{model.Sun, model.Leo, model.OwnSign},
		{model.Sun, model.Gemini, model.Neutral},
		// exaltation takes precedence over own sign
		{model.Mercury, model.Virgo, model.Exalted},
		{model.Mercury, model.Gemini, model.OwnSign},
		{model.Mars, model.Scorpio, model.OwnSign},
		{model.Saturn, model.Aries, model.Debilitated},
		{model.Ketu, model.Scorpio, model.Exalted},
		{model.Ketu, model.Libra, model.Neutral},
	}
	for _, tc := range cases {
		got, err := DignityStatusOf(tc.planet, tc.sign)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got, "%s in %s", tc.planet, tc.sign)
	}
}

func TestNatureOf(t *testing.T) {
	for asc := 0; asc < model.SignCount; asc++ {
		for _, node := range []model.Planet{model.Rahu, model.Ketu} {
			got, err := NatureOf(node, model.Sign(asc))
			require.NoError(t, err)
			assert.Equal(t, model.NaturalMalefic, got)
		}
	}

	got, err := NatureOf(model.Jupiter, model.Taurus)
	require.NoError(t, err)
	assert.Equal(t, model.FunctionalMalefic, got)

	got, err = NatureOf(model.Jupiter, model.Aries)
	require.NoError(t, err)
	assert.Equal(t, model.FunctionalBenefic, got)
}

func TestClassifyKetuOppositeRahu(t *testing.T) {
	ketu := KetuLongitude(10.0)
	assert.InDelta(t, 190.0, ketu, 1e-9)

	sign := SignOf(ketu)
	assert.Equal(t, model.Libra, sign)

	for asc := 0; asc < model.SignCount; asc++ {
		d, err := Classify(model.Ketu, sign, model.Sign(asc))
		require.NoError(t, err)
		assert.Equal(t, model.Neutral, d.Status)
		assert.Equal(t, model.NaturalMalefic, d.Nature)
		assert.Equal(t, "Natural Malefic", d.Nature.String())
	}
}

func TestClassifyRejectsUnknownPlanet(t *testing.T) {
	_, err := Classify(model.Planet(42), model.Aries, model.Aries)
	require.Error(t, err)
	assert.True(t, apperrors.Is(err, apperrors.KindInternal))
}
