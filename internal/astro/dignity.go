package astro

import (
	"fmt"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
)

type dignityRule struct {
	exaltation   model.Sign
	debilitation model.Sign
	own          []model.Sign
}

var dignityTable = [model.PlanetCount]dignityRule{
	model.Sun:     {model.Aries, model.Libra, []model.Sign{model.Leo}},
	model.Moon:    {model.Taurus, model.Scorpio, []model.Sign{model.Cancer}},
	model.Mars:    {model.Capricorn, model.Cancer, []model.Sign{model.Aries, model.Scorpio}},
	model.Mercury: {model.Virgo, model.Pisces, []model.Sign{model.Gemini, model.Virgo}},
	model.Jupiter: {model.Cancer, model.Capricorn, []model.Sign{model.Sagittarius, model.Pisces}},
	model.Venus:   {model.Pisces, model.Virgo, []model.Sign{model.Taurus, model.Libra}},
	model.Saturn:  {model.Libra, model.Aries, []model.Sign{model.Capricorn, model.Aquarius}},
	model.Rahu:    {model.Taurus, model.Scorpio, []model.Sign{model.Aquarius}},
	model.Ketu:    {model.Scorpio, model.Taurus, []model.Sign{model.Scorpio}},
}

// functionalMalefics lists, per ascendant sign, the classical planets that
// turn malefic for that lagna. The nodes are always malefic and are not listed.
var functionalMalefics = [model.SignCount][]model.Planet{
	model.Aries:       {model.Mercury, model.Saturn},
	model.Taurus:      {model.Venus, model.Jupiter, model.Moon},
	model.Gemini:      {model.Mars, model.Jupiter, model.Sun},
	model.Cancer:      {model.Jupiter, model.Saturn, model.Mercury},
	model.Leo:         {model.Mercury, model.Venus, model.Saturn},
	model.Virgo:       {model.Mars, model.Jupiter, model.Moon},
	model.Libra:       {model.Mars, model.Jupiter, model.Sun},
	model.Scorpio:     {model.Venus, model.Mercury, model.Saturn},
	model.Sagittarius: {model.Venus, model.Saturn, model.Mercury},
	model.Capricorn:   {model.Mars, model.Jupiter, model.Moon},
	model.Aquarius:    {model.Moon, model.Mercury, model.Mars},
	model.Pisces:      {model.Sun, model.Venus, model.Saturn},
}

// DignityStatusOf grades planet in sign. Exaltation wins over debilitation,
// which wins over own sign.
func DignityStatusOf(planet model.Planet, sign model.Sign) (model.DignityStatus, error) {
	if !planet.Valid() || !sign.Valid() {
		return model.Neutral, apperrors.Internal("dignity", fmt.Sprintf("unknown planet %d or sign %d", planet, sign), nil)
	}
	rule := dignityTable[planet]
	switch {
	case sign == rule.exaltation:
		return model.Exalted, nil
	case sign == rule.debilitation:
		return model.Debilitated, nil
	}
	for _, own := range rule.own {
		if sign == own {
			return model.OwnSign, nil
		}
	}
	return model.Neutral, nil
}

// NatureOf reports planet's role for the ascendant sign.
func NatureOf(planet model.Planet, ascendant model.Sign) (model.Nature, error) {
	if !planet.Valid() || !ascendant.Valid() {
		return model.FunctionalBenefic, apperrors.Internal("dignity", fmt.Sprintf("unknown planet %d or ascendant %d", planet, ascendant), nil)
	}
	if planet.IsNode() {
		return model.NaturalMalefic, nil
	}
	for _, m := range functionalMalefics[ascendant] {
		if m == planet {
			return model.FunctionalMalefic, nil
		}
	}
	return model.FunctionalBenefic, nil
}

// Classify combines DignityStatusOf and NatureOf.
func Classify(planet model.Planet, sign, ascendant model.Sign) (model.Dignity, error) {
	status, err := DignityStatusOf(planet, sign)
	if err != nil {
		return model.Dignity{}, err
	}
	nature, err := NatureOf(planet, ascendant)
	if err != nil {
		return model.Dignity{}, err
	}
	return model.Dignity{Status: status, Nature: nature}, nil
}
