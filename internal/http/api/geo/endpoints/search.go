package endpoints

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/geocode"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api"
)

const searchLimit = 5

type searchQuery struct {
	Query string `form:"query" binding:"required,min=3"`
}

type GeoController struct {
	geocoder geocode.Geocoder
}

// SearchModule mounts GET /search_city.
func SearchModule(geocoder geocode.Geocoder) api.Module {
	ctl := &GeoController{geocoder: geocoder}
	return api.ModuleFunc(func(c *api.Controller) {
		c.GET("/search_city", ctl.searchCity)
	})
}

// searchCity never fails on geocoder trouble; the city picker just shows
// no suggestions.
func (g *GeoController) searchCity(ctx *gin.Context) (any, *api.APIError) {
	var q searchQuery
	if err := ctx.ShouldBindQuery(&q); err != nil {
		return nil, api.BadRequest(err)
	}

	places, err := g.geocoder.Search(ctx.Request.Context(), q.Query, searchLimit)
	if err != nil {
		log.Error().Err(err).Str("query", q.Query).Msg("[geo] search failed")
		return []geocode.Place{}, nil
	}
	if places == nil {
		places = []geocode.Place{}
	}
	return places, nil
}
