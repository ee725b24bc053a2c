package main

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/Nixie-Tech-LLC/jyotish/internal/advisor"
	"github.com/Nixie-Tech-LLC/jyotish/internal/chart"
	"github.com/Nixie-Tech-LLC/jyotish/internal/config"
	"github.com/Nixie-Tech-LLC/jyotish/internal/geocode"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/api"
	advisorapi "github.com/Nixie-Tech-LLC/jyotish/internal/http/api/advisor/endpoints"
	chartapi "github.com/Nixie-Tech-LLC/jyotish/internal/http/api/chart/endpoints"
	geoapi "github.com/Nixie-Tech-LLC/jyotish/internal/http/api/geo/endpoints"
	systemapi "github.com/Nixie-Tech-LLC/jyotish/internal/http/api/system/endpoints"
	"github.com/Nixie-Tech-LLC/jyotish/internal/http/middleware"
	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
)

// Dependencies are the collaborators the HTTP modules are built from.
type Dependencies struct {
	Charts   *chart.Service
	Geocoder geocode.Geocoder
	Advisor  *advisor.Advisor
	Metrics  *observability.Collector
	Status   systemapi.Status
}

// RegisterRoutes sets up all application routes
func RegisterRoutes(r *gin.Engine, cfg *config.Config, deps Dependencies) {
	r.Use(middleware.RequestID(), middleware.RequestLogger())
	if deps.Metrics != nil {
		r.Use(deps.Metrics.Middleware())
	}

	// CORS
	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{cfg.FrontendURL},
		AllowMethods: []string{
			"GET",
			"POST",
			"OPTIONS",
		},
		AllowHeaders: []string{
			"Origin",
			"Content-Type",
			"Accept",
			middleware.RequestIDHeader,
		},
		ExposeHeaders: []string{
			"Content-Length",
			middleware.RequestIDHeader,
		},
		AllowCredentials: true,
	}))

	api.MountGroup(r, api.GroupConfig{},
		chartapi.ChartModule(deps.Charts),
		geoapi.SearchModule(deps.Geocoder),
		advisorapi.ChatModule(deps.Advisor),
		systemapi.HealthModule(deps.Status),
	)

	if deps.Metrics != nil {
		r.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
	})
}
