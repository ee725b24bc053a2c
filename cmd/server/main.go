package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"

	"github.com/Nixie-Tech-LLC/jyotish/internal/advisor"
	"github.com/Nixie-Tech-LLC/jyotish/internal/chart"
	"github.com/Nixie-Tech-LLC/jyotish/internal/ephemeris"
	"github.com/Nixie-Tech-LLC/jyotish/internal/geocode"
	systemapi "github.com/Nixie-Tech-LLC/jyotish/internal/http/api/system/endpoints"
	"github.com/Nixie-Tech-LLC/jyotish/internal/logging"
	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
)

func main() {
	env := LoadEnvironment()
	logging.Init(env.Logging)

	if env.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	metrics, err := observability.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		log.Fatal().Err(err).Msg("metrics init")
	}

	cache, cacheEnabled, closeCache := InitCache(env)
	defer closeCache()

	provider := ephemeris.NewCached(
		ephemeris.NewHTTPProvider(env.EphemerisURL, env.EphemerisTimeout, metrics),
		cache, env.CacheTTL, metrics,
	)
	geocoder := geocode.NewCached(
		geocode.NewNominatim(env.GeocoderURL, env.GeocoderUserAgent, env.GeocoderTimeout, metrics),
		cache, env.CacheTTL, metrics,
	)

	var adv *advisor.Advisor
	if env.AdvisorEnabled() {
		adv = advisor.New(env.AdvisorAPIKey, env.AdvisorBaseURL, env.AdvisorModel, env.MaxQuestions, metrics)
		log.Info().Str("model", env.AdvisorModel).Msg("[advisor] model loaded")
	} else {
		log.Warn().Msg("[advisor] ADVISOR_API_KEY not set, chat disabled")
	}

	r := gin.New()
	r.Use(gin.Recovery())
	RegisterRoutes(r, env, Dependencies{
		Charts:   chart.NewService(provider, geocoder, metrics),
		Geocoder: geocoder,
		Advisor:  adv,
		Metrics:  metrics,
		Status: systemapi.Status{
			Environment:  env.Environment,
			Cache:        cacheEnabled,
			AdvisorModel: adv.Model(),
		},
	})

	srv := &http.Server{
		Addr:              env.ServerAddress,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		log.Info().Str("address", env.ServerAddress).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server error")
		}
	}()

	<-ctx.Done()
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
}
