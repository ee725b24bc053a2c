// Package geocode resolves city names to coordinates through a Nominatim
// compatible search API.
package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
	"github.com/Nixie-Tech-LLC/jyotish/internal/redis"
	"github.com/Nixie-Tech-LLC/jyotish/internal/resilience"
)

// Place is one geocoding match.
type Place struct {
	Name      string  `json:"name"`
	Latitude  float64 `json:"lat"`
	Longitude float64 `json:"lon"`
}

// Geocoder finds places by free-text query.
type Geocoder interface {
	Search(ctx context.Context, query string, limit int) ([]Place, error)
}

type nominatimResult struct {
	DisplayName string `json:"display_name"`
	Lat         string `json:"lat"`
	Lon         string `json:"lon"`
}

// Nominatim is a Geocoder backed by the OpenStreetMap Nominatim API.
type Nominatim struct {
	baseURL   string
	userAgent string
	client    *http.Client
	breaker   *resilience.CircuitBreaker
	metrics   *observability.Collector
}

func NewNominatim(baseURL, userAgent string, timeout time.Duration, metrics *observability.Collector) *Nominatim {
	return &Nominatim{
		baseURL:   strings.TrimSuffix(baseURL, "/"),
		userAgent: userAgent,
		client:    &http.Client{Timeout: timeout},
		breaker:   resilience.NewCircuitBreaker("geocoder", resilience.DefaultCircuitBreakerConfig()),
		metrics:   metrics,
	}
}

func (n *Nominatim) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	params := url.Values{}
	params.Set("q", query)
	params.Set("format", "json")
	params.Set("limit", strconv.Itoa(limit))
	params.Set("accept-language", "en")

	started := time.Now()
	places, err := resilience.Execute(n.breaker, ctx, func(ctx context.Context) ([]Place, error) {
		return n.get(ctx, n.baseURL+"/search?"+params.Encode())
	})
	n.metrics.ObserveUpstream("geocoder", started, err)
	if err != nil {
		return nil, apperrors.Upstream("geocode", "geocoding unavailable", err)
	}
	return places, nil
}

func (n *Nominatim) get(ctx context.Context, endpoint string) ([]Place, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", n.userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := n.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("geocoder returned %d", resp.StatusCode)
	}

	var results []nominatimResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		return nil, fmt.Errorf("decode geocoder response: %w", err)
	}

	places := make([]Place, 0, len(results))
	for _, r := range results {
		lat, latErr := strconv.ParseFloat(r.Lat, 64)
		lon, lonErr := strconv.ParseFloat(r.Lon, 64)
		if latErr != nil || lonErr != nil {
			log.Warn().Str("name", r.DisplayName).Msg("[geocode] skipping result with bad coordinates")
			continue
		}
		places = append(places, Place{Name: r.DisplayName, Latitude: lat, Longitude: lon})
	}
	return places, nil
}

// Locate returns the best match for city. An empty result is an input
// error wrapping ErrCityNotFound.
func Locate(ctx context.Context, g Geocoder, city string) (Place, error) {
	places, err := g.Search(ctx, city, 1)
	if err != nil {
		return Place{}, err
	}
	if len(places) == 0 {
		return Place{}, apperrors.Input("geocode", fmt.Sprintf("no match for %q", city), apperrors.ErrCityNotFound)
	}
	return places[0], nil
}

// Cached memoises another Geocoder's successful searches.
type Cached struct {
	next    Geocoder
	cache   redis.Cache
	ttl     time.Duration
	metrics *observability.Collector
}

func NewCached(next Geocoder, cache redis.Cache, ttl time.Duration, metrics *observability.Collector) *Cached {
	return &Cached{next: next, cache: cache, ttl: ttl, metrics: metrics}
}

func (c *Cached) Search(ctx context.Context, query string, limit int) ([]Place, error) {
	key := redis.Key("geocode", strings.ToLower(strings.TrimSpace(query)), strconv.Itoa(limit))

	var places []Place
	found, err := c.cache.Get(ctx, key, &places)
	switch {
	case err != nil:
		c.metrics.ObserveCache("geocode", "error")
		log.Warn().Err(err).Msg("[geocode] cache read failed")
	case found:
		c.metrics.ObserveCache("geocode", "hit")
		return places, nil
	default:
		c.metrics.ObserveCache("geocode", "miss")
	}

	places, err = c.next.Search(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	// Empty results are not cached; the place may simply be misspelt today.
	if len(places) > 0 {
		if err := c.cache.Set(ctx, key, places, c.ttl); err != nil {
			log.Warn().Err(err).Msg("[geocode] cache write failed")
		}
	}
	return places, nil
}
