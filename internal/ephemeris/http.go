package ephemeris

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
	"github.com/Nixie-Tech-LLC/jyotish/internal/model"
	"github.com/Nixie-Tech-LLC/jyotish/internal/observability"
	"github.com/Nixie-Tech-LLC/jyotish/internal/resilience"
)

type positionsRequest struct {
	UTC         string   `json:"utc"`
	Latitude    float64  `json:"lat"`
	Longitude   float64  `json:"lon"`
	Ayanamsa    string   `json:"ayanamsa"`
	HouseSystem string   `json:"house_system"`
	Node        string   `json:"node"`
	Bodies      []string `json:"bodies"`
}

// HTTPProvider calls an ephemeris service over JSON/HTTP.
type HTTPProvider struct {
	baseURL string
	client  *http.Client
	breaker *resilience.CircuitBreaker
	retry   resilience.RetryConfig
	metrics *observability.Collector
}

// NewHTTPProvider creates a provider posting to baseURL + "/positions".
func NewHTTPProvider(baseURL string, timeout time.Duration, metrics *observability.Collector) *HTTPProvider {
	return &HTTPProvider{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client:  &http.Client{Timeout: timeout},
		breaker: resilience.NewCircuitBreaker("ephemeris", resilience.DefaultCircuitBreakerConfig()),
		retry:   resilience.DefaultRetryConfig(),
		metrics: metrics,
	}
}

func (p *HTTPProvider) Positions(ctx context.Context, req Request) (*Snapshot, error) {
	bodies := make([]string, 0, len(model.MeasuredPlanets))
	for _, planet := range model.MeasuredPlanets {
		bodies = append(bodies, planet.String())
	}
	payload, err := json.Marshal(positionsRequest{
		UTC:         req.Instant.UTC().Format(time.RFC3339),
		Latitude:    req.Latitude,
		Longitude:   req.Longitude,
		Ayanamsa:    Ayanamsa,
		HouseSystem: HouseSystem,
		Node:        NodeModel,
		Bodies:      bodies,
	})
	if err != nil {
		return nil, apperrors.Internal("ephemeris", "encode request", err)
	}

	started := time.Now()
	snap, err := resilience.RetryWithResult(ctx, p.retry, func(ctx context.Context) (*Snapshot, error) {
		return resilience.Execute(p.breaker, ctx, func(ctx context.Context) (*Snapshot, error) {
			return p.post(ctx, payload)
		})
	})
	p.metrics.ObserveUpstream("ephemeris", started, err)
	if err != nil {
		log.Error().Err(err).Time("utc", req.Instant.UTC()).Msg("[ephemeris] positions request failed")
		return nil, apperrors.Upstream("ephemeris", "ephemeris provider unavailable", err)
	}
	if _, err := snap.Validate(); err != nil {
		return nil, err
	}
	return snap, nil
}

func (p *HTTPProvider) post(ctx context.Context, payload []byte) (*Snapshot, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, p.baseURL+"/positions", bytes.NewReader(payload))
	if err != nil {
		return nil, &resilience.Permanent{Err: err}
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(httpReq)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		statusErr := fmt.Errorf("ephemeris returned %d: %s", resp.StatusCode, strings.TrimSpace(string(body)))
		if resp.StatusCode >= 400 && resp.StatusCode < 500 {
			return nil, &resilience.Permanent{Err: statusErr}
		}
		return nil, statusErr
	}

	var snap Snapshot
	if err := json.NewDecoder(resp.Body).Decode(&snap); err != nil {
		return nil, &resilience.Permanent{Err: fmt.Errorf("decode ephemeris response: %w", err)}
	}
	return &snap, nil
}
