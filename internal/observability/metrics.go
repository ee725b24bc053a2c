package observability

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Collector bundles the service's Prometheus metrics.
type Collector struct {
	gatherer prometheus.Gatherer

	HTTPRequests  *prometheus.CounterVec
	HTTPDurations *prometheus.HistogramVec

	ChartsComputed *prometheus.CounterVec

	UpstreamRequests  *prometheus.CounterVec
	UpstreamDurations *prometheus.HistogramVec

	CacheLookups *prometheus.CounterVec
}

// NewCollector registers metrics against reg, defaulting to the global
// registry when reg is nil. Registering twice against the same registry
// reuses the existing collectors.
func NewCollector(reg prometheus.Registerer) (*Collector, error) {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	gatherer := prometheus.DefaultGatherer
	if g, ok := reg.(prometheus.Gatherer); ok {
		gatherer = g
	}

	c := &Collector{gatherer: gatherer}
	var err error

	if c.HTTPRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "http_requests_total",
		Help: "Handled HTTP requests by method, route and status code.",
	}, []string{"method", "route", "code"})); err != nil {
		return nil, err
	}
	if c.HTTPDurations, err = registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "http_request_duration_seconds",
		Help:    "HTTP request latency in seconds.",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "route"})); err != nil {
		return nil, err
	}
	if c.ChartsComputed, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "charts_computed_total",
		Help: "Chart computations by outcome (ok, input, upstream, internal).",
	}, []string{"outcome"})); err != nil {
		return nil, err
	}
	if c.UpstreamRequests, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "upstream_requests_total",
		Help: "Calls to external collaborators by collaborator and outcome.",
	}, []string{"collaborator", "outcome"})); err != nil {
		return nil, err
	}
	if c.UpstreamDurations, err = registerHistogramVec(reg, prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "upstream_request_duration_seconds",
		Help:    "Latency of calls to external collaborators.",
		Buckets: []float64{0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10, 30},
	}, []string{"collaborator"})); err != nil {
		return nil, err
	}
	if c.CacheLookups, err = registerCounterVec(reg, prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "cache_lookups_total",
		Help: "Upstream cache lookups by cache and result (hit, miss, error).",
	}, []string{"cache", "result"})); err != nil {
		return nil, err
	}
	return c, nil
}

// ObserveUpstream records one call to an external collaborator.
func (c *Collector) ObserveUpstream(collaborator string, started time.Time, err error) {
	if c == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	c.UpstreamRequests.WithLabelValues(collaborator, outcome).Inc()
	c.UpstreamDurations.WithLabelValues(collaborator).Observe(time.Since(started).Seconds())
}

// ObserveCache records a cache lookup result.
func (c *Collector) ObserveCache(cache, result string) {
	if c == nil {
		return
	}
	c.CacheLookups.WithLabelValues(cache, result).Inc()
}

// ObserveChart records a chart computation outcome.
func (c *Collector) ObserveChart(outcome string) {
	if c == nil {
		return
	}
	c.ChartsComputed.WithLabelValues(outcome).Inc()
}

// Middleware records request counts and latency per matched route.
func (c *Collector) Middleware() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		started := time.Now()
		ctx.Next()

		route := ctx.FullPath()
		if route == "" {
			route = "unmatched"
		}
		method := ctx.Request.Method
		c.HTTPRequests.WithLabelValues(method, route, strconv.Itoa(ctx.Writer.Status())).Inc()
		c.HTTPDurations.WithLabelValues(method, route).Observe(time.Since(started).Seconds())
	}
}

// Handler exposes the registered metrics.
func (c *Collector) Handler() http.Handler {
	return promhttp.HandlerFor(c.gatherer, promhttp.HandlerOpts{})
}

func registerCounterVec(reg prometheus.Registerer, vec *prometheus.CounterVec) (*prometheus.CounterVec, error) {
	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.CounterVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}

func registerHistogramVec(reg prometheus.Registerer, vec *prometheus.HistogramVec) (*prometheus.HistogramVec, error) {
	if err := reg.Register(vec); err != nil {
		var already prometheus.AlreadyRegisteredError
		if errors.As(err, &already) {
			if existing, ok := already.ExistingCollector.(*prometheus.HistogramVec); ok {
				return existing, nil
			}
		}
		return nil, err
	}
	return vec, nil
}
