package observability

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsRequests(t *testing.T) {
	gin.SetMode(gin.TestMode)
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	r := gin.New()
	r.Use(c.Middleware())
	r.GET("/ping", func(ctx *gin.Context) { ctx.String(http.StatusOK, "pong") })
	r.GET("/metrics", gin.WrapH(c.Handler()))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ping", nil))
	require.Equal(t, http.StatusOK, w.Code)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.HTTPRequests.WithLabelValues("GET", "/ping", "200")))

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.True(t, strings.Contains(w.Body.String(), "http_requests_total"))
}

func TestCollectorReRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	first, err := NewCollector(reg)
	require.NoError(t, err)
	second, err := NewCollector(reg)
	require.NoError(t, err)
	assert.Same(t, first.ChartsComputed, second.ChartsComputed)
}

func TestObserveHelpers(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg)
	require.NoError(t, err)

	c.ObserveUpstream("ephemeris", time.Now(), nil)
	c.ObserveUpstream("ephemeris", time.Now(), errors.New("down"))
	c.ObserveCache("geocode", "hit")
	c.ObserveChart("ok")

	assert.Equal(t, 1.0, testutil.ToFloat64(c.UpstreamRequests.WithLabelValues("ephemeris", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.CacheLookups.WithLabelValues("geocode", "hit")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.ChartsComputed.WithLabelValues("ok")))

	var nilCollector *Collector
	nilCollector.ObserveChart("ok")
}
