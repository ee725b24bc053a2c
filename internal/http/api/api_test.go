package api

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
)

func TestFromError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		code int
	}{
		{"input", apperrors.Input("birth", "bad date", nil), http.StatusBadRequest},
		{"city", apperrors.Input("geocode", "no match", apperrors.ErrCityNotFound), http.StatusNotFound},
		{"upstream", apperrors.Upstream("ephemeris", "down", errors.New("eof")), http.StatusBadGateway},
		{"advisor", apperrors.Upstream("advisor", "no key", apperrors.ErrAdvisorUnavailable), http.StatusServiceUnavailable},
		{"internal", apperrors.Internal("chart", "broken", nil), http.StatusInternalServerError},
		{"unclassified", errors.New("boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.code, FromError(tc.err).Code)
		})
	}
}

func TestMountGroup(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	MountGroup(r, GroupConfig{Prefix: "/v1"}, ModuleFunc(func(c *Controller) {
		c.GET("/ok", func(*gin.Context) (any, *APIError) { return gin.H{"ok": true}, nil })
		c.POST("/fail", func(*gin.Context) (any, *APIError) {
			return nil, &APIError{Code: http.StatusTeapot, Message: "short and stout"}
		})
	}))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/v1/ok", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true}`, w.Body.String())

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/v1/fail", nil))
	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.JSONEq(t, `{"detail":"short and stout"}`, w.Body.String())
}
