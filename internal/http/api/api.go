package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	apperrors "github.com/Nixie-Tech-LLC/jyotish/internal/errors"
)

type APIError struct {
	Code    int
	Message string
}

type HandlerFunc func(ctx *gin.Context) (any, *APIError)

// ResolveEndpoint adapts a HandlerFunc to gin: results are written as JSON
// with 200, errors as {"detail": message} with their code.
func ResolveEndpoint(h HandlerFunc) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		result, apiErr := h(ctx)
		if apiErr != nil {
			ctx.JSON(apiErr.Code, gin.H{"detail": apiErr.Message})
			return
		}

		ctx.JSON(http.StatusOK, result)
	}
}

// BadRequest wraps a binding or validation failure.
func BadRequest(err error) *APIError {
	return &APIError{Code: http.StatusBadRequest, Message: err.Error()}
}

// FromError maps an error from the service packages to an HTTP status.
func FromError(err error) *APIError {
	var appErr *apperrors.Error
	message := "internal error"
	if errors.As(err, &appErr) {
		message = appErr.Message
	}

	switch {
	case errors.Is(err, apperrors.ErrCityNotFound):
		return &APIError{Code: http.StatusNotFound, Message: "City not found"}
	case errors.Is(err, apperrors.ErrAdvisorUnavailable):
		return &APIError{Code: http.StatusServiceUnavailable, Message: message}
	}

	switch apperrors.KindOf(err) {
	case apperrors.KindInput:
		return &APIError{Code: http.StatusBadRequest, Message: message}
	case apperrors.KindUpstream:
		return &APIError{Code: http.StatusBadGateway, Message: message}
	default:
		log.Error().Err(err).Msg("[api] internal error")
		return &APIError{Code: http.StatusInternalServerError, Message: message}
	}
}
