package serrors

import (
	"errors"
	"net/http"
)

// HTTPStatus maps a semantic error to the HTTP status code the API layer
// should respond with. Errors without a recognized kind map to 500.
func HTTPStatus(err error) int {
	switch {
	case err == nil:
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrBadRequest):
		return http.StatusBadRequest
	case errors.Is(err, ErrConflict):
		return http.StatusConflict
	case errors.Is(err, ErrTimeout):
		return http.StatusGatewayTimeout
	case errors.Is(err, ErrUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, ErrRateLimited):
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// Code returns the stable machine-readable code for a semantic error, used in
// API error payloads. Non-semantic errors report as INTERNAL.
func Code(err error) string {
	var serr *Error
	if errors.As(err, &serr) && serr.Kind() != nil {
		return serr.Kind().Error()
	}

	return ErrInternal.Error()
}
