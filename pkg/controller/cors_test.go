package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tracker/pkg/controller"

	"github.com/stretchr/testify/require"
)

func TestWithCORS_PreflightShortCircuits(t *testing.T) {
	called := false
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		called = true
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/v1/projects", nil))

	require.False(t, called)
	require.Equal(t, http.StatusNoContent, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.Contains(t, rec.Header().Get("Access-Control-Allow-Methods"), "DELETE")
}

func TestWithCORS_ForwardsOtherMethods(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	rec := httptest.NewRecorder()
	controller.WithCORS(next).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/projects", nil))

	require.Equal(t, http.StatusTeapot, rec.Code)
	require.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	require.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Headers"))
}
