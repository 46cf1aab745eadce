package controller_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"tracker/pkg/controller"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestWithMetrics_CountsRequests(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := controller.WithMetrics(reg)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /v1/things", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	h := mw(mux)

	for range 3 {
		req := httptest.NewRequest(http.MethodGet, "/v1/things", nil)
		rec := httptest.NewRecorder()
		h.ServeHTTP(rec, req)
		require.Equal(t, http.StatusOK, rec.Code)
	}

	count := testutil.CollectAndCount(reg, "http_requests_total")
	require.Equal(t, 1, count, "expected a single labeled series")
}

func TestWithMetrics_LabelsUnmatchedRoutes(t *testing.T) {
	reg := prometheus.NewRegistry()
	mw := controller.WithMetrics(reg)

	h := mw(http.NewServeMux())

	req := httptest.NewRequest(http.MethodGet, "/nope", nil)
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	require.Equal(t, http.StatusNotFound, rec.Code)

	count := testutil.CollectAndCount(reg, "http_request_duration_seconds")
	require.Equal(t, 1, count)
}
