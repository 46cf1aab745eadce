// Package controller holds the HTTP middleware stack of the API server:
// WithCORS (permissive CORS plus preflight), WithLogger (request ID,
// request-scoped logger, access log), WithMetrics (per-route counters and
// latency histograms) and the PprofMux debug handler set.
package controller
