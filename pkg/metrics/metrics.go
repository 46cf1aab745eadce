// Package metrics holds shared Prometheus conventions.
package metrics

// DefaultBuckets is the latency histogram bucket set, in seconds, used by
// every request-duration metric.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
