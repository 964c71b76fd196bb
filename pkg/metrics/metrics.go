// Package metrics holds shared metric configuration.
package metrics

// DefaultBuckets provides a common set of latency histogram buckets in seconds
// reused across the application.
var DefaultBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10} //nolint: gochecknoglobals
