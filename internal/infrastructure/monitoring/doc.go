// Package monitoring provides Prometheus metrics for the numerics backend:
// HTTP request counters and latencies, per-tool engine operation metrics,
// eigenvalue iteration counts, and streaming connection gauges.
//
// Each Metrics value owns its registry, so collectors can be created freely
// in tests without duplicate-registration panics; the server exposes a
// collector's registry at /metrics.
package monitoring
