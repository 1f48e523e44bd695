package monitoring

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds all Prometheus metrics for the backend.
type Metrics struct {
	// HTTP metrics
	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	// Engine operation metrics
	OperationsTotal   *prometheus.CounterVec
	OperationDuration *prometheus.HistogramVec
	EigenIterations   prometheus.Histogram

	// Streaming metrics
	StreamConnections prometheus.Gauge

	// System metrics
	Uptime    prometheus.GaugeFunc
	startTime time.Time

	registry *prometheus.Registry
}

// NewMetrics creates a metrics collector with its own registry.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()
	factory := promauto.With(registry)
	start := time.Now()

	return &Metrics{
		startTime: start,
		registry:  registry,

		RequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numerics_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "path", "status"},
		),
		RequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numerics_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"method", "path"},
		),

		OperationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "numerics_engine_operations_total",
				Help: "Total engine operations by tool and outcome",
			},
			[]string{"tool", "status"},
		),
		OperationDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "numerics_engine_operation_duration_seconds",
				Help:    "Engine operation duration in seconds",
				Buckets: []float64{.0001, .0005, .001, .005, .01, .05, .1, .5, 1, 5},
			},
			[]string{"tool"},
		),
		EigenIterations: factory.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "numerics_engine_eigen_iterations",
				Help:    "QR iterations run per eigenvalue extraction",
				Buckets: []float64{1, 5, 10, 25, 50, 100, 250, 500, 1000},
			},
		),

		StreamConnections: factory.NewGauge(
			prometheus.GaugeOpts{
				Name: "numerics_stream_connections",
				Help: "Open WebSocket streaming connections",
			},
		),

		Uptime: factory.NewGaugeFunc(
			prometheus.GaugeOpts{
				Name: "numerics_uptime_seconds",
				Help: "Process uptime in seconds",
			},
			func() float64 { return time.Since(start).Seconds() },
		),
	}
}

// RecordHTTPRequest records a completed HTTP request.
func (m *Metrics) RecordHTTPRequest(method, path, status string, duration time.Duration) {
	m.RequestsTotal.WithLabelValues(method, path, status).Inc()
	m.RequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// RecordOperation records a completed engine operation.
func (m *Metrics) RecordOperation(tool, status string, duration time.Duration) {
	m.OperationsTotal.WithLabelValues(tool, status).Inc()
	m.OperationDuration.WithLabelValues(tool).Observe(duration.Seconds())
}

// RecordEigenIterations records the iteration count of an eigenvalue run.
func (m *Metrics) RecordEigenIterations(iterations int) {
	m.EigenIterations.Observe(float64(iterations))
}

// Handler returns the HTTP handler exposing this collector's registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
