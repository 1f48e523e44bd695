package monitoring

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordOperation(t *testing.T) {
	m := NewMetrics()

	m.RecordOperation("linalg.solve", "success", 10*time.Millisecond)
	m.RecordOperation("linalg.solve", "success", 20*time.Millisecond)
	m.RecordOperation("linalg.inverse", "error", time.Millisecond)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("linalg.solve", "success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("linalg.inverse", "error")))
}

func TestTimer(t *testing.T) {
	m := NewMetrics()

	timer := NewTimer(m, "linalg.eigenvalues")
	timer.Stop("success")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.OperationsTotal.WithLabelValues("linalg.eigenvalues", "success")))
}

func TestHandlerServesRegistry(t *testing.T) {
	m := NewMetrics()
	m.RecordHTTPRequest("GET", "/health", "200", time.Millisecond)

	rec := httptest.NewRecorder()
	req := httptest.NewRequest("GET", "/metrics", nil)
	m.Handler().ServeHTTP(rec, req)

	require.Equal(t, 200, rec.Code)
	assert.Contains(t, rec.Body.String(), "numerics_http_requests_total")
}

func TestIndependentRegistries(t *testing.T) {
	// Two collectors must not collide on registration.
	a := NewMetrics()
	b := NewMetrics()
	a.RecordEigenIterations(12)
	b.RecordEigenIterations(7)
}
