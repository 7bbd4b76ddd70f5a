package observability

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMetricsMiddlewareRecordsRequests(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	handler := metrics.Middleware(func(r *http.Request) string {
		return "/projects/{id}"
	})(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	req := httptest.NewRequest(http.MethodGet, "/projects/p1", nil)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)

	output := string(body)
	assert.Contains(t, output, `spooltrack_http_requests_total{method="GET",path="/projects/{id}",status="404"} 1`)
	assert.Contains(t, output, "spooltrack_http_request_duration_seconds")
}

func TestMetricsMiddlewareFallsBackToRawPath(t *testing.T) {
	metrics := NewMetrics(nil)

	handler := metrics.Middleware(nil)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/healthz", nil))

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Contains(t, rec.Body.String(), `path="/healthz"`)
}

func TestStorageCounters(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())

	metrics.StorageOperationsTotal.WithLabelValues("project", "create").Inc()
	metrics.StorageErrorsTotal.WithLabelValues("project", "create").Inc()

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	output := rec.Body.String()
	assert.Contains(t, output, `spooltrack_storage_operations_total{operation="create",resource="project"} 1`)
	assert.Contains(t, output, `spooltrack_storage_errors_total{operation="create",resource="project"} 1`)
}
