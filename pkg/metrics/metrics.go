// Package metrics holds the Prometheus collectors of the service.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics Prometheus collectors registered in the default registry
type Metrics struct {
	httpRequestsTotal   *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec

	upstreamRequestsTotal   *prometheus.CounterVec
	upstreamRequestDuration *prometheus.HistogramVec

	activePickers prometheus.Gauge
	failOpenTotal *prometheus.CounterVec
}

// New creates and registers the collectors for the given service.
func New(serviceName string) *Metrics {
	constLabels := prometheus.Labels{"service": serviceName}

	return &Metrics{
		httpRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "http_requests_total",
			Help:        "Total number of HTTP requests",
			ConstLabels: constLabels,
		}, []string{"method", "path", "status"}),

		httpRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "http_request_duration_seconds",
			Help:        "HTTP request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"method", "path"}),

		upstreamRequestsTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "upstream_requests_total",
			Help:        "Total number of requests to the upstream booking service",
			ConstLabels: constLabels,
		}, []string{"operation", "status"}),

		upstreamRequestDuration: promauto.NewHistogramVec(prometheus.HistogramOpts{
			Name:        "upstream_request_duration_seconds",
			Help:        "Upstream booking service request duration in seconds",
			ConstLabels: constLabels,
			Buckets:     prometheus.DefBuckets,
		}, []string{"operation"}),

		activePickers: promauto.NewGauge(prometheus.GaugeOpts{
			Name:        "picker_sessions_active",
			Help:        "Number of live picker sessions",
			ConstLabels: constLabels,
		}),

		failOpenTotal: promauto.NewCounterVec(prometheus.CounterOpts{
			Name:        "availability_fail_open_total",
			Help:        "Availability reads served with the fail-open default",
			ConstLabels: constLabels,
		}, []string{"reason"}),
	}
}

// ObserveHTTP records one handled HTTP request.
func (m *Metrics) ObserveHTTP(method, path, status string, duration time.Duration) {
	m.httpRequestsTotal.WithLabelValues(method, path, status).Inc()
	m.httpRequestDuration.WithLabelValues(method, path).Observe(duration.Seconds())
}

// ObserveUpstream records one request to the upstream booking service.
func (m *Metrics) ObserveUpstream(operation, status string, duration time.Duration) {
	m.upstreamRequestsTotal.WithLabelValues(operation, status).Inc()
	m.upstreamRequestDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// SetActivePickers sets the live picker sessions gauge.
func (m *Metrics) SetActivePickers(n int) {
	m.activePickers.Set(float64(n))
}

// IncFailOpen counts one availability read that degraded to the fail-open default.
// reason is "degraded" or "no_credential".
func (m *Metrics) IncFailOpen(reason string) {
	m.failOpenTotal.WithLabelValues(reason).Inc()
}
