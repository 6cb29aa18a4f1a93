// Package upstreammetrics instruments outbound HTTP calls to the upstream
// booking service with the Prometheus collectors from pkg/metrics.
package upstreammetrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/kittyofheaven/kaizen-booking/pkg/metrics"
)

// Doer is the outbound HTTP client surface being wrapped.
type Doer interface {
	Do(req *http.Request) (*http.Response, error)
}

// contextKey for carrying the logical operation name on the request.
type contextKey struct{}

var operationKey = contextKey{}

// Client wraps a Doer and records per-operation counters and durations.
type Client struct {
	next Doer
	m    *metrics.Metrics
}

// Wrap returns a Doer that records metrics for every request.
func Wrap(next Doer, m *metrics.Metrics) *Client {
	return &Client{next: next, m: m}
}

// WithOperation tags the request with a logical operation name
// (e.g. "get_availability") used as the metrics label.
func WithOperation(req *http.Request, operation string) *http.Request {
	return req.WithContext(contextWithOperation(req.Context(), operation))
}

// Do executes the request and records its outcome.
func (c *Client) Do(req *http.Request) (*http.Response, error) {
	operation := operationFromContext(req.Context())
	start := time.Now()

	resp, err := c.next.Do(req)

	status := "error"
	if err == nil {
		status = strconv.Itoa(resp.StatusCode)
	}
	c.m.ObserveUpstream(operation, status, time.Since(start))

	return resp, err
}
