package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestContactMetrics_ObserveSubmission(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)

	m.ObserveSubmission("log", "sent")
	m.ObserveSubmission("log", "sent")
	m.ObserveSubmission("ses", "failed")

	assert.Equal(t, 2.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("log", "sent")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.submissionsTotal.WithLabelValues("ses", "failed")))
}

func TestContactMetrics_ObserveDispatchLatency(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewContactMetrics(reg)

	m.ObserveDispatchLatency("ses", 0.2)

	assert.Equal(t, 1, testutil.CollectAndCount(m.dispatchLatency))
}

func TestHTTPMetrics_ObserveRequest(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewHTTPMetrics(reg)

	m.ObserveRequest("/health", "GET", "200", 0.001)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.requestsTotal.WithLabelValues("/health", "GET", "200")))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var c *ContactMetrics
	var h *HTTPMetrics

	assert.NotPanics(t, func() {
		c.ObserveSubmission("log", "sent")
		c.ObserveDispatchLatency("log", 1)
		h.ObserveRequest("/", "GET", "200", 1)
	})
}
