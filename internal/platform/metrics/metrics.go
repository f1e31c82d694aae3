package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Upstream call outcomes.
const (
	OutcomeSuccess        = "success"
	OutcomeUpstreamError  = "upstream_error"
	OutcomeTransportError = "transport_error"
	OutcomeInvalidPayload = "invalid_payload"
)

// Service label values.
const (
	ServiceRateLookup   = "rate_lookup"
	ServiceURLShortener = "url_shortener"
)

// LookupMetrics holds the counters and histograms of the invocation handlers.
type LookupMetrics struct {
	registry *prometheus.Registry

	UpstreamRequestsTotal   *prometheus.CounterVec
	UpstreamRequestDuration *prometheus.HistogramVec
	InvocationsTotal        *prometheus.CounterVec
}

// NewLookupMetrics registers all metrics on a fresh registry.
func NewLookupMetrics() *LookupMetrics {
	reg := prometheus.NewRegistry()
	factory := promauto.With(reg)

	return &LookupMetrics{
		registry: reg,

		UpstreamRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "upstream_requests_total",
				Help: "Outbound calls to third-party services by outcome",
			},
			[]string{"service", "outcome"},
		),

		UpstreamRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "upstream_request_duration_seconds",
				Help:    "Latency of outbound calls to third-party services",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"service"},
		),

		InvocationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "invocations_total",
				Help: "Handled invocations by response status code",
			},
			[]string{"service", "status"},
		),
	}
}

// RecordUpstream records one outbound call. Safe on a nil receiver.
func (m *LookupMetrics) RecordUpstream(service, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.UpstreamRequestsTotal.WithLabelValues(service, outcome).Inc()
	m.UpstreamRequestDuration.WithLabelValues(service).Observe(elapsed.Seconds())
}

// RecordInvocation records the status code of one handled invocation. Safe on a nil receiver.
func (m *LookupMetrics) RecordInvocation(service string, statusCode int) {
	if m == nil {
		return
	}
	m.InvocationsTotal.WithLabelValues(service, strconv.Itoa(statusCode)).Inc()
}

// Handler serves the registry in the Prometheus exposition format.
func (m *LookupMetrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}
