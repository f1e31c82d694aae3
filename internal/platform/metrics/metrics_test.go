package metrics_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/SscSPs/fx_lookup_app/internal/platform/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupMetrics_Record(t *testing.T) {
	m := metrics.NewLookupMetrics()

	m.RecordUpstream(metrics.ServiceRateLookup, metrics.OutcomeSuccess, 20*time.Millisecond)
	m.RecordUpstream(metrics.ServiceRateLookup, metrics.OutcomeSuccess, 30*time.Millisecond)
	m.RecordUpstream(metrics.ServiceRateLookup, metrics.OutcomeUpstreamError, 5*time.Millisecond)
	m.RecordInvocation(metrics.ServiceRateLookup, http.StatusBadGateway)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues(metrics.ServiceRateLookup, metrics.OutcomeSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.UpstreamRequestsTotal.WithLabelValues(metrics.ServiceRateLookup, metrics.OutcomeUpstreamError)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.InvocationsTotal.WithLabelValues(metrics.ServiceRateLookup, "502")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.UpstreamRequestDuration))
}

func TestLookupMetrics_NilIsNoop(t *testing.T) {
	var m *metrics.LookupMetrics
	assert.NotPanics(t, func() {
		m.RecordUpstream(metrics.ServiceURLShortener, metrics.OutcomeTransportError, time.Second)
		m.RecordInvocation(metrics.ServiceURLShortener, http.StatusOK)
	})
}

func TestLookupMetrics_Handler(t *testing.T) {
	m := metrics.NewLookupMetrics()
	m.RecordInvocation(metrics.ServiceURLShortener, http.StatusOK)

	server := httptest.NewServer(m.Handler())
	defer server.Close()

	res, err := http.Get(server.URL)
	require.NoError(t, err)
	defer res.Body.Close()

	body, err := io.ReadAll(res.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `invocations_total{service="url_shortener",status="200"} 1`)
}
