package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecorder_Counters(t *testing.T) {
	recorder := NewRecorder()

	recorder.RequestObserved("accepted")
	recorder.RequestObserved("accepted")
	recorder.RequestObserved("already_pending")
	recorder.FulfillmentObserved("duplicate")
	recorder.RevealObserved("oracle", 50)
	recorder.ForceRevealObserved("window_open")

	assert.Equal(t, float64(2), testutil.ToFloat64(recorder.requests.WithLabelValues("accepted")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.requests.WithLabelValues("already_pending")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.fulfillments.WithLabelValues("duplicate")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.reveals.WithLabelValues("oracle")))
	assert.Equal(t, float64(1), testutil.ToFloat64(recorder.forceReveals.WithLabelValues("window_open")))
	assert.Equal(t, 1, testutil.CollectAndCount(recorder.batchSize))
}

func TestRecorder_Handler(t *testing.T) {
	recorder := NewRecorder()
	recorder.HTTPObserved("POST", "/api/v1/requests", 201, 20*time.Millisecond)

	rec := httptest.NewRecorder()
	recorder.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(string(body), `vrf_coordinator_http_requests_total{method="POST",route="/api/v1/requests",status="201"} 1`))
}
