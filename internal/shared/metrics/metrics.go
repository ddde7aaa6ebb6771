package metrics

import (
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "vrf_coordinator"

// Recorder owns the coordinator's collectors on a private registry.
type Recorder struct {
	registry *prometheus.Registry

	requests     *prometheus.CounterVec
	fulfillments *prometheus.CounterVec
	reveals      *prometheus.CounterVec
	forceReveals *prometheus.CounterVec
	batchSize    prometheus.Histogram
	httpRequests *prometheus.CounterVec
	httpDuration *prometheus.HistogramVec
}

func NewRecorder() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		requests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "requests_total",
			Help:      "Randomness requests by outcome.",
		}, []string{"result"}),
		fulfillments: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "fulfillments_total",
			Help:      "Oracle fulfillments by outcome.",
		}, []string{"result"}),
		reveals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "reveals_total",
			Help:      "Revealed commitments by seed source.",
		}, []string{"kind"}),
		forceReveals: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "force_reveals_total",
			Help:      "Force-reveal attempts by outcome.",
		}, []string{"result"}),
		batchSize: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "reveal_batch_size",
			Help:      "Items expanded per reveal.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 10),
		}),
		httpRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "HTTP requests handled.",
		}, []string{"method", "route", "status"}),
		httpDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of HTTP requests.",
			Buckets:   prometheus.ExponentialBuckets(0.005, 2, 10),
		}, []string{"method", "route"}),
	}

	r.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		r.requests,
		r.fulfillments,
		r.reveals,
		r.forceReveals,
		r.batchSize,
		r.httpRequests,
		r.httpDuration,
	)

	return r
}

func (r *Recorder) RequestObserved(result string) {
	r.requests.WithLabelValues(result).Inc()
}

func (r *Recorder) FulfillmentObserved(result string) {
	r.fulfillments.WithLabelValues(result).Inc()
}

func (r *Recorder) RevealObserved(kind string, batchSize uint32) {
	r.reveals.WithLabelValues(kind).Inc()
	r.batchSize.Observe(float64(batchSize))
}

func (r *Recorder) ForceRevealObserved(result string) {
	r.forceReveals.WithLabelValues(result).Inc()
}

func (r *Recorder) HTTPObserved(method, route string, status int, duration time.Duration) {
	r.httpRequests.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
	r.httpDuration.WithLabelValues(method, route).Observe(duration.Seconds())
}

func (r *Recorder) Registry() *prometheus.Registry {
	return r.registry
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Recorder) Handler() http.Handler {
	return promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{Registry: r.registry})
}
