package observability

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds the Prometheus counters and histograms for the API surface.
type Metrics struct {
	RequestsTotal   *prometheus.CounterVec   // labels: method, path, status
	RequestDuration *prometheus.HistogramVec // labels: method, path

	// Scoring metrics.
	ScoresComputed *prometheus.CounterVec // labels: activity, label
	UpstreamErrors *prometheus.CounterVec // labels: upstream={weather,geocode}

	registry *prometheus.Registry
}

// NewMetrics creates and registers all service metrics on a private registry.
func NewMetrics() *Metrics {
	reg := prometheus.NewRegistry()

	m := &Metrics{
		RequestsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outdoorcast",
			Name:      "http_requests_total",
			Help:      "HTTP requests by method, route pattern, and status.",
		}, []string{"method", "path", "status"}),
		RequestDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: "outdoorcast",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds.",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10},
		}, []string{"method", "path"}),
		ScoresComputed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outdoorcast",
			Name:      "scores_computed_total",
			Help:      "Suitability results by activity and label.",
		}, []string{"activity", "label"}),
		UpstreamErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "outdoorcast",
			Name:      "upstream_errors_total",
			Help:      "Failed upstream fetches by service.",
		}, []string{"upstream"}),
		registry: reg,
	}

	reg.MustRegister(
		m.RequestsTotal,
		m.RequestDuration,
		m.ScoresComputed,
		m.UpstreamErrors,
	)

	return m
}

// Handler returns the /metrics endpoint handler for this registry.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}
