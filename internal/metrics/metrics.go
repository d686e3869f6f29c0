// Package metrics holds the Prometheus collectors exported by folio serve.
package metrics

import (
	"net/http"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics is one set of collectors on its own registry, so several servers
// (and tests) can coexist in a process.
type Metrics struct {
	Registry *prometheus.Registry

	Requests        *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec
	Events          *prometheus.CounterVec
	LoadFailures    *prometheus.CounterVec
	LiveSessions    prometheus.Gauge
	Builds          *prometheus.CounterVec
}

// New registers every collector on a fresh registry.
func New() *Metrics {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)
	f := promauto.With(reg)

	return &Metrics{
		Registry: reg,
		Requests: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_http_requests_total",
				Help: "Total number of HTTP requests",
			},
			[]string{"method", "status"},
		),
		RequestDuration: f.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "folio_http_request_duration_seconds",
				Help:    "HTTP request duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"method"},
		),
		Events: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_interaction_events_total",
				Help: "Interaction events applied to page sessions",
			},
			[]string{"page", "type", "result"},
		),
		LoadFailures: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_page_load_failures_total",
				Help: "Page data loads that failed",
			},
			[]string{"page"},
		),
		LiveSessions: f.NewGauge(prometheus.GaugeOpts{
			Name: "folio_live_sessions",
			Help: "Open websocket sessions",
		}),
		Builds: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "folio_site_builds_total",
				Help: "Static site builds by outcome",
			},
			[]string{"result"},
		),
	}
}

// Handler serves the registry in the Prometheus text format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.Registry, promhttp.HandlerOpts{Registry: m.Registry})
}

// ObserveRequest records one finished HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, seconds float64) {
	m.Requests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.RequestDuration.WithLabelValues(method).Observe(seconds)
}

// ObserveEvent records one dispatched interaction event.
func (m *Metrics) ObserveEvent(page, eventType string, err error) {
	result := "ok"
	if err != nil {
		result = "error"
	}
	m.Events.WithLabelValues(page, eventType, result).Inc()
}

// ObserveBuild records one site build.
func (m *Metrics) ObserveBuild(err error) {
	if err != nil {
		m.Builds.WithLabelValues("error").Inc()
		return
	}
	m.Builds.WithLabelValues("ok").Inc()
}
