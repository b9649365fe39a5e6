package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics holds Prometheus counters and gauges for the spawn schedule service.
type Metrics struct {
	registry                *prometheus.Registry
	requestsTotal           prometheus.Counter
	schedulesGeneratedTotal prometheus.Counter
	spawnEventsTotal        prometheus.Counter
	validationFailuresTotal prometheus.Counter
	markersParsedTotal      prometheus.Counter
	storedSchedules         prometheus.Gauge
	errorsTotal             prometheus.Counter
}

// New creates and registers Prometheus metrics for the service.
func New() *Metrics {
	registry := prometheus.NewRegistry()

	requestsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spawn_requests_total",
		Help: "Total number of HTTP requests received",
	})
	schedulesGeneratedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spawn_schedules_generated_total",
		Help: "Total number of schedules successfully generated",
	})
	spawnEventsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spawn_events_generated_total",
		Help: "Total number of spawn events across generated schedules",
	})
	validationFailuresTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spawn_validation_failures_total",
		Help: "Total number of plans rejected because a stage's waves did not sum to its enemy count",
	})
	markersParsedTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spawn_markers_parsed_total",
		Help: "Total number of marker texts successfully parsed",
	})
	storedSchedules := prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "spawn_stored_schedules",
		Help: "Number of schedules currently held by the service",
	})
	errorsTotal := prometheus.NewCounter(prometheus.CounterOpts{
		Name: "spawn_errors_total",
		Help: "Total number of HTTP responses with error status (4xx or 5xx)",
	})

	registry.MustRegister(
		requestsTotal,
		schedulesGeneratedTotal,
		spawnEventsTotal,
		validationFailuresTotal,
		markersParsedTotal,
		storedSchedules,
		errorsTotal,
	)

	return &Metrics{
		registry:                registry,
		requestsTotal:           requestsTotal,
		schedulesGeneratedTotal: schedulesGeneratedTotal,
		spawnEventsTotal:        spawnEventsTotal,
		validationFailuresTotal: validationFailuresTotal,
		markersParsedTotal:      markersParsedTotal,
		storedSchedules:         storedSchedules,
		errorsTotal:             errorsTotal,
	}
}

// IncRequests increments the total request counter.
func (m *Metrics) IncRequests() {
	m.requestsTotal.Inc()
}

// ObserveSchedule records one generated schedule with n spawn events.
func (m *Metrics) ObserveSchedule(n int) {
	m.schedulesGeneratedTotal.Inc()
	m.spawnEventsTotal.Add(float64(n))
}

// IncValidationFailures increments the wave-sum mismatch counter.
func (m *Metrics) IncValidationFailures() {
	m.validationFailuresTotal.Inc()
}

// IncMarkersParsed increments the parsed marker text counter.
func (m *Metrics) IncMarkersParsed() {
	m.markersParsedTotal.Inc()
}

// SetStoredSchedules sets the stored schedules gauge.
func (m *Metrics) SetStoredSchedules(n int) {
	m.storedSchedules.Set(float64(n))
}

// IncErrors increments the errors counter.
func (m *Metrics) IncErrors() {
	m.errorsTotal.Inc()
}

// Handler returns an http.Handler that serves Prometheus metrics.
// updateGauges is called before each scrape to refresh gauge values.
func (m *Metrics) Handler(updateGauges func()) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if updateGauges != nil {
			updateGauges()
		}
		promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{}).ServeHTTP(w, r)
	})
}
