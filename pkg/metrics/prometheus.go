// Package metrics provides Prometheus metrics for the rinkrank service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns the Prometheus instruments for one service instance.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Catalog metrics.
	catalogEvents       prometheus.Gauge
	catalogTeams        prometheus.Gauge
	catalogLoadDuration prometheus.Histogram

	// Computation metrics.
	computationRuns     prometheus.Counter
	computationDuration prometheus.Histogram
	supereventsBuilt    prometheus.Gauge
	yearsEvaluated      prometheus.Gauge
	problems            *prometheus.CounterVec

	// Series store metrics.
	storeYears        prometheus.Gauge
	storeEntries      prometheus.Gauge
	storeQueryLatency prometheus.Histogram

	// HTTP metrics.
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// Global manager on a custom registry, so the scrape surface carries
// only rinkrank instruments.
var (
	customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // singleton registry
	globalManager  *Manager                   //nolint:gochecknoglobals // singleton manager
)

func init() { //nolint:gochecknoinits // global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a manager and registers its instruments.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "rinkrank",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initialize()
	return m
}

func (m *Manager) initialize() {
	auto := promauto.With(m.registry)

	m.catalogEvents = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_events",
		Help:      "Number of events in the loaded catalog",
	})

	m.catalogTeams = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_teams",
		Help:      "Number of team identities after alias resolution",
	})

	m.catalogLoadDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "catalog_load_duration_seconds",
		Help:      "Catalog load and validation duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.computationRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "computation_runs_total",
		Help:      "Total number of full series computations",
	})

	m.computationDuration = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "computation_duration_seconds",
		Help:      "Full series computation duration in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.supereventsBuilt = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "superevents_built",
		Help:      "Superevents built from the catalog in the last run",
	})

	m.yearsEvaluated = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "years_evaluated",
		Help:      "Evaluation years covered by the last run",
	})

	m.problems = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "problems_total",
			Help:      "Data problems flagged during computation, by stage",
		},
		[]string{"stage"},
	)

	m.storeYears = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_years",
		Help:      "Years held by the series store",
	})

	m.storeEntries = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_entries",
		Help:      "Ranking entries held by the series store",
	})

	m.storeQueryLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "store_query_latency_seconds",
		Help:      "Series store query latency in seconds",
		Buckets:   m.histogramBuckets,
	})

	m.httpRequests = auto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_requests_total",
			Help:      "HTTP requests by endpoint, method, and status code",
		},
		[]string{"endpoint", "method", "status_code"},
	)

	m.httpRequestDuration = auto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: m.namespace,
			Subsystem: m.subsystem,
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request duration in seconds",
			Buckets:   m.histogramBuckets,
		},
		[]string{"endpoint", "method", "status_code"},
	)
}

// UpdateCatalogSize sets the loaded catalog gauges.
func UpdateCatalogSize(events, teams int) {
	globalManager.catalogEvents.Set(float64(events))
	globalManager.catalogTeams.Set(float64(teams))
}

// RecordCatalogLoad records a catalog load duration in seconds.
func RecordCatalogLoad(seconds float64) {
	globalManager.catalogLoadDuration.Observe(seconds)
}

// RecordComputation records one full computation and its duration.
func RecordComputation(seconds float64) {
	globalManager.computationRuns.Inc()
	globalManager.computationDuration.Observe(seconds)
}

// UpdateSupereventsBuilt sets the superevent count of the last run.
func UpdateSupereventsBuilt(count int) {
	globalManager.supereventsBuilt.Set(float64(count))
}

// UpdateYearsEvaluated sets the evaluation-year count of the last run.
func UpdateYearsEvaluated(count int) {
	globalManager.yearsEvaluated.Set(float64(count))
}

// RecordProblem counts a flagged data problem by pipeline stage.
func RecordProblem(stage string) {
	globalManager.problems.WithLabelValues(stage).Inc()
}

// UpdateStoreSize sets the series store gauges.
func UpdateStoreSize(years, entries int) {
	globalManager.storeYears.Set(float64(years))
	globalManager.storeEntries.Set(float64(entries))
}

// RecordStoreQueryLatency records a store query duration in seconds.
func RecordStoreQueryLatency(seconds float64) {
	globalManager.storeQueryLatency.Observe(seconds)
}

// RecordHTTPRequest counts an HTTP request.
func RecordHTTPRequest(endpoint, method, statusCode string) {
	globalManager.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

// RecordHTTPRequestDuration records an HTTP request duration in seconds.
func RecordHTTPRequestDuration(endpoint, method, statusCode string, seconds float64) {
	globalManager.httpRequestDuration.WithLabelValues(endpoint, method, statusCode).Observe(seconds)
}

// GetRegistry returns the registry backing the global manager, for the
// metrics endpoint.
func GetRegistry() *prometheus.Registry {
	return customRegistry
}
