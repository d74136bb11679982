// Package metrics provides Prometheus metrics for the podium results engine.
package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus collectors for the service.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	enabled          bool
	registry         prometheus.Registerer

	// Upstream snapshot metrics
	snapshotFetches       prometheus.Counter
	snapshotFetchFailures prometheus.Counter
	snapshotParseFailures prometheus.Counter
	snapshotAgeSeconds    prometheus.Gauge

	// Snapshot cache metrics
	cacheHits        prometheus.Counter
	cacheMisses      prometheus.Counter
	cacheStaleServes prometheus.Counter

	// Country resolver metrics
	learnedCodes prometheus.Gauge

	// Standings / matching metrics
	standingsComputations prometheus.Counter
	standingsLatency      prometheus.Histogram
	matcherComparisons    prometheus.Counter
	matcherMatches        prometheus.Counter
	invariantViolations   prometheus.Counter

	// Result finalization metrics
	resultsFinalized prometheus.Counter
	resultsRetracted prometheus.Counter
	pollerRuns       prometheus.Counter
	pollerErrors     prometheus.Counter

	// HTTP metrics
	httpRequests        *prometheus.CounterVec
	httpRequestDuration *prometheus.HistogramVec
}

// NewManager creates a Manager and registers its collectors.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "podium",
		subsystem:        "engine",
		histogramBuckets: prometheus.DefBuckets,
		enabled:          true,
		registry:         prometheus.DefaultRegisterer,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.initializeMetrics()
	return m
}

func (m *Manager) initializeMetrics() {
	auto := promauto.With(m.registry)

	m.snapshotFetches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_fetches_total",
		Help: "Number of upstream snapshot fetch attempts.",
	})
	m.snapshotFetchFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_fetch_failures_total",
		Help: "Number of upstream fetches that failed at the network layer.",
	})
	m.snapshotParseFailures = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_parse_failures_total",
		Help: "Number of fetched pages the snapshot extractor could not parse.",
	})
	m.snapshotAgeSeconds = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_age_seconds",
		Help: "Age of the snapshot currently served from the cache.",
	})

	m.cacheHits = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_cache_hits_total",
		Help: "Snapshot cache lookups answered without a refresh.",
	})
	m.cacheMisses = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_cache_misses_total",
		Help: "Snapshot cache lookups that triggered a refresh.",
	})
	m.cacheStaleServes = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "snapshot_cache_stale_serves_total",
		Help: "Lookups served from an expired entry after a failed refresh.",
	})

	m.learnedCodes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "learned_country_codes",
		Help: "Committee codes learned at runtime from upstream data.",
	})

	m.standingsComputations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "standings_computations_total",
		Help: "Number of category standings computed.",
	})
	m.standingsLatency = auto.NewHistogram(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "standings_latency_ms",
		Help:    "Latency of a single standings computation in milliseconds.",
		Buckets: m.histogramBuckets,
	})
	m.matcherComparisons = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "matcher_comparisons_total",
		Help: "Event name pairs compared by the fuzzy matcher.",
	})
	m.matcherMatches = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "matcher_matches_total",
		Help: "Event name pairs the fuzzy matcher accepted.",
	})
	m.invariantViolations = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "standings_invariant_violations_total",
		Help: "Times completed+remaining exceeded a category's event count.",
	})

	m.resultsFinalized = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "results_finalized_total",
		Help: "Category results saved automatically by the poller.",
	})
	m.resultsRetracted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "results_retracted_total",
		Help: "Premature category results deleted by the poller.",
	})
	m.pollerRuns = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "poller_runs_total",
		Help: "Completed refresh/finalization passes.",
	})
	m.pollerErrors = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "poller_errors_total",
		Help: "Poller passes that ended with an error.",
	})

	m.httpRequests = auto.NewCounterVec(prometheus.CounterOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name: "http_requests_total",
		Help: "HTTP requests by endpoint, method and status code.",
	}, []string{"endpoint", "method", "status_code"})
	m.httpRequestDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace, Subsystem: m.subsystem,
		Name:    "http_request_duration_ms",
		Help:    "HTTP request duration in milliseconds.",
		Buckets: m.histogramBuckets,
	}, []string{"endpoint", "method"})
}

// Manager instance methods.

func (m *Manager) RecordSnapshotFetch()          { m.snapshotFetches.Inc() }
func (m *Manager) RecordSnapshotFetchFailure()   { m.snapshotFetchFailures.Inc() }
func (m *Manager) RecordSnapshotParseFailure()   { m.snapshotParseFailures.Inc() }
func (m *Manager) UpdateSnapshotAge(sec float64) { m.snapshotAgeSeconds.Set(sec) }

func (m *Manager) RecordCacheHit()        { m.cacheHits.Inc() }
func (m *Manager) RecordCacheMiss()       { m.cacheMisses.Inc() }
func (m *Manager) RecordCacheStaleServe() { m.cacheStaleServes.Inc() }

func (m *Manager) UpdateLearnedCodes(n int) { m.learnedCodes.Set(float64(n)) }

func (m *Manager) RecordStandingsComputation()           { m.standingsComputations.Inc() }
func (m *Manager) RecordStandingsLatency(ms float64)     { m.standingsLatency.Observe(ms) }
func (m *Manager) RecordMatcherComparison(matched bool) {
	m.matcherComparisons.Inc()
	if matched {
		m.matcherMatches.Inc()
	}
}
func (m *Manager) RecordInvariantViolation() { m.invariantViolations.Inc() }

func (m *Manager) RecordResultFinalized() { m.resultsFinalized.Inc() }
func (m *Manager) RecordResultRetracted() { m.resultsRetracted.Inc() }
func (m *Manager) RecordPollerRun()       { m.pollerRuns.Inc() }
func (m *Manager) RecordPollerError()     { m.pollerErrors.Inc() }

func (m *Manager) RecordHTTPRequest(endpoint, method, statusCode string) {
	m.httpRequests.WithLabelValues(endpoint, method, statusCode).Inc()
}

func (m *Manager) RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	m.httpRequestDuration.WithLabelValues(endpoint, method).Observe(ms)
}

// Package-level helpers backed by a lazily created default Manager, so call
// sites do not have to thread the Manager through every constructor.

var (
	defaultManager *Manager
	defaultOnce    sync.Once
)

func getDefault() *Manager {
	defaultOnce.Do(func() {
		defaultManager = NewManager()
	})
	return defaultManager
}

func RecordSnapshotFetch()          { getDefault().RecordSnapshotFetch() }
func RecordSnapshotFetchFailure()   { getDefault().RecordSnapshotFetchFailure() }
func RecordSnapshotParseFailure()   { getDefault().RecordSnapshotParseFailure() }
func UpdateSnapshotAge(sec float64) { getDefault().UpdateSnapshotAge(sec) }

func RecordCacheHit()        { getDefault().RecordCacheHit() }
func RecordCacheMiss()       { getDefault().RecordCacheMiss() }
func RecordCacheStaleServe() { getDefault().RecordCacheStaleServe() }

func UpdateLearnedCodes(n int) { getDefault().UpdateLearnedCodes(n) }

func RecordStandingsComputation()          { getDefault().RecordStandingsComputation() }
func RecordStandingsLatency(ms float64)    { getDefault().RecordStandingsLatency(ms) }
func RecordMatcherComparison(matched bool) { getDefault().RecordMatcherComparison(matched) }
func RecordInvariantViolation()            { getDefault().RecordInvariantViolation() }

func RecordResultFinalized() { getDefault().RecordResultFinalized() }
func RecordResultRetracted() { getDefault().RecordResultRetracted() }
func RecordPollerRun()       { getDefault().RecordPollerRun() }
func RecordPollerError()     { getDefault().RecordPollerError() }

func RecordHTTPRequest(endpoint, method, statusCode string) {
	getDefault().RecordHTTPRequest(endpoint, method, statusCode)
}

func RecordHTTPRequestDuration(endpoint, method string, ms float64) {
	getDefault().RecordHTTPRequestDuration(endpoint, method, ms)
}

// Gatherer returns the registry backing the default Manager so the metrics
// endpoint can serve it.
func Gatherer() prometheus.Gatherer {
	if g, ok := getDefault().registry.(prometheus.Gatherer); ok {
		return g
	}
	return prometheus.DefaultGatherer
}
