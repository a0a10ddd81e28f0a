// Package metrics provides Prometheus metrics for the coachnet engine.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Manager owns all Prometheus metrics for the staff recommendation pipeline.
type Manager struct {
	namespace        string
	subsystem        string
	histogramBuckets []float64
	registry         prometheus.Registerer

	// Ingestion metrics
	recordsIngested prometheus.Counter
	filesIngested   prometheus.Counter
	filesSkipped    prometheus.Counter

	// Graph metrics
	graphNodes prometheus.Gauge
	graphEdges prometheus.Gauge

	// Recommendation metrics
	runsCompleted     prometheus.Counter
	runsFailed        prometheus.Counter
	candidatesScored  prometheus.Counter
	positionsFilled   prometheus.Counter
	positionsUnfilled prometheus.Counter

	// Stage timing
	stageDuration *prometheus.HistogramVec
}

// Global metrics manager instance.
var globalManager *Manager //nolint:gochecknoglobals // intentional global for singleton metrics manager

// Custom registry to avoid default Go metrics.
var customRegistry = prometheus.NewRegistry() //nolint:gochecknoglobals // intentional global for metrics registry

func init() { //nolint:gochecknoinits // intentional init for global metrics setup
	globalManager = NewManager(WithRegistry(customRegistry))
}

// NewManager creates a new metrics manager with default configuration.
func NewManager(opts ...Option) *Manager {
	m := &Manager{
		namespace:        "coachnet",
		subsystem:        "pipeline",
		histogramBuckets: prometheus.DefBuckets,
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

	m.recordsIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "staff_records_ingested_total",
		Help:      "Total number of staff records ingested",
	})

	m.filesIngested = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_ingested_total",
		Help:      "Total number of input files ingested successfully",
	})

	m.filesSkipped = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "files_skipped_total",
		Help:      "Total number of input files skipped due to errors",
	})

	m.graphNodes = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "graph_nodes",
		Help:      "Number of coach nodes in the co-staff graph",
	})

	m.graphEdges = auto.NewGauge(prometheus.GaugeOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "graph_edges",
		Help:      "Number of relationship edges in the co-staff graph",
	})

	m.runsCompleted = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_runs_completed_total",
		Help:      "Total number of per-target recommendation runs completed",
	})

	m.runsFailed = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "recommendation_runs_failed_total",
		Help:      "Total number of per-target recommendation runs that failed",
	})

	m.candidatesScored = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "candidates_scored_total",
		Help:      "Total number of candidate connection scores computed",
	})

	m.positionsFilled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "positions_filled_total",
		Help:      "Total number of open positions with at least one candidate",
	})

	m.positionsUnfilled = auto.NewCounter(prometheus.CounterOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "positions_unfilled_total",
		Help:      "Total number of open positions with no eligible candidate",
	})

	m.stageDuration = auto.NewHistogramVec(prometheus.HistogramOpts{
		Namespace: m.namespace,
		Subsystem: m.subsystem,
		Name:      "stage_duration_seconds",
		Help:      "Histogram of pipeline stage durations in seconds",
		Buckets:   m.histogramBuckets,
	}, []string{"stage"})
}

// Registry returns the registry all engine metrics are registered on.
func Registry() *prometheus.Registry { return customRegistry }

// Package-level helpers operating on the global manager.

func RecordRecordsIngested(n int)      { globalManager.recordsIngested.Add(float64(n)) }
func RecordFileIngested()              { globalManager.filesIngested.Inc() }
func RecordFileSkipped()               { globalManager.filesSkipped.Inc() }
func UpdateGraphNodes(n int)           { globalManager.graphNodes.Set(float64(n)) }
func UpdateGraphEdges(n int)           { globalManager.graphEdges.Set(float64(n)) }
func RecordRunCompleted()              { globalManager.runsCompleted.Inc() }
func RecordRunFailed()                 { globalManager.runsFailed.Inc() }
func RecordCandidateScored()           { globalManager.candidatesScored.Inc() }
func RecordPositionFilled()            { globalManager.positionsFilled.Inc() }
func RecordPositionUnfilled()          { globalManager.positionsUnfilled.Inc() }
func ObserveStageDuration(stage string, seconds float64) {
	globalManager.stageDuration.WithLabelValues(stage).Observe(seconds)
}
