// Package prom implements the observability hooks with Prometheus
// collectors.
//
// The CLI is a batch tool with no HTTP listener, so metrics are written to a
// node_exporter textfile with [Metrics.WriteTextfile] when a command ends.
package prom

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/matzehuels/dotstyle/pkg/observability"
)

// Metrics collects codec and cache events.
type Metrics struct {
	registry *prometheus.Registry

	operations *prometheus.CounterVec
	errors     *prometheus.CounterVec
	duration   *prometheus.HistogramVec
	warnings   *prometheus.CounterVec
	graphs     prometheus.Counter
	elements   *prometheus.CounterVec
	cache      *prometheus.CounterVec
	cacheBytes prometheus.Counter
}

var (
	_ observability.CodecHooks = (*Metrics)(nil)
	_ observability.CacheHooks = (*Metrics)(nil)
)

// New creates a Metrics value with its own registry.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dotstyle_operations_total",
			Help: "Number of import, export and render operations.",
		}, []string{"operation"}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dotstyle_errors_total",
			Help: "Number of operations that failed.",
		}, []string{"operation"}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "dotstyle_operation_duration_seconds",
			Help:    "Duration of import, export and render operations.",
			Buckets: prometheus.ExponentialBuckets(0.001, 4, 8),
		}, []string{"operation"}),
		warnings: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dotstyle_warnings_total",
			Help: "Number of warnings reported by import and export.",
		}, []string{"operation"}),
		graphs: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dotstyle_graphs_imported_total",
			Help: "Number of graphs imported from DOT.",
		}),
		elements: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dotstyle_elements_exported_total",
			Help: "Number of nodes and edges exported to DOT.",
		}, []string{"kind"}),
		cache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "dotstyle_cache_events_total",
			Help: "Number of cache lookups and writes.",
		}, []string{"key_type", "event"}),
		cacheBytes: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "dotstyle_cache_written_bytes_total",
			Help: "Bytes written to the cache.",
		}),
	}
	m.registry.MustRegister(
		m.operations, m.errors, m.duration, m.warnings,
		m.graphs, m.elements, m.cache, m.cacheBytes,
	)
	return m
}

// Registry returns the registry holding the collectors.
func (m *Metrics) Registry() *prometheus.Registry { return m.registry }

// WriteTextfile writes the current metrics to path in the text exposition
// format.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.registry)
}

func (m *Metrics) start(op string) {
	m.operations.WithLabelValues(op).Inc()
}

func (m *Metrics) complete(op string, d time.Duration, err error) {
	m.duration.WithLabelValues(op).Observe(d.Seconds())
	if err != nil {
		m.errors.WithLabelValues(op).Inc()
	}
}

func (m *Metrics) OnImportStart(context.Context, int) { m.start("import") }

func (m *Metrics) OnImportComplete(_ context.Context, graphs, warnings int, d time.Duration, err error) {
	m.complete("import", d, err)
	m.graphs.Add(float64(graphs))
	m.warnings.WithLabelValues("import").Add(float64(warnings))
}

func (m *Metrics) OnExportStart(_ context.Context, nodes, edges int) {
	m.start("export")
	m.elements.WithLabelValues("node").Add(float64(nodes))
	m.elements.WithLabelValues("edge").Add(float64(edges))
}

func (m *Metrics) OnExportComplete(_ context.Context, warnings int, d time.Duration, err error) {
	m.complete("export", d, err)
	m.warnings.WithLabelValues("export").Add(float64(warnings))
}

func (m *Metrics) OnRenderStart(context.Context, string) { m.start("render") }

func (m *Metrics) OnRenderComplete(_ context.Context, _ string, d time.Duration, err error) {
	m.complete("render", d, err)
}

func (m *Metrics) OnCacheHit(_ context.Context, keyType string) {
	m.cache.WithLabelValues(keyType, "hit").Inc()
}

func (m *Metrics) OnCacheMiss(_ context.Context, keyType string) {
	m.cache.WithLabelValues(keyType, "miss").Inc()
}

func (m *Metrics) OnCacheSet(_ context.Context, keyType string, size int) {
	m.cache.WithLabelValues(keyType, "set").Inc()
	m.cacheBytes.Add(float64(size))
}
