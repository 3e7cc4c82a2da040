// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package metrics exposes Prometheus counters for suggestion queries and
// discovery runs.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics owns a private registry so CLI runs and tests never collide with
// the global one.
type Metrics struct {
	Registry *prometheus.Registry

	queries   *prometheus.CounterVec
	latency   *prometheus.HistogramVec
	runs      *prometheus.CounterVec
	keywords  *prometheus.HistogramVec
	discovery *prometheus.HistogramVec
}

// New creates and registers all collectors.
func New() *Metrics {
	m := &Metrics{
		Registry: prometheus.NewRegistry(),
		queries: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keyword_discovery_queries_total",
			Help: "Suggestion queries by service and outcome",
		}, []string{"service", "outcome"}),
		latency: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keyword_discovery_query_duration_seconds",
			Help:    "Suggestion query latency by service",
			Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
		}, []string{"service"}),
		runs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "keyword_discovery_runs_total",
			Help: "Completed discovery runs by service",
		}, []string{"service"}),
		keywords: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keyword_discovery_kept_keywords",
			Help:    "Filtered keywords per run",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}, []string{"service"}),
		discovery: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "keyword_discovery_discovered_terms",
			Help:    "Deduplicated suggestions per run before filtering",
			Buckets: prometheus.ExponentialBuckets(1, 4, 6),
		}, []string{"service"}),
	}
	m.Registry.MustRegister(m.queries, m.latency, m.runs, m.keywords, m.discovery)
	return m
}

// RecordQuery counts one suggestion query. A nil receiver is a no-op.
func (m *Metrics) RecordQuery(service, outcome string, elapsed time.Duration) {
	if m == nil {
		return
	}
	m.queries.WithLabelValues(service, outcome).Inc()
	m.latency.WithLabelValues(service).Observe(elapsed.Seconds())
}

// RecordRun counts a finished run with its raw and filtered sizes.
func (m *Metrics) RecordRun(service string, discovered, kept int) {
	if m == nil {
		return
	}
	m.runs.WithLabelValues(service).Inc()
	m.discovery.WithLabelValues(service).Observe(float64(discovered))
	m.keywords.WithLabelValues(service).Observe(float64(kept))
}

// WriteTextfile writes the current values in Prometheus text format, for
// node_exporter's textfile collector.
func (m *Metrics) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, m.Registry)
}
