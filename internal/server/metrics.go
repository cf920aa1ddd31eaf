// Package server exposes process metrics over HTTP in Prometheus format.
// The endpoint is opt-in (--serve) and only lives for the duration of a
// generation run.
package server

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Metrics bundles the Prometheus collectors for sequence generation.
type Metrics struct {
	registry *prometheus.Registry
	handler  http.Handler

	generationsTotal   prometheus.Counter
	termsTotal         prometheus.Counter
	generationDuration prometheus.Histogram
	activeGenerations  prometheus.Gauge
}

// NewMetrics creates a Metrics instance with its own registry, including
// the standard Go runtime and process collectors.
func NewMetrics() *Metrics {
	registry := prometheus.NewRegistry()

	m := &Metrics{
		registry: registry,
		generationsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibseq_generations_total",
			Help: "Total number of sequence generations performed.",
		}),
		termsTotal: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "fibseq_terms_generated_total",
			Help: "Total number of Fibonacci terms generated.",
		}),
		generationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Name:    "fibseq_generation_duration_seconds",
			Help:    "Wall-clock duration of sequence generations.",
			Buckets: prometheus.ExponentialBuckets(1e-6, 10, 8),
		}),
		activeGenerations: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "fibseq_active_generations",
			Help: "Number of generations currently in progress.",
		}),
	}

	registry.MustRegister(
		m.generationsTotal,
		m.termsTotal,
		m.generationDuration,
		m.activeGenerations,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	m.handler = promhttp.HandlerFor(registry, promhttp.HandlerOpts{})
	return m
}

// IncrementActiveGenerations records the start of a generation.
func (m *Metrics) IncrementActiveGenerations() {
	m.activeGenerations.Inc()
}

// DecrementActiveGenerations records the end of a generation.
func (m *Metrics) DecrementActiveGenerations() {
	m.activeGenerations.Dec()
}

// ObserveGeneration records a completed generation of n terms that took
// the given duration.
func (m *Metrics) ObserveGeneration(n int, duration time.Duration) {
	m.generationsTotal.Inc()
	m.termsTotal.Add(float64(n))
	m.generationDuration.Observe(duration.Seconds())
}

// WritePrometheus serves the metrics in Prometheus exposition format.
func (m *Metrics) WritePrometheus(w http.ResponseWriter, r *http.Request) {
	m.handler.ServeHTTP(w, r)
}
