package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog/log"
)

var Observer = New()

type Metrics struct {
	registry   *prometheus.Registry
	prometheus Prometheus
}

// New creates a metrics set on its own registry.
func New() *Metrics {
	m := &Metrics{
		registry:   prometheus.NewRegistry(),
		prometheus: NewPrometheusMetrics(),
	}
	m.registry.MustRegister(m.prometheus.collectors()...)
	return m
}

// Figure counts a rendered figure.
func (m *Metrics) Figure(visualization string) {
	m.prometheus.Figures.WithLabelValues(visualization).Inc()
}

// File counts a written image file.
func (m *Metrics) File(visualization, format string) {
	m.prometheus.Files.WithLabelValues(visualization, format).Inc()
}

// Consumed counts deleted inputs.
func (m *Metrics) Consumed(visualization string, count int) {
	m.prometheus.Consumed.WithLabelValues(visualization).Add(float64(count))
}

// Failure counts an aborted run.
func (m *Metrics) Failure(visualization string) {
	m.prometheus.Failures.WithLabelValues(visualization).Inc()
}

// Observe records the duration of a run started at the given time.
func (m *Metrics) Observe(visualization string, start time.Time) {
	m.prometheus.Duration.WithLabelValues(visualization).Observe(time.Since(start).Seconds())
}

// Gather exposes the registry, mostly for inspection.
func (m *Metrics) Gather() prometheus.Gatherer {
	return m.registry
}

// WriteTo writes all metrics to the given path in the text exposition format,
// ready for a node exporter textfile collector.
func (m *Metrics) WriteTo(path string) error {
	err := prometheus.WriteToTextfile(path, m.registry)
	if err != nil {
		return fmt.Errorf("could not write metrics to '%s': %w", path, err)
	}
	log.Debug().Str("file", path).Msg("wrote metrics")
	return nil
}
