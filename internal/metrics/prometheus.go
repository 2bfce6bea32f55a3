package metrics

import "github.com/prometheus/client_golang/prometheus"

const namespace = "mlviz"

type Prometheus struct {
	Figures  *prometheus.CounterVec
	Files    *prometheus.CounterVec
	Consumed *prometheus.CounterVec
	Failures *prometheus.CounterVec
	Duration *prometheus.HistogramVec
}

func NewPrometheusMetrics() Prometheus {
	return Prometheus{
		Figures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "figures_total",
				Help:      "rendered figures",
			}, []string{"visualization"}),
		Files: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "files_total",
				Help:      "written image files",
			}, []string{"visualization", "format"}),
		Consumed: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "consumed_inputs_total",
				Help:      "deleted input files",
			}, []string{"visualization"}),
		Failures: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "failures_total",
				Help:      "aborted runs",
			}, []string{"visualization"}),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "render_seconds",
				Help:      "time to render and export a run",
				Buckets:   prometheus.ExponentialBuckets(0.01, 2, 12),
			}, []string{"visualization"}),
	}
}

func (p Prometheus) collectors() []prometheus.Collector {
	return []prometheus.Collector{p.Figures, p.Files, p.Consumed, p.Failures, p.Duration}
}
