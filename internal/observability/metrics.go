package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters and histograms for head-loss
// computations.
type Metrics struct {
	Computations        prometheus.Counter
	ReynoldsRangeAborts prometheus.Counter
	ComputationDuration prometheus.Histogram

	// Per-correlation metrics.
	ModelEvaluations *prometheus.CounterVec // labels: model={serghides,fang,bnt}
}

// NewMetrics creates and registers all calculator metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := &Metrics{
		Computations: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headloss",
			Name:      "computations_total",
			Help:      "Total completed head-loss computations.",
		}),
		ReynoldsRangeAborts: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "headloss",
			Name:      "reynolds_range_aborts_total",
			Help:      "Computations aborted because the Reynolds number was at or below 2500.",
		}),
		ComputationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "headloss",
			Name:      "computation_duration_seconds",
			Help:      "Duration of a full head-loss computation.",
			Buckets:   []float64{0.000001, 0.00001, 0.0001, 0.001, 0.01, 0.1},
		}),
		ModelEvaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "headloss",
			Name:      "model_evaluations_total",
			Help:      "Friction-factor evaluations by correlation.",
		}, []string{"model"}),
	}

	prometheus.MustRegister(
		m.Computations,
		m.ReynoldsRangeAborts,
		m.ComputationDuration,
		m.ModelEvaluations,
	)

	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return &Metrics{
		Computations:        prometheus.NewCounter(prometheus.CounterOpts{Namespace: "headloss", Name: "computations_total"}),
		ReynoldsRangeAborts: prometheus.NewCounter(prometheus.CounterOpts{Namespace: "headloss", Name: "reynolds_range_aborts_total"}),
		ComputationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{Namespace: "headloss", Name: "computation_duration_seconds"}),
		ModelEvaluations:    prometheus.NewCounterVec(prometheus.CounterOpts{Namespace: "headloss", Name: "model_evaluations_total"}, []string{"model"}),
	}
}
