package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus counters, histograms, and gauges for risk evaluations.
type Metrics struct {
	Evaluations        *prometheus.CounterVec // labels: tier={Fatal,Serious,Slight}
	EvaluationErrors   *prometheus.CounterVec // labels: kind={validation,schema,classification}
	EvaluationDuration prometheus.Histogram
	Confidence         prometheus.Histogram
	ArtifactsLoaded    prometheus.Gauge
}

// NewMetrics creates and registers all evaluation metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	return NewMetricsWith(prometheus.DefaultRegisterer)
}

// NewMetricsWith creates all evaluation metrics and registers them with reg.
func NewMetricsWith(reg prometheus.Registerer) *Metrics {
	m := newMetrics()
	reg.MustRegister(
		m.Evaluations,
		m.EvaluationErrors,
		m.EvaluationDuration,
		m.Confidence,
		m.ArtifactsLoaded,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics to avoid
// "already registered" panics when called from multiple tests.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		Evaluations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saferoute",
			Name:      "evaluations_total",
			Help:      "Completed risk evaluations by reported tier.",
		}, []string{"tier"}),
		EvaluationErrors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "saferoute",
			Name:      "evaluation_errors_total",
			Help:      "Failed risk evaluations by error kind.",
		}, []string{"kind"}),
		EvaluationDuration: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "saferoute",
			Name:      "evaluation_duration_seconds",
			Help:      "Duration of feature assembly plus classification.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5},
		}),
		Confidence: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: "saferoute",
			Name:      "evaluation_confidence",
			Help:      "Reported confidence (largest class probability) per evaluation.",
			Buckets:   []float64{0.4, 0.5, 0.6, 0.7, 0.8, 0.9, 0.95, 1},
		}),
		ArtifactsLoaded: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "saferoute",
			Name:      "artifacts_loaded",
			Help:      "1 once the model and catalog artifacts are loaded, 0 otherwise.",
		}),
	}
}
