package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Error kinds used as the "kind" label.
const (
	KindValidation = "validation"
	KindInference  = "inference"
)

type Metrics struct {
	// Predictions - successful predictions by result label
	Predictions *prometheus.CounterVec
	// Errors - rejected predictions by error kind
	Errors *prometheus.CounterVec
	// Duration - model call latency
	Duration prometheus.Histogram
	// ModelInfo - 1 for the loaded model
	ModelInfo *prometheus.GaugeVec
}

// New registers the service collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Predictions: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "survival_predictions_total",
				Help: "Total number of successful predictions",
			},
			[]string{"result"},
		),
		Errors: f.NewCounterVec(
			prometheus.CounterOpts{
				Name: "survival_prediction_errors_total",
				Help: "Total number of failed prediction requests",
			},
			[]string{"kind"},
		),
		Duration: f.NewHistogram(
			prometheus.HistogramOpts{
				Name:    "survival_prediction_duration_seconds",
				Help:    "Model inference duration in seconds",
				Buckets: prometheus.DefBuckets,
			},
		),
		ModelInfo: f.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "survival_model_info",
				Help: "Loaded model, always 1",
			},
			[]string{"algo", "name"},
		),
	}
}
