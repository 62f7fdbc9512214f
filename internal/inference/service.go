// Package inference runs the loaded model on one passenger at a time.
package inference

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"survival/internal/data"
	"survival/internal/features"
	"survival/internal/metrics"
	"survival/internal/models"
)

// InferenceError wraps a failure inside the model call.
type InferenceError struct {
	Err error
}

func (e *InferenceError) Error() string { return "inference failed: " + e.Err.Error() }
func (e *InferenceError) Unwrap() error { return e.Err }

type Service struct {
	model   models.Model
	logger  *zap.Logger
	metrics *metrics.Metrics
}

// New wraps model. m may be nil.
func New(model models.Model, logger *zap.Logger, m *metrics.Metrics) *Service {
	return &Service{model: model, logger: logger, metrics: m}
}

func (s *Service) ModelName() string { return s.model.Name() }

// Predict validates raw, runs the model on it as a single row and labels the class.
func (s *Service) Predict(ctx context.Context, raw []float64) (data.Prediction, error) {
	vec, err := features.FromSlice(raw)
	if err != nil {
		s.countError(metrics.KindValidation)
		return data.Prediction{}, err
	}
	if err := ctx.Err(); err != nil {
		return data.Prediction{}, err
	}
	s.logger.Debug("Received features", zap.Any("passenger", vec.Passenger()))

	start := time.Now()
	class, err := s.classify(vec)
	if s.metrics != nil {
		s.metrics.Duration.Observe(time.Since(start).Seconds())
	}
	if err != nil {
		s.countError(metrics.KindInference)
		return data.Prediction{}, err
	}

	p := data.NewPrediction(class)
	if s.metrics != nil {
		s.metrics.Predictions.WithLabelValues(p.Label).Inc()
	}
	return p, nil
}

func (s *Service) classify(vec features.Vector) (class int, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = &InferenceError{Err: fmt.Errorf("%s: %v", s.model.Name(), r)}
		}
	}()
	out := s.model.Predict([][]float64{vec})
	if len(out) != 1 {
		return 0, &InferenceError{Err: fmt.Errorf("%s returned %d predictions for 1 row", s.model.Name(), len(out))}
	}
	if out[0] != 0 && out[0] != 1 {
		return 0, &InferenceError{Err: fmt.Errorf("%s returned class %d, want 0 or 1", s.model.Name(), out[0])}
	}
	return out[0], nil
}

func (s *Service) countError(kind string) {
	if s.metrics != nil {
		s.metrics.Errors.WithLabelValues(kind).Inc()
	}
}
