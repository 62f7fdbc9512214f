package models

import (
	"fmt"
	"math"
)

// Stump is one boosting round: a single split with a value per side.
type Stump struct {
	Feature   int
	Threshold float64
	LeftVal   float64
	RightVal  float64
}

// GradientBoosting sums LearningRate-scaled stumps over Init in log-odds space.
type GradientBoosting struct {
	LearningRate float64
	Init         float64
	Trees        []Stump
}

func (gb *GradientBoosting) Name() string { return "GradientBoosting" }

func sigmoid(z float64) float64 { return 1.0 / (1.0 + math.Exp(-z)) }

func (gb *GradientBoosting) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		f := gb.Init
		for _, t := range gb.Trees {
			inc := t.LeftVal
			if X[i][t.Feature] > t.Threshold {
				inc = t.RightVal
			}
			f += gb.LearningRate * inc
		}
		out[i] = sigmoid(f)
	}
	return out
}

func (gb *GradientBoosting) Predict(X [][]float64) []int {
	return probaToClass(gb.PredictProba(X))
}

func (gb *GradientBoosting) Validate(nFeatures int) error {
	if len(gb.Trees) == 0 {
		return fmt.Errorf("gradient boosting has no stumps")
	}
	if !(gb.LearningRate > 0) || math.IsInf(gb.LearningRate, 0) {
		return fmt.Errorf("gradient boosting learning rate %v must be positive", gb.LearningRate)
	}
	if !finite(gb.Init) {
		return fmt.Errorf("gradient boosting init %v is not finite", gb.Init)
	}
	for i, t := range gb.Trees {
		if t.Feature < 0 || t.Feature >= nFeatures {
			return fmt.Errorf("stump %d splits on feature %d, model input has %d", i, t.Feature, nFeatures)
		}
		if !finite(t.Threshold) || !finite(t.LeftVal) || !finite(t.RightVal) {
			return fmt.Errorf("stump %d has a non-finite value", i)
		}
	}
	return nil
}

func finite(v float64) bool { return !math.IsNaN(v) && !math.IsInf(v, 0) }
