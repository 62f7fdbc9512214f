package models

import "fmt"

type RandomForest struct {
	NEstimators int
	MaxFeatures int
	Trees       []*DecisionTree
}

func (rf *RandomForest) Name() string { return "RandomForest" }

func (rf *RandomForest) Predict(X [][]float64) []int {
	return probaToClass(rf.PredictProba(X))
}

func (rf *RandomForest) PredictProba(X [][]float64) []float64 {
	return averageProba(rf.Trees, X)
}

func (rf *RandomForest) Validate(nFeatures int) error {
	return validateTrees("random forest", rf.Trees, nFeatures)
}

// averageProba is the mean of every tree's probability, 0.5 with no trees.
func averageProba(trees []*DecisionTree, X [][]float64) []float64 {
	n := len(X)
	out := make([]float64, n)
	if len(trees) == 0 {
		for i := range out {
			out[i] = threshold
		}
		return out
	}
	for _, dt := range trees {
		p := dt.PredictProba(X)
		for i := 0; i < n; i++ {
			out[i] += p[i]
		}
	}
	m := float64(len(trees))
	for i := 0; i < n; i++ {
		out[i] /= m
	}
	return out
}

func validateTrees(kind string, trees []*DecisionTree, nFeatures int) error {
	if len(trees) == 0 {
		return fmt.Errorf("%s has no trees", kind)
	}
	for i, dt := range trees {
		if dt == nil {
			return fmt.Errorf("%s tree %d is nil", kind, i)
		}
		if err := dt.Validate(nFeatures); err != nil {
			return fmt.Errorf("%s tree %d: %w", kind, i, err)
		}
	}
	return nil
}
