package models

import "fmt"

type DTNode struct {
	Feature   int
	Threshold float64
	Left      *DTNode
	Right     *DTNode
	IsLeaf    bool
	ProbaLeaf float64
}

// DecisionTree is a binary tree over feature thresholds; leaves carry the
// positive-class probability.
type DecisionTree struct {
	MaxDepth int
	Root     *DTNode
}

func (dt *DecisionTree) Name() string { return "DecisionTree" }

func (dt *DecisionTree) Predict(X [][]float64) []int {
	return probaToClass(dt.PredictProba(X))
}

func (dt *DecisionTree) PredictProba(X [][]float64) []float64 {
	out := make([]float64, len(X))
	for i := range X {
		out[i] = dt.predictProbaOne(X[i])
	}
	return out
}

func (dt *DecisionTree) predictProbaOne(x []float64) float64 {
	n := dt.Root
	if n == nil {
		return threshold
	}
	for !n.IsLeaf {
		if x[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
		if n == nil {
			return threshold
		}
	}
	return n.ProbaLeaf
}

// Validate checks the tree is complete and only splits on features below nFeatures.
func (dt *DecisionTree) Validate(nFeatures int) error {
	if dt.Root == nil {
		return fmt.Errorf("decision tree has no root")
	}
	return validateNode(dt.Root, nFeatures, 0)
}

func validateNode(n *DTNode, nFeatures, depth int) error {
	if n.IsLeaf {
		if !(n.ProbaLeaf >= 0 && n.ProbaLeaf <= 1) {
			return fmt.Errorf("leaf at depth %d has probability %v outside [0,1]", depth, n.ProbaLeaf)
		}
		return nil
	}
	if n.Feature < 0 || n.Feature >= nFeatures {
		return fmt.Errorf("node at depth %d splits on feature %d, model input has %d", depth, n.Feature, nFeatures)
	}
	if n.Left == nil || n.Right == nil {
		return fmt.Errorf("internal node at depth %d is missing a child", depth)
	}
	if err := validateNode(n.Left, nFeatures, depth+1); err != nil {
		return err
	}
	return validateNode(n.Right, nFeatures, depth+1)
}
