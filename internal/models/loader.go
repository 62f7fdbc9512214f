package models

import (
	"encoding/gob"
	"fmt"
	"io"
	"strings"
)

// Algorithms accepted by Decode.
const (
	AlgoDecisionTree     = "dt"
	AlgoRandomForest     = "rf"
	AlgoBagging          = "bagging"
	AlgoGradientBoosting = "gb"
)

type validator interface {
	Validate(nFeatures int) error
}

// Decode reads one gob-encoded model of the given algorithm from r and
// validates it against an input of nFeatures columns.
func Decode(algo string, r io.Reader, nFeatures int) (Model, error) {
	var m Model
	switch NormalizeAlgo(algo) {
	case AlgoDecisionTree:
		m = &DecisionTree{}
	case AlgoRandomForest:
		m = &RandomForest{}
	case AlgoBagging:
		m = &Bagging{}
	case AlgoGradientBoosting:
		m = &GradientBoosting{}
	default:
		return nil, fmt.Errorf("unsupported model algorithm %q", algo)
	}
	if err := gob.NewDecoder(r).Decode(m); err != nil {
		return nil, fmt.Errorf("decode %s model: %w", m.Name(), err)
	}
	if v, ok := m.(validator); ok {
		if err := v.Validate(nFeatures); err != nil {
			return nil, fmt.Errorf("invalid %s model: %w", m.Name(), err)
		}
	}
	return m, nil
}

// NormalizeAlgo lower-cases algo and maps the empty name to AlgoDecisionTree.
func NormalizeAlgo(algo string) string {
	algo = strings.ToLower(strings.TrimSpace(algo))
	if algo == "" {
		return AlgoDecisionTree
	}
	return algo
}

// Encode writes m in the format Decode reads.
func Encode(w io.Writer, m Model) error {
	return gob.NewEncoder(w).Encode(m)
}
