//go:generate mockgen -destination=mocks/mock_model.go -package=mocks survival/internal/models Model

package models

// Model is a loaded classifier. Implementations are read-only after decoding
// and safe for concurrent use.
type Model interface {
	Predict(X [][]float64) []int
	PredictProba(X [][]float64) []float64
	Name() string
}

// threshold is the class boundary every model in this package uses.
const threshold = 0.5

func probaToClass(ps []float64) []int {
	out := make([]int, len(ps))
	for i := range ps {
		if ps[i] >= threshold {
			out[i] = 1
		}
	}
	return out
}
