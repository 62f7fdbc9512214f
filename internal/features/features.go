package features

import (
	"fmt"
	"math"

	"survival/internal/data"
)

// Columns is the order the model was trained on.
var Columns = []string{"Pclass", "Sex", "Age", "SibSp", "Parch", "Fare", "Embarked"}

// Count is the width of every feature vector.
const Count = 7

type Vector []float64

// ValidationError reports a feature vector the model cannot accept.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string { return "invalid features: " + e.Reason }

// FromSlice checks width and finiteness and returns a copy of raw.
func FromSlice(raw []float64) (Vector, error) {
	if len(raw) != Count {
		return nil, &ValidationError{Reason: fmt.Sprintf("expected %d values (%v), got %d", Count, Columns, len(raw))}
	}
	vec := make(Vector, Count)
	for i, v := range raw {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return nil, &ValidationError{Reason: fmt.Sprintf("%s is not a finite number", Columns[i])}
		}
		vec[i] = v
	}
	return vec, nil
}

// Passenger re-attaches the column names.
func (v Vector) Passenger() data.Passenger {
	return data.Passenger{
		Pclass:   v[0],
		Sex:      v[1],
		Age:      v[2],
		SibSp:    v[3],
		Parch:    v[4],
		Fare:     v[5],
		Embarked: v[6],
	}
}
