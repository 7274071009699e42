package inference

import (
	"fmt"
	"math"
)

// Classifier scores an encoded row. PredictProba returns [P(class 0), P(class 1)].
type Classifier interface {
	PredictProba(x []float64) ([2]float64, error)
	NumFeatures() int
}

// LogisticModel is a fitted binary logistic regression.
type LogisticModel struct {
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
}

func (m *LogisticModel) NumFeatures() int { return len(m.Coefficients) }

func (m *LogisticModel) PredictProba(x []float64) ([2]float64, error) {
	if len(x) != len(m.Coefficients) {
		return [2]float64{}, fmt.Errorf("%w: model expects %d features, got %d", ErrBackend, len(m.Coefficients), len(x))
	}
	z := m.Intercept
	for i, c := range m.Coefficients {
		z += c * x[i]
	}
	p := sigmoid(z)
	if math.IsNaN(p) {
		return [2]float64{}, fmt.Errorf("%w: model produced NaN", ErrBackend)
	}
	return [2]float64{1 - p, p}, nil
}

func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
