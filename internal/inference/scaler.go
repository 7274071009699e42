package inference

import (
	"fmt"
	"math"
)

// StandardScaler standardizes each column as (x - mean) / scale.
type StandardScaler struct {
	Mean  []float64 `json:"mean"`
	Scale []float64 `json:"scale"`
}

func (s *StandardScaler) validate() error {
	if len(s.Mean) != len(s.Scale) {
		return fmt.Errorf("scaler has %d means but %d scales", len(s.Mean), len(s.Scale))
	}
	return nil
}

// Width is the number of columns the scaler was fitted on.
func (s *StandardScaler) Width() int { return len(s.Mean) }

// Transform scales x in place. A zero scale leaves the centered value unscaled.
func (s *StandardScaler) Transform(x []float64) error {
	if len(x) != len(s.Mean) {
		return fmt.Errorf("%w: scaler expects %d columns, got %d", ErrBackend, len(s.Mean), len(x))
	}
	for i := range x {
		scale := s.Scale[i]
		if scale == 0 {
			scale = 1
		}
		x[i] = (x[i] - s.Mean[i]) / scale
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			return fmt.Errorf("%w: column %d is not finite after scaling", ErrBackend, i)
		}
	}
	return nil
}
