package inference

import (
	"context"
	"fmt"

	"github.com/fightcast/predictor-api/internal/models"
)

// Engine runs the red-perspective and blue-perspective models over a shared encoder and
// scaler. It is immutable and safe for concurrent use.
type Engine struct {
	encoder *OneHotEncoder
	scaler  *StandardScaler
	red     Classifier
	blue    Classifier
}

// NewEngine checks that the encoder, scaler and both models agree on the input width.
func NewEngine(encoder *OneHotEncoder, scaler *StandardScaler, red, blue Classifier) (*Engine, error) {
	width := encoder.Width() + models.FeatureCount
	if scaler.Width() != width {
		return nil, fmt.Errorf("scaler width %d does not match encoded width %d", scaler.Width(), width)
	}
	if red.NumFeatures() != width {
		return nil, fmt.Errorf("red model expects %d features, encoded width is %d", red.NumFeatures(), width)
	}
	if blue.NumFeatures() != width {
		return nil, fmt.Errorf("blue model expects %d features, encoded width is %d", blue.NumFeatures(), width)
	}
	return &Engine{encoder: encoder, scaler: scaler, red: red, blue: blue}, nil
}

// Encode builds the scaled model input: one-hot weight class followed by the numeric features.
func (e *Engine) Encode(x models.FeatureVector) ([]float64, error) {
	row := make([]float64, 0, e.scaler.Width())
	row = e.encoder.Encode(row, x.WeightClass)
	num := x.Numeric()
	row = append(row, num[:]...)
	if err := e.scaler.Transform(row); err != nil {
		return nil, err
	}
	return row, nil
}

// PredictPair scores x1 with the red model and x2 with the blue model and returns each
// model's class-1 probability.
func (e *Engine) PredictPair(ctx context.Context, x1, x2 models.FeatureVector) (float64, float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	p1, err := e.score(e.red, x1)
	if err != nil {
		return 0, 0, fmt.Errorf("red model: %w", err)
	}
	p2, err := e.score(e.blue, x2)
	if err != nil {
		return 0, 0, fmt.Errorf("blue model: %w", err)
	}
	return p1, p2, nil
}

func (e *Engine) score(m Classifier, x models.FeatureVector) (float64, error) {
	row, err := e.Encode(x)
	if err != nil {
		return 0, err
	}
	proba, err := m.PredictProba(row)
	if err != nil {
		return 0, err
	}
	return proba[1], nil
}

// Categories returns the weight classes known to the encoder.
func (e *Engine) Categories() []string {
	return append([]string{}, e.encoder.Categories...)
}
