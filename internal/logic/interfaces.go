package logic

import (
	"context"

	"github.com/fightcast/predictor-api/internal/models"
)

// ModelBackend scores the two perspectives of a pairing. x1 goes to the red-perspective
// model and x2 to the blue-perspective model; both results are read as the probability
// that the role-X fighter wins.
type ModelBackend interface {
	PredictPair(ctx context.Context, x1, x2 models.FeatureVector) (float64, float64, error)
}

// PredictionService runs the full matchup pipeline.
type PredictionService interface {
	Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error)
}

// FighterService answers the read-only fighter and dataset queries.
type FighterService interface {
	ListFighters(ctx context.Context, weightClass string) ([]string, error)
	FighterWeightClasses(ctx context.Context, name string) ([]string, error)
	WeightClasses(ctx context.Context) ([]string, error)
	Profile(ctx context.Context, name string) (*models.FighterProfile, error)
	Compare(ctx context.Context, fighter1, fighter2 string) (*models.FighterComparison, error)
	Summary(ctx context.Context) (*models.DatasetSummary, error)
}
