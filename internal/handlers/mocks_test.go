package handlers

import (
	"context"
	"errors"

	"github.com/fightcast/predictor-api/internal/models"
)

// MockPredictionService implements logic.PredictionService for testing
type MockPredictionService struct {
	PredictFunc func(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error)
	Calls       int
}

func (m *MockPredictionService) Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
	m.Calls++
	if m.PredictFunc != nil {
		return m.PredictFunc(ctx, req)
	}
	return nil, errors.New("not implemented")
}

// MockFighterService implements logic.FighterService for testing
type MockFighterService struct {
	ListFightersFunc         func(weightClass string) ([]string, error)
	FighterWeightClassesFunc func(name string) ([]string, error)
	WeightClassesFunc        func() ([]string, error)
	ProfileFunc              func(name string) (*models.FighterProfile, error)
	CompareFunc              func(f1, f2 string) (*models.FighterComparison, error)
	SummaryFunc              func() (*models.DatasetSummary, error)
	Calls                    int
}

func (m *MockFighterService) ListFighters(ctx context.Context, weightClass string) ([]string, error) {
	m.Calls++
	return m.ListFightersFunc(weightClass)
}

func (m *MockFighterService) FighterWeightClasses(ctx context.Context, name string) ([]string, error) {
	m.Calls++
	return m.FighterWeightClassesFunc(name)
}

func (m *MockFighterService) WeightClasses(ctx context.Context) ([]string, error) {
	m.Calls++
	return m.WeightClassesFunc()
}

func (m *MockFighterService) Profile(ctx context.Context, name string) (*models.FighterProfile, error) {
	m.Calls++
	return m.ProfileFunc(name)
}

func (m *MockFighterService) Compare(ctx context.Context, f1, f2 string) (*models.FighterComparison, error) {
	m.Calls++
	return m.CompareFunc(f1, f2)
}

func (m *MockFighterService) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	m.Calls++
	return m.SummaryFunc()
}

// MockPinger implements Pinger for testing
type MockPinger struct {
	Err error
}

func (m *MockPinger) Ping(ctx context.Context) error { return m.Err }
