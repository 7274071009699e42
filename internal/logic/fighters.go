package logic

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/fightcast/predictor-api/internal/history"
	"github.com/fightcast/predictor-api/internal/models"
)

type fighterService struct {
	store history.Store
}

func NewFighterService(store history.Store) FighterService {
	return &fighterService{store: store}
}

// ListFighters returns sorted unique names, all of them when weightClass is empty or "All".
func (s *fighterService) ListFighters(ctx context.Context, weightClass string) ([]string, error) {
	return s.store.Fighters(ctx, weightClass)
}

func (s *fighterService) FighterWeightClasses(ctx context.Context, name string) ([]string, error) {
	return s.store.WeightClasses(ctx, strings.TrimSpace(name))
}

// WeightClasses returns every recorded class plus "Unknown" as a selectable fallback.
func (s *fighterService) WeightClasses(ctx context.Context) ([]string, error) {
	classes, err := s.store.AllWeightClasses(ctx)
	if err != nil {
		return nil, err
	}
	if !slices.Contains(classes, UnknownWeightClass) {
		classes = append(classes, UnknownWeightClass)
	}
	slices.Sort(classes)
	return classes, nil
}

func (s *fighterService) Profile(ctx context.Context, name string) (*models.FighterProfile, error) {
	name = strings.TrimSpace(name)
	red, blue, err := s.store.Appearances(ctx, name)
	if err != nil {
		return nil, err
	}
	if red+blue == 0 {
		return nil, &NotFoundError{Fighter: name}
	}

	classes, err := s.store.WeightClasses(ctx, name)
	if err != nil {
		return nil, err
	}
	profile := &models.FighterProfile{
		Name:          name,
		TotalFights:   red + blue,
		WeightClasses: nonNil(classes),
		FightsAsRed:   red,
		FightsAsBlue:  blue,
	}

	snap, err := s.store.Latest(ctx, name, models.CornerRed)
	switch {
	case err == nil:
		profile.CareerStats = careerStats(snap)
	case !errors.Is(err, history.ErrNotFound):
		return nil, err
	}
	return profile, nil
}

func (s *fighterService) Compare(ctx context.Context, fighter1, fighter2 string) (*models.FighterComparison, error) {
	fighter1, fighter2 = strings.TrimSpace(fighter1), strings.TrimSpace(fighter2)
	var sides [2]models.ComparedFighter
	for i, name := range []string{fighter1, fighter2} {
		snap, err := s.store.Latest(ctx, name, models.CornerRed)
		if errors.Is(err, history.ErrNotFound) {
			return nil, &NotFoundError{Fighter: name, Corner: cornerLabel(models.CornerRed)}
		}
		if err != nil {
			return nil, fmt.Errorf("compare %s: %w", name, err)
		}
		cs := careerStats(snap)
		sides[i] = models.ComparedFighter{
			Name:          name,
			CareerFights:  cs.Fights,
			CareerWins:    cs.Wins,
			CareerLosses:  cs.Losses,
			WinRate:       cs.WinRate,
			AvgStrikes:    cs.AvgStrikes,
			AvgTakedowns:  cs.AvgTakedowns,
			AvgKnockdowns: cs.AvgKnockdowns,
		}
	}
	return &models.FighterComparison{Fighter1: sides[0], Fighter2: sides[1]}, nil
}

func (s *fighterService) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	return s.store.Summary(ctx)
}

func careerStats(s *models.Snapshot) *models.CareerStats {
	return &models.CareerStats{
		Fights:        int(s.CareerFights),
		Wins:          int(s.CareerWins),
		Losses:        int(s.CareerLosses),
		WinRate:       s.CareerWinRate,
		AvgStrikes:    perFight(s.CareerStrikes, s.CareerFights),
		AvgTakedowns:  perFight(s.CareerTakedowns, s.CareerFights),
		AvgKnockdowns: perFight(s.CareerKnockdowns, s.CareerFights),
	}
}
