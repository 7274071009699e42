package logic

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/fightcast/predictor-api/internal/history"
	"github.com/fightcast/predictor-api/internal/metrics"
	"github.com/fightcast/predictor-api/internal/models"
)

// RoleDrawer reports whether fighter2 takes role X (the red corner of the primary
// perspective) for one request.
type RoleDrawer func() bool

// RandomRoleDrawer swaps with probability one half.
func RandomRoleDrawer() bool {
	return rand.IntN(2) == 1
}

type predictionService struct {
	store   history.Store
	backend ModelBackend
	blend   BlendConfig
	draw    RoleDrawer
	logger  *zap.SugaredLogger
}

// NewPredictionService builds the matchup pipeline. A nil draw uses RandomRoleDrawer.
func NewPredictionService(store history.Store, backend ModelBackend, blend BlendConfig, draw RoleDrawer, logger *zap.SugaredLogger) PredictionService {
	if draw == nil {
		draw = RandomRoleDrawer
	}
	return &predictionService{
		store:   store,
		backend: backend,
		blend:   blend,
		draw:    draw,
		logger:  logger,
	}
}

// pairing holds everything looked up for one role assignment.
type pairing struct {
	x, y               string
	xRed, xBlue        *models.Snapshot
	yRed, yBlue        *models.Snapshot
	xClasses, yClasses []string
}

func (s *predictionService) Predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
	start := time.Now()
	resp, err := s.predict(ctx, req)
	if err != nil {
		metrics.PredictionErrors.WithLabelValues(errorKind(err)).Inc()
		return nil, err
	}
	metrics.PredictionDuration.Observe(time.Since(start).Seconds())
	return resp, nil
}

func (s *predictionService) predict(ctx context.Context, req models.PredictRequest) (*models.PredictionResponse, error) {
	fighter1, fighter2, err := ValidateMatchup(req.Fighter1, req.Fighter2)
	if err != nil {
		return nil, err
	}
	provided := strings.TrimSpace(req.WeightClass)

	swapped := s.draw()
	p := &pairing{x: fighter1, y: fighter2}
	if swapped {
		p.x, p.y = fighter2, fighter1
	}

	if err := s.lookup(ctx, p); err != nil {
		return nil, err
	}

	weightClass, strategy, err := resolveWeightClass(provided,
		Candidate{Name: p.x, WeightClasses: p.xClasses, Snapshot: p.xRed},
		Candidate{Name: p.y, WeightClasses: p.yClasses, Snapshot: p.yBlue})
	if err != nil {
		var incompatible *IncompatibleWeightClassError
		if swapped && errors.As(err, &incompatible) {
			incompatible.Fighter1Classes, incompatible.Fighter2Classes = incompatible.Fighter2Classes, incompatible.Fighter1Classes
		}
		return nil, err
	}

	x1 := BuildFeatures(p.xRed, p.yBlue, weightClass)
	x2 := BuildFeatures(p.yRed, p.xBlue, weightClass)

	redP, blueP, err := s.backend.PredictPair(ctx, x1, x2)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrPredictionBackend, err)
	}

	out := Reconcile(redP, blueP, swapped, fighter1, fighter2, s.blend)

	metrics.PredictionsTotal.WithLabelValues(out.Method, strconv.FormatBool(swapped)).Inc()
	metrics.ModelConfidence.WithLabelValues("red").Observe(out.RedConfidence)
	metrics.ModelConfidence.WithLabelValues("blue").Observe(out.BlueConfidence)

	id := uuid.NewString()
	s.logger.Infow("Prediction served",
		"prediction_id", id,
		"fighter1", fighter1,
		"fighter2", fighter2,
		"swapped", swapped,
		"weight_class", weightClass,
		"weight_class_source", strategy,
		"red_p", redP,
		"blue_p", blueP,
		"method", out.Method,
		"winner", out.Winner,
		"win_probability", out.WinProbability,
	)

	return &models.PredictionResponse{
		Prediction:             fmt.Sprintf("%s is predicted to win with %.1f%% probability", out.Winner, out.WinProbability*100),
		Status:                 "success",
		PredictionID:           id,
		Winner:                 out.Winner,
		WinProbability:         out.WinProbability,
		ConfidenceLevel:        out.ConfidenceLevel,
		WeightClass:            weightClass,
		FighterOrderRandomized: swapped,
		ModelDetails: models.ModelDetails{
			RedModelConfidence:  out.RedConfidence,
			BlueModelConfidence: out.BlueConfidence,
			PredictionMethod:    out.Method,
		},
	}, nil
}

// lookup fetches the four corner snapshots and both weight class sets concurrently.
func (s *predictionService) lookup(ctx context.Context, p *pairing) error {
	g, gctx := errgroup.WithContext(ctx)

	latest := func(dst **models.Snapshot, name string, corner models.Corner) {
		g.Go(func() error {
			snap, err := s.store.Latest(gctx, name, corner)
			if errors.Is(err, history.ErrNotFound) {
				return &NotFoundError{Fighter: name, Corner: cornerLabel(corner)}
			}
			if err != nil {
				return fmt.Errorf("lookup %s (%s): %w", name, corner, err)
			}
			*dst = snap
			return nil
		})
	}
	classes := func(dst *[]string, name string) {
		g.Go(func() error {
			wc, err := s.store.WeightClasses(gctx, name)
			if err != nil {
				return fmt.Errorf("weight classes for %s: %w", name, err)
			}
			*dst = wc
			return nil
		})
	}

	latest(&p.xRed, p.x, models.CornerRed)
	latest(&p.yBlue, p.y, models.CornerBlue)
	latest(&p.yRed, p.y, models.CornerRed)
	latest(&p.xBlue, p.x, models.CornerBlue)
	classes(&p.xClasses, p.x)
	classes(&p.yClasses, p.y)

	return g.Wait()
}

func cornerLabel(c models.Corner) string {
	if c == models.CornerRed {
		return "red"
	}
	return "blue"
}

func errorKind(err error) string {
	switch {
	case errors.Is(err, ErrInvalidName), errors.Is(err, ErrDuplicateCompetitor):
		return "validation"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrIncompatibleWeightClass):
		return "weight_class"
	case errors.Is(err, ErrPredictionBackend):
		return "backend"
	}
	return "internal"
}
