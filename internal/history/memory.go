package history

import (
	"context"

	"github.com/fightcast/predictor-api/internal/models"
)

type cornerKey struct {
	name   string
	corner models.Corner
}

// MemoryStore serves an in-memory copy of the history table. Bouts must be in
// chronological order; the store is immutable after construction.
type MemoryStore struct {
	bouts   []models.Bout
	mode    MatchMode
	latest  map[cornerKey]int
	classes map[string][]string
	counts  map[cornerKey]int
}

// NewMemoryStore indexes bouts for lookups.
func NewMemoryStore(bouts []models.Bout, mode MatchMode) *MemoryStore {
	s := &MemoryStore{
		bouts:   bouts,
		mode:    mode,
		latest:  make(map[cornerKey]int),
		classes: make(map[string][]string),
		counts:  make(map[cornerKey]int),
	}

	raw := make(map[string][]string)
	for i := range bouts {
		b := &bouts[i]
		for _, c := range []models.Corner{models.CornerRed, models.CornerBlue} {
			name := b.Fighter(c)
			if IsSentinel(name) {
				continue
			}
			k := cornerKey{name: mode.Key(name), corner: c}
			s.latest[k] = i
			s.counts[k]++
			raw[k.name] = append(raw[k.name], b.WeightClass)
		}
	}
	for name, classes := range raw {
		s.classes[name] = cleanClasses(classes)
	}
	return s
}

func (s *MemoryStore) Latest(ctx context.Context, name string, corner models.Corner) (*models.Snapshot, error) {
	i, ok := s.latest[cornerKey{name: s.mode.Key(name), corner: corner}]
	if !ok {
		return nil, ErrNotFound
	}
	return models.SnapshotOf(&s.bouts[i], corner), nil
}

func (s *MemoryStore) WeightClasses(ctx context.Context, name string) ([]string, error) {
	return append([]string{}, s.classes[s.mode.Key(name)]...), nil
}

func (s *MemoryStore) Fighters(ctx context.Context, weightClass string) ([]string, error) {
	names := make([]string, 0, len(s.bouts)*2)
	for i := range s.bouts {
		b := &s.bouts[i]
		if filterClass(weightClass) && b.WeightClass != weightClass {
			continue
		}
		names = append(names, b.RedFighter, b.BlueFighter)
	}
	return cleanNames(names), nil
}

func (s *MemoryStore) AllWeightClasses(ctx context.Context) ([]string, error) {
	classes := make([]string, 0, len(s.bouts))
	for i := range s.bouts {
		classes = append(classes, s.bouts[i].WeightClass)
	}
	return cleanClasses(classes), nil
}

func (s *MemoryStore) Appearances(ctx context.Context, name string) (int, int, error) {
	key := s.mode.Key(name)
	return s.counts[cornerKey{name: key, corner: models.CornerRed}],
		s.counts[cornerKey{name: key, corner: models.CornerBlue}], nil
}

func (s *MemoryStore) Summary(ctx context.Context) (*models.DatasetSummary, error) {
	fighters, err := s.Fighters(ctx, "")
	if err != nil {
		return nil, err
	}
	dist := make(map[string]int)
	for i := range s.bouts {
		if wc := s.bouts[i].WeightClass; !IsSentinel(wc) {
			dist[wc]++
		}
	}
	return &models.DatasetSummary{
		TotalFights:             len(s.bouts),
		TotalFighters:           len(fighters),
		WeightClasses:           len(dist),
		WeightClassDistribution: dist,
	}, nil
}

func (s *MemoryStore) Ping(ctx context.Context) error { return nil }

// Len returns the number of bouts loaded.
func (s *MemoryStore) Len() int { return len(s.bouts) }
