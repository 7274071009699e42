package history

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/fightcast/predictor-api/internal/cache"
	"github.com/fightcast/predictor-api/internal/metrics"
	"github.com/fightcast/predictor-api/internal/models"
)

// CachedStore is a read-through cache over the per-fighter lookups of another Store.
// Misses (ErrNotFound) are never cached. Cache failures fall through to the backing store.
type CachedStore struct {
	Store
	cache  cache.Cache
	mode   MatchMode
	ttl    time.Duration
	logger *zap.SugaredLogger
}

// NewCachedStore wraps store. mode must match the backing store's so that names the
// store treats as distinct never share a cache entry.
func NewCachedStore(store Store, c cache.Cache, mode MatchMode, ttl time.Duration, logger *zap.SugaredLogger) *CachedStore {
	return &CachedStore{Store: store, cache: c, mode: mode, ttl: ttl, logger: logger}
}

func (s *CachedStore) snapshotKey(name string, corner models.Corner) string {
	return "snapshot:" + s.mode.Key(strings.TrimSpace(name)) + ":" + string(corner)
}

func (s *CachedStore) weightClassesKey(name string) string {
	return "weight_classes:" + s.mode.Key(strings.TrimSpace(name))
}

func (s *CachedStore) Latest(ctx context.Context, name string, corner models.Corner) (*models.Snapshot, error) {
	key := s.snapshotKey(name, corner)
	var snap models.Snapshot
	if s.load(ctx, "snapshot", key, &snap) {
		return &snap, nil
	}

	res, err := s.Store.Latest(ctx, name, corner)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, res)
	return res, nil
}

func (s *CachedStore) WeightClasses(ctx context.Context, name string) ([]string, error) {
	key := s.weightClassesKey(name)
	var classes []string
	if s.load(ctx, "weight_classes", key, &classes) {
		return classes, nil
	}

	res, err := s.Store.WeightClasses(ctx, name)
	if err != nil {
		return nil, err
	}
	s.store(ctx, key, res)
	return res, nil
}

func (s *CachedStore) Ping(ctx context.Context) error {
	return errors.Join(s.Store.Ping(ctx), s.cache.Ping(ctx))
}

func (s *CachedStore) load(ctx context.Context, lookup, key string, dst any) bool {
	b, ok, err := s.cache.Get(ctx, key)
	if err != nil {
		s.logger.Warnw("History cache read failed", "key", key, "error", err)
	}
	if !ok {
		metrics.HistoryCacheMisses.WithLabelValues(lookup).Inc()
		return false
	}
	if err := json.Unmarshal(b, dst); err != nil {
		s.logger.Warnw("Discarding corrupt history cache entry", "key", key, "error", err)
		metrics.HistoryCacheMisses.WithLabelValues(lookup).Inc()
		return false
	}
	metrics.HistoryCacheHits.WithLabelValues(lookup).Inc()
	return true
}

func (s *CachedStore) store(ctx context.Context, key string, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, b, s.ttl); err != nil {
		s.logger.Warnw("History cache write failed", "key", key, "error", err)
	}
}
