// Package app wires configuration into the running service: model artifacts, the
// history backend, the shared cache and the HTTP handler tree.
package app

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/fightcast/predictor-api/internal/cache"
	"github.com/fightcast/predictor-api/internal/config"
	"github.com/fightcast/predictor-api/internal/handlers"
	"github.com/fightcast/predictor-api/internal/history"
	"github.com/fightcast/predictor-api/internal/inference"
	"github.com/fightcast/predictor-api/internal/logic"
	"github.com/fightcast/predictor-api/internal/models"
)

const (
	cachePrefix  = "fightcast:"
	pingTimeout  = 5 * time.Second
	cacheCleanup = 10 * time.Minute
)

type App struct {
	Config     *config.Config
	Logger     *zap.Logger
	Engine     *inference.Engine
	Store      history.Store
	Cache      cache.Cache
	Prediction logic.PredictionService
	Fighters   logic.FighterService

	raw     history.Store
	closers []func()
}

// New loads the model artifacts first so a broken deployment fails before any
// connection is opened.
func New(ctx context.Context, cfg *config.Config, logger *zap.Logger) (*App, error) {
	a := &App{Config: cfg, Logger: logger}
	sugar := logger.Sugar()

	engine, err := inference.Load(cfg.ArtifactsDir)
	if err != nil {
		return nil, fmt.Errorf("load model artifacts: %w", err)
	}
	a.Engine = engine
	sugar.Infow("Model artifacts loaded", "dir", cfg.ArtifactsDir, "weight_classes", len(engine.Categories()))

	mode, err := history.ParseMatchMode(cfg.NameMatch)
	if err != nil {
		return nil, err
	}

	raw, closeStore, err := OpenHistory(ctx, cfg, mode)
	if err != nil {
		return nil, err
	}
	a.raw = raw
	a.closers = append(a.closers, closeStore)
	sugar.Infow("History backend ready", "backend", cfg.HistoryBackend, "name_match", cfg.NameMatch)

	c, closeCache, err := OpenCache(ctx, cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.Cache = c
	a.closers = append(a.closers, closeCache)

	// a zero TTL would mean "never expire" to both caches, so it disables history caching
	a.Store = raw
	if cfg.HistoryCacheTTL > 0 {
		a.Store = history.NewCachedStore(raw, c, mode, cfg.HistoryCacheTTL, sugar)
	}
	blend := logic.BlendConfig{Threshold: cfg.BlendThreshold, Epsilon: cfg.BlendEpsilon}
	a.Prediction = logic.NewPredictionService(a.Store, engine, blend, nil, sugar)
	a.Fighters = logic.NewFighterService(a.Store)
	return a, nil
}

// Handler returns the HTTP router for the service.
func (a *App) Handler() http.Handler {
	h := handlers.New(handlers.Config{
		Logger:     a.Logger,
		Prediction: a.Prediction,
		Fighters:   a.Fighters,
		Checks: map[string]handlers.Pinger{
			"history": a.raw,
			"cache":   a.Cache,
		},
		Cache:              a.Cache,
		ResponseCacheTTL:   a.Config.ResponseCacheTTL,
		StatsCacheTTL:      a.Config.StatsCacheTTL,
		AllowedOrigins:     a.Config.AllowedOrigins,
		RequestTimeout:     a.Config.RequestTimeout,
		RateLimitPerSecond: a.Config.RateLimitPerSecond,
		RateLimitBurst:     a.Config.RateLimitBurst,
		StaticDir:          a.Config.StaticDir,
	})
	return h.Routes()
}

// Close releases connections in reverse open order.
func (a *App) Close() {
	for i := len(a.closers) - 1; i >= 0; i-- {
		a.closers[i]()
	}
	a.closers = nil
}

// OpenHistory connects the configured history backend and checks it is reachable.
func OpenHistory(ctx context.Context, cfg *config.Config, mode history.MatchMode) (history.Store, func(), error) {
	switch cfg.HistoryBackend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return nil, nil, fmt.Errorf("connect postgres: %w", err)
		}
		if err := ping(ctx, pool.Ping); err != nil {
			pool.Close()
			return nil, nil, fmt.Errorf("ping postgres: %w", err)
		}
		return history.NewPostgresStore(pool, mode), pool.Close, nil

	case config.BackendClickHouse:
		opts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			return nil, nil, fmt.Errorf("parse clickhouse dsn: %w", err)
		}
		conn, err := clickhouse.Open(opts)
		if err != nil {
			return nil, nil, fmt.Errorf("connect clickhouse: %w", err)
		}
		if err := ping(ctx, conn.Ping); err != nil {
			conn.Close()
			return nil, nil, fmt.Errorf("ping clickhouse: %w", err)
		}
		return history.NewClickHouseStore(conn, mode), func() { conn.Close() }, nil

	default:
		store, err := history.LoadCSV(cfg.HistoryCSV, mode)
		if err != nil {
			return nil, nil, err
		}
		return store, func() {}, nil
	}
}

// OpenCache returns a Redis cache when REDIS_URL is set and an in-process cache otherwise.
func OpenCache(ctx context.Context, cfg *config.Config) (cache.Cache, func(), error) {
	if cfg.RedisURL == "" {
		return cache.NewMemory(cfg.HistoryCacheTTL, cacheCleanup), func() {}, nil
	}
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("parse redis url: %w", err)
	}
	client := redis.NewClient(opts)
	if err := ping(ctx, func(ctx context.Context) error { return client.Ping(ctx).Err() }); err != nil {
		client.Close()
		return nil, nil, fmt.Errorf("ping redis: %w", err)
	}
	return cache.NewRedis(client, cachePrefix), func() { client.Close() }, nil
}

// Import installs the history schema in the configured database and replaces its
// contents with the rows of csvPath. It returns the number of rows written.
func Import(ctx context.Context, cfg *config.Config, csvPath string) (int64, error) {
	bouts, err := readBouts(csvPath)
	if err != nil {
		return 0, err
	}

	switch cfg.HistoryBackend {
	case config.BackendPostgres:
		pool, err := pgxpool.New(ctx, cfg.PostgresURL)
		if err != nil {
			return 0, fmt.Errorf("connect postgres: %w", err)
		}
		defer pool.Close()
		if err := history.InstallPostgres(ctx, pool); err != nil {
			return 0, err
		}
		return history.ImportPostgres(ctx, pool, bouts)

	case config.BackendClickHouse:
		opts, err := clickhouse.ParseDSN(cfg.ClickHouseURL)
		if err != nil {
			return 0, fmt.Errorf("parse clickhouse dsn: %w", err)
		}
		conn, err := clickhouse.Open(opts)
		if err != nil {
			return 0, fmt.Errorf("connect clickhouse: %w", err)
		}
		defer conn.Close()
		if err := history.InstallClickHouse(ctx, conn); err != nil {
			return 0, err
		}
		n, err := history.ImportClickHouse(ctx, conn, bouts)
		return int64(n), err

	default:
		return 0, fmt.Errorf("import needs a database backend, HISTORY_BACKEND is %q", cfg.HistoryBackend)
	}
}

func readBouts(path string) ([]models.Bout, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open history: %w", err)
	}
	defer f.Close()
	return history.ReadBouts(f)
}

func ping(ctx context.Context, fn func(context.Context) error) error {
	ctx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	return fn(ctx)
}
