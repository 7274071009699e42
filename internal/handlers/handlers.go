package handlers

import (
	"context"
	"time"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/fightcast/predictor-api/internal/cache"
	"github.com/fightcast/predictor-api/internal/logic"
)

// MaxBodySize limits the size of request bodies to 64KB
const MaxBodySize = 65536

// Pinger is a dependency checked by the readiness probe.
type Pinger interface {
	Ping(ctx context.Context) error
}

type Config struct {
	Logger *zap.Logger
	// Services
	Prediction logic.PredictionService
	Fighters   logic.FighterService
	// Dependencies reported by /api/ready, by name
	Checks map[string]Pinger
	// Response cache; nil disables caching
	Cache            cache.Cache
	ResponseCacheTTL time.Duration
	StatsCacheTTL    time.Duration
	// HTTP
	AllowedOrigins     []string
	RequestTimeout     time.Duration
	RateLimitPerSecond int
	RateLimitBurst     int
	StaticDir          string
}

type Handler struct {
	logger     *zap.SugaredLogger
	validator  *validator.Validate
	prediction logic.PredictionService
	fighters   logic.FighterService
	checks     map[string]Pinger
	cfg        Config
}

func New(cfg Config) *Handler {
	return &Handler{
		logger:     cfg.Logger.Sugar(),
		validator:  validator.New(),
		prediction: cfg.Prediction,
		fighters:   cfg.Fighters,
		checks:     cfg.Checks,
		cfg:        cfg,
	}
}
