package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 5000, cfg.Port)
	assert.Equal(t, BackendCSV, cfg.HistoryBackend)
	assert.Equal(t, "fold", cfg.NameMatch)
	assert.Equal(t, 0.1, cfg.BlendThreshold)
	assert.Equal(t, 0.01, cfg.BlendEpsilon)
	assert.Equal(t, 600*time.Second, cfg.StatsCacheTTL)
	assert.Equal(t, []string{"*"}, cfg.AllowedOrigins)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "production")
	t.Setenv("HISTORY_BACKEND", "Postgres")
	t.Setenv("POSTGRES_URL", "postgres://localhost/fights")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,")
	t.Setenv("BLEND_THRESHOLD", "0.2")
	t.Setenv("HISTORY_CACHE_TTL", "90s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Port)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, BackendPostgres, cfg.HistoryBackend)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.Equal(t, 0.2, cfg.BlendThreshold)
	assert.Equal(t, 90*time.Second, cfg.HistoryCacheTTL)
}

func TestLoadRejectsInvalid(t *testing.T) {
	tests := map[string]map[string]string{
		"unknown backend":      {"HISTORY_BACKEND": "sqlite"},
		"postgres without url": {"HISTORY_BACKEND": "postgres"},
		"clickhouse w/o url":   {"HISTORY_BACKEND": "clickhouse"},
		"threshold too large":  {"BLEND_THRESHOLD": "1.5"},
		"negative epsilon":     {"BLEND_EPSILON": "-0.01"},
		"bad name match":       {"NAME_MATCH": "soundex"},
		"bad log format":       {"LOG_FORMAT": "xml"},
	}

	for name, env := range tests {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
