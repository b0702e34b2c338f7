package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stepdoku/stepdoku/puzzle"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stepdoku.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, puzzle.DefaultTrialCap, cfg.TrialCap)
	assert.Equal(t, DefaultRedisURL, cfg.RedisURL)
	assert.Equal(t, puzzle.AllStrategies, cfg.StrategySet())
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
strategies:
  - single-candidate
  - hidden-single
trialCap: 25
moveDelay: 250ms
redisURL: redis://cache:6379/1
`)
	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.TrialCap)
	assert.Equal(t, 250*time.Millisecond, time.Duration(cfg.MoveDelay))
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)

	ss := cfg.StrategySet()
	assert.True(t, ss.Has(puzzle.SingleCandidate))
	assert.True(t, ss.Has(puzzle.HiddenSingle))
	assert.False(t, ss.Has(puzzle.Speculation))
}

func TestEnvironmentOverrides(t *testing.T) {
	path := writeConfig(t, `redisURL: redis://file:6379/0`)
	t.Setenv("REDIS_URL", "redis://env:6379/0")
	t.Setenv("DATABASE_URL", "postgres://env/runs")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "redis://env:6379/0", cfg.RedisURL)
	assert.Equal(t, "postgres://env/runs", cfg.DatabaseURL)
}

func TestRejectsBadConfig(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown strategy", "strategies: [guesswork]"},
		{"negative cap", "trialCap: -1"},
		{"not yaml", "strategies: ["},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := Load(writeConfig(t, test.body))
			assert.Error(t, err)
		})
	}
}
