package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	assert.Equal(t, "8600", cfg.Server.Port)
	assert.Equal(t, 1e-10, cfg.Engine.Tolerance)
	assert.Equal(t, 1000, cfg.Engine.MaxIterations)
	assert.Equal(t, 100, cfg.Engine.StrassenThreshold)
	assert.True(t, cfg.RateLimit.Enabled)
}

func TestLoadUsesDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-10, cfg.Engine.Tolerance)
	assert.Equal(t, "info", cfg.Logging.Level)
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LINALG_TOLERANCE", "1e-8")
	t.Setenv("LINALG_MAX_ITERATIONS", "250")
	t.Setenv("PORT", "9000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, 1e-8, cfg.Engine.Tolerance)
	assert.Equal(t, 250, cfg.Engine.MaxIterations)
	assert.Equal(t, "9000", cfg.Server.Port)
}

func TestLoadOrDefaultOnBadEnv(t *testing.T) {
	t.Setenv("LINALG_MAX_ITERATIONS", "not-a-number")

	cfg := LoadOrDefault()
	assert.Equal(t, 1000, cfg.Engine.MaxIterations)
}
