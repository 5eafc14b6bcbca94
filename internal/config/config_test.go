package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultsWhenUnset(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9000", cfg.Port)
	assert.False(t, cfg.DebugMode)
	assert.Equal(t, 4*time.Millisecond, cfg.Tickrate)
}

func TestLoad_ReadsOverridesFromEnvironment(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DEBUG_MODE", "true")
	t.Setenv("TICKRATE_MS", "16")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.True(t, cfg.DebugMode)
	assert.Equal(t, 16*time.Millisecond, cfg.Tickrate)

	_ = os.Unsetenv("PORT")
}
