package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var keys = []string{"HTTP_ADDR", "LOG_LEVEL", "PREMIUM_MEMBER", "PRODUCT_FILE", "REVIEW_ERRORS_ACCUMULATE"}

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, Config{
		HTTPAddr:               ":8080",
		LogLevel:               "info",
		Premium:                true,
		ProductFile:            "",
		AccumulateReviewErrors: false,
	}, cfg)
}

func TestLoadFromEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("HTTP_ADDR", ":9090")
	t.Setenv("PREMIUM_MEMBER", "false")
	t.Setenv("REVIEW_ERRORS_ACCUMULATE", "yes")
	t.Setenv("PRODUCT_FILE", "/tmp/hat.yaml")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTPAddr)
	assert.False(t, cfg.Premium)
	assert.True(t, cfg.AccumulateReviewErrors)
	assert.Equal(t, "/tmp/hat.yaml", cfg.ProductFile)
}

func TestLoadReadsDotEnvWithoutOverriding(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTTP_ADDR=:7070\nLOG_LEVEL=debug\n"), 0o600))
	t.Setenv("LOG_LEVEL", "warn")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, ":7070", cfg.HTTPAddr)
	assert.Equal(t, "warn", cfg.LogLevel)
}

func TestEnvBool(t *testing.T) {
	tests := map[string]bool{
		"1":     true,
		"TRUE":  true,
		"YES":   true,
		"0":     false,
		"no":    false,
		"false": false,
		"maybe": true,
	}
	for in, want := range tests {
		t.Run(in, func(t *testing.T) {
			t.Setenv("FLAG", in)
			assert.Equal(t, want, envBool("FLAG", true))
		})
	}
}
