package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestCurrencySupported(t *testing.T) {
	require.True(t, CurrencySupported("usd"))
	require.True(t, CurrencySupported("aud"))
	require.False(t, CurrencySupported("eur"))
	require.False(t, CurrencySupported(""))
}

func TestApplyTuning(t *testing.T) {
	writeTuning := func(t *testing.T, content string) string {
		t.Helper()
		path := filepath.Join(t.TempDir(), "tuning.yaml")
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
		return path
	}

	defaults := func() Config {
		return Config{
			Retries:          defaultRetries,
			RetryCooldown:    defaultRetryCooldown,
			ThrottleEvery:    defaultThrottleEvery,
			ThrottleCooldown: defaultThrottleCooldown,
		}
	}

	t.Run("overrides provided values", func(t *testing.T) {
		cfg := defaults()
		path := writeTuning(t, "retries: 3\nretry_cooldown: 5s\nthrottle_every: 10\nthrottle_cooldown: 30s\n")
		require.NoError(t, applyTuning(&cfg, path))
		require.Equal(t, 3, cfg.Retries)
		require.Equal(t, 5*time.Second, cfg.RetryCooldown)
		require.Equal(t, 10, cfg.ThrottleEvery)
		require.Equal(t, 30*time.Second, cfg.ThrottleCooldown)
	})

	t.Run("keeps defaults for absent keys", func(t *testing.T) {
		cfg := defaults()
		path := writeTuning(t, "retries: 7\n")
		require.NoError(t, applyTuning(&cfg, path))
		require.Equal(t, 7, cfg.Retries)
		require.Equal(t, defaultRetryCooldown, cfg.RetryCooldown)
		require.Equal(t, defaultThrottleEvery, cfg.ThrottleEvery)
	})

	t.Run("rejects bad durations", func(t *testing.T) {
		cfg := defaults()
		path := writeTuning(t, "retry_cooldown: soon\n")
		require.Error(t, applyTuning(&cfg, path))
	})

	t.Run("rejects negative retries", func(t *testing.T) {
		cfg := defaults()
		path := writeTuning(t, "retries: -1\n")
		require.Error(t, applyTuning(&cfg, path))
	})

	t.Run("missing file", func(t *testing.T) {
		cfg := defaults()
		require.Error(t, applyTuning(&cfg, filepath.Join(t.TempDir(), "nope.yaml")))
	})
}
