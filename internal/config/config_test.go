// /internal/config/config_test.go
package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewAppliesDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, "test-token", cfg.DiscordToken)
	assert.Equal(t, 60*time.Second, cfg.SpamWindow)
	assert.Equal(t, 5, cfg.SpamThreshold)
	assert.Equal(t, 0.70, cfg.CapsRatio)
	assert.Equal(t, 10, cfg.CapsMinLength)
	assert.Equal(t, 5, cfg.MentionLimit)
	assert.Equal(t, 3, cfg.WarningThreshold)
	assert.Equal(t, 60*time.Second, cfg.TimeoutDuration)
	assert.Equal(t, 60*time.Second, cfg.CurrencyCooldown)
	assert.Equal(t, 720*time.Hour, cfg.AuditRetention)
	assert.False(t, cfg.ResetWarningsOnTimeout)
}

func TestNewParsesOverrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "test-token")
	t.Setenv("SPAM_THRESHOLD", "9")
	t.Setenv("FORBIDDEN_WORDS", "one,two")
	t.Setenv("RESET_WARNINGS_ON_TIMEOUT", "true")

	cfg, err := New()
	require.NoError(t, err)

	assert.Equal(t, 9, cfg.SpamThreshold)
	assert.Equal(t, []string{"one", "two"}, cfg.ForbiddenWords)
	assert.True(t, cfg.ResetWarningsOnTimeout)
}
