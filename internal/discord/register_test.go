// /internal/discord/register_test.go
package discord

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "exobot/internal/command"
	"exobot/internal/config"
	"exobot/internal/feature"
	"exobot/internal/storage"
)

func newTestBot(t *testing.T) *Bot {
	t.Helper()
	store, err := storage.New(context.Background(), filepath.Join(t.TempDir(), "exobot.json"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return &Bot{
		cfg:      &config.Config{},
		store:    store,
		features: feature.NewRegistry(),
		topics:   feature.NewTopicCache(),
	}
}

func commandNames(b *Bot, guildID string) map[string]bool {
	names := map[string]bool{}
	for _, def := range b.desiredCommands(guildID) {
		names[def.Name] = true
	}
	return names
}

func TestDesiredCommandsAlwaysOnOnly(t *testing.T) {
	b := newTestBot(t)
	names := commandNames(b, "g1")

	assert.True(t, names["help"])
	assert.True(t, names["custom-command"])
	assert.True(t, names["workflow"])
	assert.False(t, names["balance"], "economy is off")
	assert.False(t, names["warn"], "moderation is off")
}

func TestDesiredCommandsFollowModules(t *testing.T) {
	b := newTestBot(t)
	b.features.SetModules("g1", []feature.Module{feature.ModuleEconomy})

	names := commandNames(b, "g1")
	assert.True(t, names["balance"])
	assert.True(t, names["transfer"])
	assert.True(t, names["leaderboard"])
	assert.False(t, names["warn"])

	// Another guild with nothing enabled is unaffected.
	other := commandNames(b, "g2")
	assert.False(t, other["balance"])
}

func TestDesiredCommandsIncludeCustom(t *testing.T) {
	b := newTestBot(t)
	require.NoError(t, b.store.UpsertCustomCommand("g1", "greet", "Hello!", "admin", time.Now()))

	names := commandNames(b, "g1")
	assert.True(t, names["greet"])
}
