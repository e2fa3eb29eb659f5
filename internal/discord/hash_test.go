// /internal/discord/hash_test.go
package discord

import (
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func optionPair(a, b string) []*discordgo.ApplicationCommandOption {
	return []*discordgo.ApplicationCommandOption{
		{Type: discordgo.ApplicationCommandOptionString, Name: a, Description: "first"},
		{Type: discordgo.ApplicationCommandOptionString, Name: b, Description: "second"},
	}
}

func TestHashCommandDeterministic(t *testing.T) {
	cmd := &discordgo.ApplicationCommand{Name: "warn", Description: "Manage warnings"}
	assert.Equal(t, hashCommand(cmd), hashCommand(cmd))
}

func TestHashCommandIgnoresOptionOrder(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "x", Description: "d", Options: optionPair("alpha", "beta")}
	b := &discordgo.ApplicationCommand{Name: "x", Description: "d", Options: optionPair("beta", "alpha")}

	// Same options, swapped declaration order but names preserved per slot.
	b.Options[0].Description = "second"
	b.Options[1].Description = "first"

	assert.Equal(t, hashCommand(a), hashCommand(b))
}

func TestHashCommandChangesWithDescription(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "x", Description: "old"}
	b := &discordgo.ApplicationCommand{Name: "x", Description: "new"}
	assert.NotEqual(t, hashCommand(a), hashCommand(b))
}

func TestHashCommandIgnoresRuntimeFields(t *testing.T) {
	a := &discordgo.ApplicationCommand{Name: "x", Description: "d"}
	b := &discordgo.ApplicationCommand{ID: "123", Version: "9", ApplicationID: "app", Name: "x", Description: "d"}
	assert.Equal(t, hashCommand(a), hashCommand(b))
}
