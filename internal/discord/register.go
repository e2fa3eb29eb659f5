// /internal/discord/register.go
package discord

import (
	"context"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"exobot/internal/core"
	"exobot/pkg/retrylimit"
)

// registerLimiter paces command registration calls so a flood of guild
// events cannot hammer the Discord API.
var registerLimiter = retrylimit.NewAdaptiveLimiter(5, 1, 20, 1, 0.5)

// desiredCommands returns the slash definitions a guild should expose right
// now: always-on commands, commands of enabled modules, and the guild's own
// custom commands.
func (b *Bot) desiredCommands(guildID string) []*discordgo.ApplicationCommand {
	var defs []*discordgo.ApplicationCommand

	for _, cmd := range core.AllCommands() {
		if m := cmd.Module(); m != "" && !b.features.Enabled(guildID, m) {
			continue
		}
		provider, ok := cmd.(core.SlashProvider)
		if !ok {
			continue
		}
		defs = append(defs, provider.SlashDefinition())
	}

	custom, err := b.store.CustomCommands(guildID)
	if err != nil {
		log.Warn().Err(err).Str("guild", guildID).Msg("failed to load custom commands for registration")
	}
	for name, cc := range custom {
		description := cc.Response
		if len(description) > 100 {
			description = description[:97] + "..."
		}
		if description == "" {
			description = "Server-defined command"
		}
		defs = append(defs, &discordgo.ApplicationCommand{
			Name:        name,
			Description: description,
			Type:        discordgo.ChatApplicationCommand,
		})
	}

	return defs
}

// registerGuildCommands reconciles Discord's view of a guild's commands with
// the desired set, skipping anything whose fingerprint is unchanged.
func (b *Bot) registerGuildCommands(guildID string) {
	appID := b.session.State.User.ID
	desired := b.desiredCommands(guildID)
	cached := loadGuildCommandHashes(guildID)

	next := make(map[string]string, len(desired))
	created, skipped := 0, 0
	for _, def := range desired {
		h := hashCommand(def)
		next[def.Name] = h
		if cached[def.Name] == h {
			skipped++
			continue
		}

		if err := registerLimiter.Wait(context.Background()); err != nil {
			return
		}
		if _, err := b.session.ApplicationCommandCreate(appID, guildID, def); err != nil {
			registerLimiter.Failure()
			log.Error().Err(err).Str("guild", guildID).Str("command", def.Name).Msg("failed to register command")
			continue
		}
		registerLimiter.Success()
		created++
	}

	b.removeStaleCommands(appID, guildID, next)
	saveGuildCommandHashes(guildID, next)

	log.Info().
		Str("guild", guildID).
		Int("created", created).
		Int("unchanged", skipped).
		Msg("slash commands reconciled")
}

// removeStaleCommands deletes registered commands no longer in the desired
// set.
func (b *Bot) removeStaleCommands(appID, guildID string, desired map[string]string) {
	existing, err := b.session.ApplicationCommands(appID, guildID)
	if err != nil {
		log.Warn().Err(err).Str("guild", guildID).Msg("failed to list registered commands")
		return
	}

	for _, cmd := range existing {
		if _, keep := desired[cmd.Name]; keep {
			continue
		}
		if err := registerLimiter.Wait(context.Background()); err != nil {
			return
		}
		if err := b.session.ApplicationCommandDelete(appID, guildID, cmd.ID); err != nil {
			registerLimiter.Failure()
			log.Warn().Err(err).Str("guild", guildID).Str("command", cmd.Name).Msg("failed to delete stale command")
			continue
		}
		registerLimiter.Success()
	}
}
