// /internal/discord/events.go
package discord

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"exobot/internal/feature"
	"exobot/internal/moderate"
)

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.ID == s.State.User.ID {
		return
	}

	mentions := make([]string, 0, len(m.Mentions))
	for _, u := range m.Mentions {
		mentions = append(mentions, u.ID)
	}

	b.pipeline.Process(moderate.Message{
		GuildID:   m.GuildID,
		ChannelID: m.ChannelID,
		MessageID: m.ID,
		AuthorID:  m.Author.ID,
		AuthorBot: m.Author.Bot,
		Content:   m.Content,
		Mentions:  mentions,
	})
}

// onMessageReactionAdd reposts sufficiently starred messages to the
// starboard.
func (b *Bot) onMessageReactionAdd(s *discordgo.Session, r *discordgo.MessageReactionAdd) {
	if r.GuildID == "" || r.Emoji.Name != "⭐" {
		return
	}
	if !b.features.Enabled(r.GuildID, feature.ModulePlugin) {
		return
	}

	settings, err := b.store.StarboardSettings(r.GuildID)
	if err != nil || settings == nil || settings.ChannelID == "" {
		return
	}
	if r.ChannelID == settings.ChannelID {
		return
	}

	msg, err := s.ChannelMessage(r.ChannelID, r.MessageID)
	if err != nil {
		log.Debug().Err(err).Msg("failed to fetch starred message")
		return
	}

	stars := 0
	for _, reaction := range msg.Reactions {
		if reaction.Emoji.Name == "⭐" {
			stars = reaction.Count
			break
		}
	}
	if stars != settings.Threshold {
		// Fire exactly once, on the reaction that reaches the threshold.
		return
	}

	repost := fmt.Sprintf("⭐ %d | <#%s> | <@%s>\n%s", stars, r.ChannelID, msg.Author.ID, msg.Content)
	if _, err := s.ChannelMessageSend(settings.ChannelID, repost); err != nil {
		log.Warn().Err(err).Str("guild", r.GuildID).Msg("failed to repost to starboard")
	}
}

// onGuildMemberAdd posts a verification welcome when the security module is
// configured for it.
func (b *Bot) onGuildMemberAdd(s *discordgo.Session, e *discordgo.GuildMemberAdd) {
	if !b.features.Enabled(e.GuildID, feature.ModuleSecurity) {
		return
	}

	settings, err := b.store.VerificationSettings(e.GuildID)
	if err != nil || settings == nil || settings.ChannelID == "" {
		return
	}

	welcome := fmt.Sprintf("Welcome <@%s>! Please introduce yourself here to get verified.", e.User.ID)
	if _, err := s.ChannelMessageSend(settings.ChannelID, welcome); err != nil {
		log.Warn().Err(err).Str("guild", e.GuildID).Msg("failed to send verification welcome")
	}
}
