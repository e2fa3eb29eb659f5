// /internal/discord/actions.go
package discord

import (
	"time"

	"github.com/bwmarrin/discordgo"
)

// sessionActions lets the moderation pipeline act on Discord without knowing
// about discordgo.
type sessionActions struct {
	session *discordgo.Session
}

func (a *sessionActions) Delete(channelID, messageID string) error {
	return a.session.ChannelMessageDelete(channelID, messageID)
}

func (a *sessionActions) Reply(channelID, content string) error {
	_, err := a.session.ChannelMessageSend(channelID, content)
	return err
}

func (a *sessionActions) DirectMessage(userID, content string) error {
	channel, err := a.session.UserChannelCreate(userID)
	if err != nil {
		return err
	}
	_, err = a.session.ChannelMessageSend(channel.ID, content)
	return err
}

func (a *sessionActions) Timeout(guildID, userID string, until time.Time) error {
	return a.session.GuildMemberTimeout(guildID, userID, &until)
}
