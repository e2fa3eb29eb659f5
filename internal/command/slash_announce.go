// /internal/command/slash_announce.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type AnnounceCommand struct{}

func (c *AnnounceCommand) Name() string           { return "announce" }
func (c *AnnounceCommand) Description() string    { return "Post an announcement to a channel" }
func (c *AnnounceCommand) Module() feature.Module { return feature.ModuleUtility }
func (c *AnnounceCommand) Category() string       { return "🔧 Utility" }
func (c *AnnounceCommand) RequireAdmin() bool     { return true }

func (c *AnnounceCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Where to post",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "The announcement",
				Required:    true,
			},
		},
	}
}

func (c *AnnounceCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	chanOpt := core.Option(opts, "channel")
	msgOpt := core.Option(opts, "message")
	if chanOpt == nil || msgOpt == nil {
		return ctx.Reply("A channel and a message are required.")
	}

	channelID := chanOpt.ChannelValue(nil).ID
	if _, err := ctx.Session.ChannelMessageSend(channelID, "📢 "+msgOpt.StringValue()); err != nil {
		return fmt.Errorf("send announcement: %w", err)
	}
	return ctx.Reply(fmt.Sprintf("Announcement posted to <#%s>.", channelID))
}

func init() {
	core.RegisterCommand(&AnnounceCommand{})
}
