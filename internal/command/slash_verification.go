// /internal/command/slash_verification.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type VerificationCommand struct{}

func (c *VerificationCommand) Name() string           { return "verification" }
func (c *VerificationCommand) Description() string    { return "Configure new member verification" }
func (c *VerificationCommand) Module() feature.Module { return feature.ModuleSecurity }
func (c *VerificationCommand) Category() string       { return "🔒 Security" }
func (c *VerificationCommand) RequireAdmin() bool     { return true }

func (c *VerificationCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Where verification prompts are posted",
				Required:    true,
			},
		},
	}
}

func (c *VerificationCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	opt := core.Option(opts, "channel")
	if opt == nil {
		return ctx.Reply("A channel is required.")
	}

	channelID := opt.ChannelValue(nil).ID
	guildID := ctx.GuildID
	ctx.Deps.Runner.Go("persist-verification", func() error {
		return ctx.Deps.Storage.SetVerificationChannel(guildID, channelID)
	})
	return ctx.Reply(fmt.Sprintf("New members will be greeted in <#%s>.", channelID))
}

func init() {
	core.RegisterCommand(&VerificationCommand{})
}
