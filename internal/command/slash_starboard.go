// /internal/command/slash_starboard.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type StarboardCommand struct{}

func (c *StarboardCommand) Name() string           { return "starboard" }
func (c *StarboardCommand) Description() string    { return "Configure the starboard" }
func (c *StarboardCommand) Module() feature.Module { return feature.ModulePlugin }
func (c *StarboardCommand) Category() string       { return "✨ Plugins" }
func (c *StarboardCommand) RequireAdmin() bool     { return true }

func (c *StarboardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionChannel,
				Name:        "channel",
				Description: "Where starred messages are reposted",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "threshold",
				Description: "Stars needed, defaults to 3",
				MinValue:    float64Ptr(1),
			},
		},
	}
}

func (c *StarboardCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	chanOpt := core.Option(opts, "channel")
	if chanOpt == nil {
		return ctx.Reply("A channel is required.")
	}

	threshold := 3
	if opt := core.Option(opts, "threshold"); opt != nil {
		threshold = int(opt.IntValue())
	}

	channelID := chanOpt.ChannelValue(nil).ID
	guildID := ctx.GuildID
	ctx.Deps.Runner.Go("persist-starboard", func() error {
		return ctx.Deps.Storage.SetStarboard(guildID, channelID, threshold)
	})
	return ctx.Reply(fmt.Sprintf("Messages with %d ⭐ will be reposted to <#%s>.", threshold, channelID))
}

func init() {
	core.RegisterCommand(&StarboardCommand{})
}
