// /internal/command/slash_signal.go
package command

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type SignalCommand struct{}

func (c *SignalCommand) Name() string           { return "signal" }
func (c *SignalCommand) Description() string    { return "Broadcast a staff announcement in this channel" }
func (c *SignalCommand) Module() feature.Module { return feature.ModuleSecurity }
func (c *SignalCommand) Category() string       { return "🔒 Security" }
func (c *SignalCommand) RequireAdmin() bool     { return true }

func (c *SignalCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "message",
				Description: "The announcement",
				Required:    true,
			},
		},
	}
}

func (c *SignalCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	opt := core.Option(opts, "message")
	if opt == nil {
		return ctx.Reply("A message is required.")
	}

	message := opt.StringValue()
	guildID, actorID := ctx.GuildID, ctx.UserID
	now := time.Now()
	ctx.Deps.Runner.Go("persist-signal", func() error {
		if err := ctx.Deps.Storage.AddSignal(guildID, message, now); err != nil {
			return err
		}
		return ctx.Deps.Storage.AppendAudit(guildID, "signal", actorID, message, now)
	})
	return ctx.Reply("📣 " + message)
}

func init() {
	core.RegisterCommand(&SignalCommand{})
}
