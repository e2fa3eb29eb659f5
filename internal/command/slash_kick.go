// /internal/command/slash_kick.go
package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type KickCommand struct{}

func (c *KickCommand) Name() string           { return "kick" }
func (c *KickCommand) Description() string    { return "Kick a member from the server" }
func (c *KickCommand) Module() feature.Module { return feature.ModuleModeration }
func (c *KickCommand) Category() string       { return "🛡️ Moderation" }
func (c *KickCommand) RequireAdmin() bool     { return true }

func (c *KickCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to kick",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Why",
			},
		},
	}
}

func (c *KickCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	userOpt := core.Option(opts, "user")
	if userOpt == nil {
		return ctx.Reply("A target user is required.")
	}
	targetID := userOpt.UserValue(nil).ID

	reason := ""
	if opt := core.Option(opts, "reason"); opt != nil {
		reason = opt.StringValue()
	}

	if err := ctx.Session.GuildMemberDeleteWithReason(ctx.GuildID, targetID, reason); err != nil {
		return fmt.Errorf("kick member: %w", err)
	}

	if ctx.Deps.Features.Enabled(ctx.GuildID, feature.ModuleSecurity) {
		guildID, actorID := ctx.GuildID, ctx.UserID
		now := time.Now()
		ctx.Deps.Runner.Go("audit-kick", func() error {
			return ctx.Deps.Storage.AppendAudit(guildID, "kick", actorID, fmt.Sprintf("kicked %s: %s", targetID, reason), now)
		})
	}
	return ctx.Reply(fmt.Sprintf("<@%s> has been kicked.", targetID))
}

func init() {
	core.RegisterCommand(&KickCommand{})
}
