// /internal/command/slash_ban.go
package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type BanCommand struct{}

func (c *BanCommand) Name() string           { return "ban" }
func (c *BanCommand) Description() string    { return "Ban a member from the server" }
func (c *BanCommand) Module() feature.Module { return feature.ModuleModeration }
func (c *BanCommand) Category() string       { return "🛡️ Moderation" }
func (c *BanCommand) RequireAdmin() bool     { return true }

func (c *BanCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to ban",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "Why",
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "purge-days",
				Description: "Days of messages to purge (0-7)",
				MinValue:    float64Ptr(0),
				MaxValue:    7,
			},
		},
	}
}

func (c *BanCommand) Run(ctx *core.SlashContext) error {
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
	purgeDays := 0
	if opt := core.Option(opts, "purge-days"); opt != nil {
		purgeDays = int(opt.IntValue())
	}

	if err := ctx.Session.GuildBanCreateWithReason(ctx.GuildID, targetID, reason, purgeDays); err != nil {
		return fmt.Errorf("ban member: %w", err)
	}

	if ctx.Deps.Features.Enabled(ctx.GuildID, feature.ModuleSecurity) {
		guildID, actorID := ctx.GuildID, ctx.UserID
		now := time.Now()
		ctx.Deps.Runner.Go("audit-ban", func() error {
			return ctx.Deps.Storage.AppendAudit(guildID, "ban", actorID, fmt.Sprintf("banned %s: %s", targetID, reason), now)
		})
	}
	return ctx.Reply(fmt.Sprintf("<@%s> has been banned.", targetID))
}

func init() {
	core.RegisterCommand(&BanCommand{})
}
