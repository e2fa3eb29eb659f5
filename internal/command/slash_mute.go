// /internal/command/slash_mute.go
package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type MuteCommand struct{}

func (c *MuteCommand) Name() string           { return "mute" }
func (c *MuteCommand) Description() string    { return "Time a member out or lift a timeout" }
func (c *MuteCommand) Module() feature.Module { return feature.ModuleModeration }
func (c *MuteCommand) Category() string       { return "🛡️ Moderation" }
func (c *MuteCommand) RequireAdmin() bool     { return true }

func (c *MuteCommand) SlashDefinition() *discordgo.ApplicationCommand {
	userOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "Target member",
		Required:    true,
	}

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Time a member out",
				Options: []*discordgo.ApplicationCommandOption{
					userOption,
					{
						Type:        discordgo.ApplicationCommandOptionInteger,
						Name:        "minutes",
						Description: "Duration in minutes, defaults to 10",
						MinValue:    float64Ptr(1),
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "lift",
				Description: "Lift a member's timeout",
				Options:     []*discordgo.ApplicationCommandOption{userOption},
			},
		},
	}
}

func (c *MuteCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()
	userOpt := core.Option(opts, "user")
	if userOpt == nil {
		return ctx.Reply("A target user is required.")
	}
	targetID := userOpt.UserValue(nil).ID
	now := time.Now()

	switch sub {
	case "set":
		minutes := int64(10)
		if opt := core.Option(opts, "minutes"); opt != nil {
			minutes = opt.IntValue()
		}
		until := now.Add(time.Duration(minutes) * time.Minute)
		if err := ctx.Session.GuildMemberTimeout(ctx.GuildID, targetID, &until); err != nil {
			return fmt.Errorf("timeout member: %w", err)
		}
		c.audit(ctx, "mute", fmt.Sprintf("muted %s for %dm", targetID, minutes), now)
		return ctx.Reply(fmt.Sprintf("<@%s> is timed out for %d minute(s).", targetID, minutes))

	case "lift":
		if err := ctx.Session.GuildMemberTimeout(ctx.GuildID, targetID, nil); err != nil {
			return fmt.Errorf("lift timeout: %w", err)
		}
		c.audit(ctx, "unmute", "lifted timeout for "+targetID, now)
		return ctx.Reply(fmt.Sprintf("Timeout lifted for <@%s>.", targetID))
	}

	return ctx.Reply("Unknown subcommand.")
}

func (c *MuteCommand) audit(ctx *core.SlashContext, action, detail string, at time.Time) {
	if !ctx.Deps.Features.Enabled(ctx.GuildID, feature.ModuleSecurity) {
		return
	}
	guildID, actorID := ctx.GuildID, ctx.UserID
	ctx.Deps.Runner.Go("audit-"+action, func() error {
		return ctx.Deps.Storage.AppendAudit(guildID, action, actorID, detail, at)
	})
}

func init() {
	core.RegisterCommand(&MuteCommand{})
}
