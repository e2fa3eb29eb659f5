// /internal/command/slash_warn.go
package command

import (
	"fmt"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type WarnCommand struct{}

func (c *WarnCommand) Name() string           { return "warn" }
func (c *WarnCommand) Description() string    { return "Manage member warnings" }
func (c *WarnCommand) Module() feature.Module { return feature.ModuleModeration }
func (c *WarnCommand) Category() string       { return "🛡️ Moderation" }
func (c *WarnCommand) RequireAdmin() bool     { return true }

func (c *WarnCommand) SlashDefinition() *discordgo.ApplicationCommand {
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
				Name:        "add",
				Description: "Warn a member",
				Options: []*discordgo.ApplicationCommandOption{
					userOption,
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "reason",
						Description: "Why the warning is issued",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show a member's warnings",
				Options:     []*discordgo.ApplicationCommandOption{userOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "clear",
				Description: "Clear a member's warnings",
				Options:     []*discordgo.ApplicationCommandOption{userOption},
			},
		},
	}
}

func (c *WarnCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()
	userOpt := core.Option(opts, "user")
	if userOpt == nil {
		return ctx.Reply("A target user is required.")
	}
	targetID := userOpt.UserValue(nil).ID

	switch sub {
	case "add":
		reason := "unspecified"
		if r := core.Option(opts, "reason"); r != nil {
			reason = r.StringValue()
		}
		now := time.Now()
		guildID, channelID := ctx.GuildID, ctx.ChannelID
		ctx.Deps.Runner.Go("persist-warning", func() error {
			return ctx.Deps.Storage.AddWarning(guildID, targetID, channelID, reason, now)
		})
		return ctx.Reply(fmt.Sprintf("<@%s> has been warned: %s", targetID, reason))

	case "list":
		warnings, err := ctx.Deps.Storage.Warnings(ctx.GuildID, targetID)
		if err != nil {
			return err
		}
		if len(warnings) == 0 {
			return ctx.Reply(fmt.Sprintf("<@%s> has no warnings.", targetID))
		}
		lines := make([]string, 0, len(warnings)+1)
		lines = append(lines, fmt.Sprintf("<@%s> has %d warning(s):", targetID, len(warnings)))
		for i, w := range warnings {
			lines = append(lines, fmt.Sprintf("%d. %s (%s)", i+1, w.Reason, w.CreatedAt.Format("2006-01-02 15:04")))
		}
		return ctx.Reply(strings.Join(lines, "\n"))

	case "clear":
		ctx.Deps.Pipeline.ResetWarnings(targetID, ctx.ChannelID)
		removed, err := ctx.Deps.Storage.ClearWarnings(ctx.GuildID, targetID)
		if err != nil {
			return err
		}
		return ctx.Reply(fmt.Sprintf("Cleared %d warning(s) for <@%s>.", removed, targetID))
	}

	return ctx.Reply("Unknown subcommand.")
}

func init() {
	core.RegisterCommand(&WarnCommand{})
}
