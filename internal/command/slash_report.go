// /internal/command/slash_report.go
package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type ReportCommand struct{}

func (c *ReportCommand) Name() string           { return "report" }
func (c *ReportCommand) Description() string    { return "Report a member to the staff" }
func (c *ReportCommand) Module() feature.Module { return feature.ModuleSecurity }
func (c *ReportCommand) Category() string       { return "🔒 Security" }
func (c *ReportCommand) RequireAdmin() bool     { return false }

func (c *ReportCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to report",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "reason",
				Description: "What happened",
				Required:    true,
			},
		},
	}
}

func (c *ReportCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	userOpt := core.Option(opts, "user")
	reasonOpt := core.Option(opts, "reason")
	if userOpt == nil || reasonOpt == nil {
		return ctx.Reply("A user and a reason are required.")
	}

	targetID := userOpt.UserValue(nil).ID
	reason := reasonOpt.StringValue()
	guildID, reporterID := ctx.GuildID, ctx.UserID
	now := time.Now()

	ctx.Deps.Runner.Go("persist-report", func() error {
		if err := ctx.Deps.Storage.AddReport(guildID, targetID, reason, now); err != nil {
			return err
		}
		return ctx.Deps.Storage.AppendAudit(guildID, "report", reporterID, fmt.Sprintf("reported %s: %s", targetID, reason), now)
	})
	return ctx.Reply("Report filed. The staff will take a look.")
}

func init() {
	core.RegisterCommand(&ReportCommand{})
}
