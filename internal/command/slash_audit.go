// /internal/command/slash_audit.go
package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type AuditCommand struct{}

func (c *AuditCommand) Name() string           { return "audit" }
func (c *AuditCommand) Description() string    { return "Show recent moderation and security actions" }
func (c *AuditCommand) Module() feature.Module { return feature.ModuleSecurity }
func (c *AuditCommand) Category() string       { return "🔒 Security" }
func (c *AuditCommand) RequireAdmin() bool     { return true }

func (c *AuditCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "limit",
				Description: "How many entries, defaults to 10",
				MinValue:    float64Ptr(1),
				MaxValue:    50,
			},
		},
	}
}

func (c *AuditCommand) Run(ctx *core.SlashContext) error {
	limit := 10
	_, opts := ctx.Options()
	if opt := core.Option(opts, "limit"); opt != nil {
		limit = int(opt.IntValue())
	}

	entries, err := ctx.Deps.Storage.AuditLog(ctx.GuildID, limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ctx.Reply("The audit log is empty.")
	}

	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, fmt.Sprintf("`%s` **%s** <@%s>: %s", e.CreatedAt.Format("2006-01-02 15:04"), e.Action, e.ActorID, e.Detail))
	}
	return ctx.Reply(strings.Join(lines, "\n"))
}

func init() {
	core.RegisterCommand(&AuditCommand{})
}
