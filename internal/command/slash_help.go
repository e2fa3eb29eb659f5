// /internal/command/slash_help.go
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type HelpCommand struct{}

func (c *HelpCommand) Name() string           { return "help" }
func (c *HelpCommand) Description() string    { return "List available commands" }
func (c *HelpCommand) Module() feature.Module { return "" }
func (c *HelpCommand) Category() string       { return "⚙️ Core" }
func (c *HelpCommand) RequireAdmin() bool     { return false }

func (c *HelpCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *HelpCommand) Run(ctx *core.SlashContext) error {
	byCategory := map[string][]string{}
	for _, cmd := range core.AllCommands() {
		if m := cmd.Module(); m != "" && !ctx.Deps.Features.Enabled(ctx.GuildID, m) {
			continue
		}
		line := fmt.Sprintf("`/%s` — %s", cmd.Name(), cmd.Description())
		byCategory[cmd.Category()] = append(byCategory[cmd.Category()], line)
	}

	categories := make([]string, 0, len(byCategory))
	for cat := range byCategory {
		categories = append(categories, cat)
	}
	sort.Strings(categories)

	var b strings.Builder
	for _, cat := range categories {
		lines := byCategory[cat]
		sort.Strings(lines)
		b.WriteString("**" + cat + "**\n")
		b.WriteString(strings.Join(lines, "\n"))
		b.WriteString("\n\n")
	}

	return ctx.Reply(strings.TrimSpace(b.String()))
}

func init() {
	core.RegisterCommand(&HelpCommand{})
}
