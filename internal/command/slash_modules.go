// /internal/command/slash_modules.go
package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type ModulesCommand struct{}

func (c *ModulesCommand) Name() string           { return "modules" }
func (c *ModulesCommand) Description() string    { return "View or toggle feature modules" }
func (c *ModulesCommand) Module() feature.Module { return "" }
func (c *ModulesCommand) Category() string       { return "⚙️ Core" }
func (c *ModulesCommand) RequireAdmin() bool     { return true }

func (c *ModulesCommand) SlashDefinition() *discordgo.ApplicationCommand {
	moduleOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "module",
		Description: "Module name",
		Required:    true,
	}
	for _, m := range feature.AllModules() {
		moduleOption.Choices = append(moduleOption.Choices, &discordgo.ApplicationCommandOptionChoice{
			Name:  string(m),
			Value: string(m),
		})
	}

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "Show which modules are enabled",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "enable",
				Description: "Enable a module",
				Options:     []*discordgo.ApplicationCommandOption{moduleOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "disable",
				Description: "Disable a module",
				Options:     []*discordgo.ApplicationCommandOption{moduleOption},
			},
		},
	}
}

func (c *ModulesCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()

	switch sub {
	case "list":
		enabled := ctx.Deps.Features.Modules(ctx.GuildID)
		var lines []string
		for _, m := range feature.AllModules() {
			state := "disabled"
			for _, e := range enabled {
				if e == m {
					state = "enabled"
					break
				}
			}
			lines = append(lines, fmt.Sprintf("`%s`: %s", m, state))
		}
		return ctx.Reply(strings.Join(lines, "\n"))

	case "enable", "disable":
		opt := core.Option(opts, "module")
		if opt == nil {
			return ctx.Reply("Module name is required.")
		}
		m, ok := feature.ParseModule(opt.StringValue())
		if !ok {
			return ctx.Reply(fmt.Sprintf("Unknown module %q.", opt.StringValue()))
		}

		current := ctx.Deps.Features.Modules(ctx.GuildID)
		next := make([]feature.Module, 0, len(current)+1)
		for _, e := range current {
			if e != m {
				next = append(next, e)
			}
		}
		if sub == "enable" {
			next = append(next, m)
		}

		ctx.Deps.Features.SetModules(ctx.GuildID, next)

		names := make([]string, len(next))
		for i, e := range next {
			names[i] = string(e)
		}
		guildID := ctx.GuildID
		ctx.Deps.Runner.Go("persist-modules", func() error {
			return ctx.Deps.Storage.SetEnabledModules(guildID, names)
		})
		if ctx.Deps.Resync != nil {
			ctx.Deps.Resync(guildID)
		}

		return ctx.Reply(fmt.Sprintf("Module `%s` %sd.", m, sub))
	}

	return ctx.Reply("Unknown subcommand.")
}

func init() {
	core.RegisterCommand(&ModulesCommand{})
}
