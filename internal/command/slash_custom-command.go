// /internal/command/slash_custom-command.go
package command

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

// CustomCommandCommand manages guild-defined commands. It stays available
// regardless of which modules a guild has on, so admins can never lock
// themselves out of their own definitions.
type CustomCommandCommand struct{}

func (c *CustomCommandCommand) Name() string           { return "custom-command" }
func (c *CustomCommandCommand) Description() string    { return "Manage server-defined commands" }
func (c *CustomCommandCommand) Module() feature.Module { return "" }
func (c *CustomCommandCommand) Category() string       { return "⚙️ Core" }
func (c *CustomCommandCommand) RequireAdmin() bool     { return true }

func (c *CustomCommandCommand) SlashDefinition() *discordgo.ApplicationCommand {
	nameOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "name",
		Description: "Command name",
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
				Description: "Create or replace a command",
				Options: []*discordgo.ApplicationCommandOption{
					nameOption,
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "response",
						Description: "What the command replies",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Delete a command",
				Options:     []*discordgo.ApplicationCommandOption{nameOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List server-defined commands",
			},
		},
	}
}

func (c *CustomCommandCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()
	guildID := ctx.GuildID

	switch sub {
	case "add":
		nameOpt := core.Option(opts, "name")
		respOpt := core.Option(opts, "response")
		if nameOpt == nil || respOpt == nil {
			return ctx.Reply("A name and a response are required.")
		}
		name := strings.ToLower(nameOpt.StringValue())
		if _, reserved := core.GetCommand(name); reserved {
			return ctx.Reply(fmt.Sprintf("`/%s` is a built-in command and cannot be replaced.", name))
		}
		if err := ctx.Deps.Storage.UpsertCustomCommand(guildID, name, respOpt.StringValue(), ctx.UserID, time.Now()); err != nil {
			return err
		}
		if ctx.Deps.Resync != nil {
			ctx.Deps.Resync(guildID)
		}
		return ctx.Reply(fmt.Sprintf("`/%s` saved.", name))

	case "remove":
		nameOpt := core.Option(opts, "name")
		if nameOpt == nil {
			return ctx.Reply("A name is required.")
		}
		name := strings.ToLower(nameOpt.StringValue())
		existed, err := ctx.Deps.Storage.DeleteCustomCommand(guildID, name)
		if err != nil {
			return err
		}
		if !existed {
			return ctx.Reply(fmt.Sprintf("No command named `/%s` exists.", name))
		}
		if ctx.Deps.Resync != nil {
			ctx.Deps.Resync(guildID)
		}
		return ctx.Reply(fmt.Sprintf("`/%s` removed.", name))

	case "list":
		commands, err := ctx.Deps.Storage.CustomCommands(guildID)
		if err != nil {
			return err
		}
		if len(commands) == 0 {
			return ctx.Reply("This server has no custom commands.")
		}
		names := make([]string, 0, len(commands))
		for name := range commands {
			names = append(names, "`/"+name+"`")
		}
		sort.Strings(names)
		return ctx.Reply("Custom commands: " + strings.Join(names, ", "))
	}

	return ctx.Reply("Unknown subcommand.")
}

func init() {
	core.RegisterCommand(&CustomCommandCommand{})
}
