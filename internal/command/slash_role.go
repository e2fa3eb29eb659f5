// /internal/command/slash_role.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type RoleCommand struct{}

func (c *RoleCommand) Name() string           { return "role" }
func (c *RoleCommand) Description() string    { return "Assign or remove a role" }
func (c *RoleCommand) Module() feature.Module { return feature.ModuleUtility }
func (c *RoleCommand) Category() string       { return "🔧 Utility" }
func (c *RoleCommand) RequireAdmin() bool     { return true }

func (c *RoleCommand) SlashDefinition() *discordgo.ApplicationCommand {
	userOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionUser,
		Name:        "user",
		Description: "Target member",
		Required:    true,
	}
	roleOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionRole,
		Name:        "role",
		Description: "Role to change",
		Required:    true,
	}

	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "give",
				Description: "Give a role to a member",
				Options:     []*discordgo.ApplicationCommandOption{userOption, roleOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "take",
				Description: "Remove a role from a member",
				Options:     []*discordgo.ApplicationCommandOption{userOption, roleOption},
			},
		},
	}
}

func (c *RoleCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()
	userOpt := core.Option(opts, "user")
	roleOpt := core.Option(opts, "role")
	if userOpt == nil || roleOpt == nil {
		return ctx.Reply("A user and a role are required.")
	}

	targetID := userOpt.UserValue(nil).ID
	roleID := roleOpt.RoleValue(nil, "").ID

	switch sub {
	case "give":
		if err := ctx.Session.GuildMemberRoleAdd(ctx.GuildID, targetID, roleID); err != nil {
			return fmt.Errorf("add role: %w", err)
		}
		return ctx.Reply(fmt.Sprintf("Gave <@&%s> to <@%s>.", roleID, targetID))
	case "take":
		if err := ctx.Session.GuildMemberRoleRemove(ctx.GuildID, targetID, roleID); err != nil {
			return fmt.Errorf("remove role: %w", err)
		}
		return ctx.Reply(fmt.Sprintf("Removed <@&%s> from <@%s>.", roleID, targetID))
	}

	return ctx.Reply("Unknown subcommand.")
}

func init() {
	core.RegisterCommand(&RoleCommand{})
}
