// /internal/command/slash_workflow.go
package command

import (
	"fmt"
	"sort"
	"strings"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
	"exobot/internal/storage"
)

// WorkflowCommand manages trigger/action automations. Like custom commands
// it is always available.
type WorkflowCommand struct{}

func (c *WorkflowCommand) Name() string           { return "workflow" }
func (c *WorkflowCommand) Description() string    { return "Manage server automations" }
func (c *WorkflowCommand) Module() feature.Module { return "" }
func (c *WorkflowCommand) Category() string       { return "⚙️ Core" }
func (c *WorkflowCommand) RequireAdmin() bool     { return true }

func (c *WorkflowCommand) SlashDefinition() *discordgo.ApplicationCommand {
	idOption := &discordgo.ApplicationCommandOption{
		Type:        discordgo.ApplicationCommandOptionString,
		Name:        "id",
		Description: "Workflow identifier",
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
				Description: "Create or replace a workflow",
				Options: []*discordgo.ApplicationCommandOption{
					idOption,
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "trigger",
						Description: "What starts the workflow",
						Required:    true,
					},
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "action",
						Description: "What the workflow does",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "remove",
				Description: "Delete a workflow",
				Options:     []*discordgo.ApplicationCommandOption{idOption},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "list",
				Description: "List workflows",
			},
		},
	}
}

func (c *WorkflowCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()
	guildID := ctx.GuildID

	switch sub {
	case "add":
		idOpt := core.Option(opts, "id")
		triggerOpt := core.Option(opts, "trigger")
		actionOpt := core.Option(opts, "action")
		if idOpt == nil || triggerOpt == nil || actionOpt == nil {
			return ctx.Reply("An id, a trigger and an action are required.")
		}
		wf := storage.Workflow{
			ID:      idOpt.StringValue(),
			Trigger: triggerOpt.StringValue(),
			Action:  actionOpt.StringValue(),
			Enabled: true,
		}
		if err := ctx.Deps.Storage.UpsertWorkflow(guildID, wf); err != nil {
			return err
		}
		return ctx.Reply(fmt.Sprintf("Workflow `%s` saved.", wf.ID))

	case "remove":
		idOpt := core.Option(opts, "id")
		if idOpt == nil {
			return ctx.Reply("An id is required.")
		}
		existed, err := ctx.Deps.Storage.DeleteWorkflow(guildID, idOpt.StringValue())
		if err != nil {
			return err
		}
		if !existed {
			return ctx.Reply(fmt.Sprintf("No workflow named `%s` exists.", idOpt.StringValue()))
		}
		return ctx.Reply(fmt.Sprintf("Workflow `%s` removed.", idOpt.StringValue()))

	case "list":
		workflows, err := ctx.Deps.Storage.Workflows(guildID)
		if err != nil {
			return err
		}
		if len(workflows) == 0 {
			return ctx.Reply("This server has no workflows.")
		}
		lines := make([]string, 0, len(workflows))
		for _, wf := range workflows {
			state := "on"
			if !wf.Enabled {
				state = "off"
			}
			lines = append(lines, fmt.Sprintf("`%s` [%s]: %s -> %s", wf.ID, state, wf.Trigger, wf.Action))
		}
		sort.Strings(lines)
		return ctx.Reply(strings.Join(lines, "\n"))
	}

	return ctx.Reply("Unknown subcommand.")
}

func init() {
	core.RegisterCommand(&WorkflowCommand{})
}
