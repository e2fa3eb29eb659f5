// /internal/command/slash_poll.go
package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type PollCommand struct{}

func (c *PollCommand) Name() string           { return "poll" }
func (c *PollCommand) Description() string    { return "Start a two-option poll" }
func (c *PollCommand) Module() feature.Module { return feature.ModuleGaming }
func (c *PollCommand) Category() string       { return "🎲 Gaming" }
func (c *PollCommand) RequireAdmin() bool     { return false }

func (c *PollCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "question",
				Description: "What to ask",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "option1",
				Description: "First choice",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "option2",
				Description: "Second choice",
				Required:    true,
			},
		},
	}
}

func (c *PollCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	question := core.Option(opts, "question")
	option1 := core.Option(opts, "option1")
	option2 := core.Option(opts, "option2")
	if question == nil || option1 == nil || option2 == nil {
		return ctx.Reply("A question and two options are required.")
	}

	q, o1, o2 := question.StringValue(), option1.StringValue(), option2.StringValue()
	guildID := ctx.GuildID
	now := time.Now()
	ctx.Deps.Runner.Go("persist-poll", func() error {
		return ctx.Deps.Storage.AddPoll(guildID, q, o1, o2, now)
	})

	msg := fmt.Sprintf("📊 **%s**\n1️⃣ %s\n2️⃣ %s\nVote with the reactions below!", q, o1, o2)
	if err := ctx.Reply(msg); err != nil {
		return err
	}

	if m, err := ctx.Session.InteractionResponse(ctx.Event.Interaction); err == nil {
		_ = ctx.Session.MessageReactionAdd(m.ChannelID, m.ID, "1️⃣")
		_ = ctx.Session.MessageReactionAdd(m.ChannelID, m.ID, "2️⃣")
	}
	return nil
}

func init() {
	core.RegisterCommand(&PollCommand{})
}
