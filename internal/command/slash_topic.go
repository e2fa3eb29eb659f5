// /internal/command/slash_topic.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type TopicCommand struct{}

func (c *TopicCommand) Name() string           { return "topic" }
func (c *TopicCommand) Description() string    { return "Manage the moderated topic of this channel" }
func (c *TopicCommand) Module() feature.Module { return feature.ModuleHelix }
func (c *TopicCommand) Category() string       { return "🧠 Helix" }
func (c *TopicCommand) RequireAdmin() bool     { return true }

func (c *TopicCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "set",
				Description: "Set the topic messages must stay on",
				Options: []*discordgo.ApplicationCommandOption{
					{
						Type:        discordgo.ApplicationCommandOptionString,
						Name:        "topic",
						Description: "The topic",
						Required:    true,
					},
				},
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "show",
				Description: "Show the current topic",
			},
			{
				Type:        discordgo.ApplicationCommandOptionSubCommand,
				Name:        "clear",
				Description: "Stop topic moderation in this channel",
			},
		},
	}
}

func (c *TopicCommand) Run(ctx *core.SlashContext) error {
	sub, opts := ctx.Options()
	guildID, channelID := ctx.GuildID, ctx.ChannelID

	switch sub {
	case "set":
		opt := core.Option(opts, "topic")
		if opt == nil {
			return ctx.Reply("A topic is required.")
		}
		topic := opt.StringValue()
		ctx.Deps.Topics.Set(channelID, topic)
		ctx.Deps.Runner.Go("persist-topic", func() error {
			return ctx.Deps.Storage.SetChannelTopic(guildID, channelID, topic)
		})
		return ctx.Reply(fmt.Sprintf("This channel is now moderated for topic: %s", topic))

	case "show":
		topic, ok := ctx.Deps.Topics.Topic(channelID)
		if !ok || topic == "" {
			return ctx.Reply("This channel has no moderated topic.")
		}
		return ctx.Reply(fmt.Sprintf("Current topic: %s", topic))

	case "clear":
		ctx.Deps.Topics.Delete(channelID)
		ctx.Deps.Runner.Go("delete-topic", func() error {
			return ctx.Deps.Storage.DeleteChannelTopic(guildID, channelID)
		})
		return ctx.Reply("Topic moderation disabled for this channel.")
	}

	return ctx.Reply("Unknown subcommand.")
}

func init() {
	core.RegisterCommand(&TopicCommand{})
}
