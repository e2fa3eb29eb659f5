// /internal/core/command.go
package core

import (
	"exobot/internal/config"
	"exobot/internal/feature"
	"exobot/internal/fireforget"
	"exobot/internal/moderate"
	"exobot/internal/storage"

	"github.com/bwmarrin/discordgo"
)

type Command interface {
	Name() string
	Description() string
	Module() feature.Module // empty means always available
	Category() string
	RequireAdmin() bool
	Run(ctx *SlashContext) error
}

// SlashProvider - how this command should be registered with Discord
type SlashProvider interface {
	SlashDefinition() *discordgo.ApplicationCommand
}

// Responder abstracts the acknowledge/edit pair of a deferred interaction.
type Responder interface {
	Ack() error
	Edit(content string) error
}

// Deps is the shared runtime handed to every command.
type Deps struct {
	Storage  *storage.Storage
	Features *feature.Registry
	Topics   *feature.TopicCache
	Pipeline *moderate.Pipeline
	Config   *config.Config
	Runner   *fireforget.Runner

	// Resync, when set, re-registers a guild's slash commands after a change
	// in enabled modules or guild-defined commands.
	Resync func(guildID string)
}

// SlashContext - what runtime hands you when executing a slash command
type SlashContext struct {
	Session   *discordgo.Session
	Event     *discordgo.InteractionCreate
	Responder Responder
	Deps      *Deps

	GuildID   string
	ChannelID string
	UserID    string
	Admin     bool

	replied bool
}

// Reply sends the single final response of the interaction. The dispatcher
// only injects a fallback when no command code called this.
func (c *SlashContext) Reply(content string) error {
	c.replied = true
	return c.Responder.Edit(content)
}

// Replied reports whether a final response went out.
func (c *SlashContext) Replied() bool {
	return c.replied
}

// Options returns the option list of the invoked command, descending into a
// subcommand when present.
func (c *SlashContext) Options() (string, []*discordgo.ApplicationCommandInteractionDataOption) {
	data := c.Event.ApplicationCommandData()
	if len(data.Options) == 1 && data.Options[0].Type == discordgo.ApplicationCommandOptionSubCommand {
		return data.Options[0].Name, data.Options[0].Options
	}
	return "", data.Options
}

// Option finds a named option in a list, nil when absent.
func Option(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) *discordgo.ApplicationCommandInteractionDataOption {
	for _, o := range opts {
		if o.Name == name {
			return o
		}
	}
	return nil
}
