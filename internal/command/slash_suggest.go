// /internal/command/slash_suggest.go
package command

import (
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type SuggestCommand struct{}

func (c *SuggestCommand) Name() string           { return "suggest" }
func (c *SuggestCommand) Description() string    { return "Suggest an improvement for the server" }
func (c *SuggestCommand) Module() feature.Module { return feature.ModuleUtility }
func (c *SuggestCommand) Category() string       { return "🔧 Utility" }
func (c *SuggestCommand) RequireAdmin() bool     { return false }

func (c *SuggestCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "text",
				Description: "Your suggestion",
				Required:    true,
			},
		},
	}
}

func (c *SuggestCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	opt := core.Option(opts, "text")
	if opt == nil {
		return ctx.Reply("Some text is required.")
	}

	text := opt.StringValue()
	guildID, userID := ctx.GuildID, ctx.UserID
	now := time.Now()
	ctx.Deps.Runner.Go("persist-suggestion", func() error {
		return ctx.Deps.Storage.AddSuggestion(guildID, userID, text, now)
	})
	return ctx.Reply("Thanks, your suggestion has been recorded. 💡")
}

func init() {
	core.RegisterCommand(&SuggestCommand{})
}
