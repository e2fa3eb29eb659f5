// /internal/command/slash_birthday.go
package command

import (
	"fmt"
	"time"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type BirthdayCommand struct{}

func (c *BirthdayCommand) Name() string { return "birthday" }
func (c *BirthdayCommand) Description() string {
	return "Register your birthday for the daily shoutout"
}
func (c *BirthdayCommand) Module() feature.Module { return feature.ModuleUtility }
func (c *BirthdayCommand) Category() string       { return "🔧 Utility" }
func (c *BirthdayCommand) RequireAdmin() bool     { return false }

func (c *BirthdayCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionString,
				Name:        "date",
				Description: "Your birthday as MM-DD, for example 03-14",
				Required:    true,
			},
		},
	}
}

func (c *BirthdayCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	opt := core.Option(opts, "date")
	if opt == nil {
		return ctx.Reply("A date is required.")
	}

	raw := opt.StringValue()
	parsed, err := time.Parse("01-02", raw)
	if err != nil {
		return ctx.Reply("That does not look like a valid MM-DD date.")
	}
	monthDay := parsed.Format("01-02")

	guildID, userID := ctx.GuildID, ctx.UserID
	ctx.Deps.Runner.Go("persist-birthday", func() error {
		return ctx.Deps.Storage.SetBirthday(guildID, userID, monthDay)
	})
	return ctx.Reply(fmt.Sprintf("Birthday saved as %s. 🎂", monthDay))
}

func init() {
	core.RegisterCommand(&BirthdayCommand{})
}
