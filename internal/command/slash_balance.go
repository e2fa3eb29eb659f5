// /internal/command/slash_balance.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type BalanceCommand struct{}

func (c *BalanceCommand) Name() string           { return "balance" }
func (c *BalanceCommand) Description() string    { return "Show a member's currency balance" }
func (c *BalanceCommand) Module() feature.Module { return feature.ModuleEconomy }
func (c *BalanceCommand) Category() string       { return "💰 Economy" }
func (c *BalanceCommand) RequireAdmin() bool     { return false }

func (c *BalanceCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Member to look up, defaults to you",
			},
		},
	}
}

func (c *BalanceCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	targetID := ctx.UserID
	if opt := core.Option(opts, "user"); opt != nil {
		targetID = opt.UserValue(nil).ID
	}

	balance, err := ctx.Deps.Storage.Balance(ctx.GuildID, targetID)
	if err != nil {
		return err
	}
	return ctx.Reply(fmt.Sprintf("<@%s> has %d coin(s).", targetID, balance))
}

func init() {
	core.RegisterCommand(&BalanceCommand{})
}
