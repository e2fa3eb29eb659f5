// /internal/command/slash_transfer.go
package command

import (
	"errors"
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
	"exobot/internal/storage"
)

type TransferCommand struct{}

func (c *TransferCommand) Name() string           { return "transfer" }
func (c *TransferCommand) Description() string    { return "Send coins to another member" }
func (c *TransferCommand) Module() feature.Module { return feature.ModuleEconomy }
func (c *TransferCommand) Category() string       { return "💰 Economy" }
func (c *TransferCommand) RequireAdmin() bool     { return false }

func (c *TransferCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionUser,
				Name:        "user",
				Description: "Recipient",
				Required:    true,
			},
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "amount",
				Description: "How many coins to send",
				Required:    true,
				MinValue:    float64Ptr(1),
			},
		},
	}
}

func (c *TransferCommand) Run(ctx *core.SlashContext) error {
	_, opts := ctx.Options()
	userOpt := core.Option(opts, "user")
	amountOpt := core.Option(opts, "amount")
	if userOpt == nil || amountOpt == nil {
		return ctx.Reply("A recipient and an amount are required.")
	}

	targetID := userOpt.UserValue(nil).ID
	amount := amountOpt.IntValue()
	if targetID == ctx.UserID {
		return ctx.Reply("You cannot transfer coins to yourself.")
	}
	if amount <= 0 {
		return ctx.Reply("The amount must be positive.")
	}

	err := ctx.Deps.Storage.TransferBalance(ctx.GuildID, ctx.UserID, targetID, amount)
	if errors.Is(err, storage.ErrInsufficientFunds) {
		return ctx.Reply("You do not have that many coins.")
	}
	if err != nil {
		return err
	}
	return ctx.Reply(fmt.Sprintf("Sent %d coin(s) to <@%s>.", amount, targetID))
}

func float64Ptr(f float64) *float64 { return &f }

func init() {
	core.RegisterCommand(&TransferCommand{})
}
