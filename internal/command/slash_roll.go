// /internal/command/slash_roll.go
package command

import (
	"fmt"
	"math/rand"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type RollCommand struct{}

func (c *RollCommand) Name() string           { return "roll" }
func (c *RollCommand) Description() string    { return "Roll a die" }
func (c *RollCommand) Module() feature.Module { return feature.ModuleGaming }
func (c *RollCommand) Category() string       { return "🎲 Gaming" }
func (c *RollCommand) RequireAdmin() bool     { return false }

func (c *RollCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
		Options: []*discordgo.ApplicationCommandOption{
			{
				Type:        discordgo.ApplicationCommandOptionInteger,
				Name:        "sides",
				Description: "Number of sides, defaults to 6",
				MinValue:    float64Ptr(2),
			},
		},
	}
}

func (c *RollCommand) Run(ctx *core.SlashContext) error {
	sides := int64(6)
	_, opts := ctx.Options()
	if opt := core.Option(opts, "sides"); opt != nil {
		sides = opt.IntValue()
	}
	if sides < 2 {
		return ctx.Reply("A die needs at least two sides.")
	}

	result := rand.Int63n(sides) + 1
	return ctx.Reply(fmt.Sprintf("🎲 You rolled a %d (d%d).", result, sides))
}

func init() {
	core.RegisterCommand(&RollCommand{})
}
