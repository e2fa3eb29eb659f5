// /internal/command/slash_leaderboard.go
package command

import (
	"fmt"
	"strings"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type LeaderboardCommand struct{}

func (c *LeaderboardCommand) Name() string           { return "leaderboard" }
func (c *LeaderboardCommand) Description() string    { return "Show the richest members" }
func (c *LeaderboardCommand) Module() feature.Module { return feature.ModuleEconomy }
func (c *LeaderboardCommand) Category() string       { return "💰 Economy" }
func (c *LeaderboardCommand) RequireAdmin() bool     { return false }

func (c *LeaderboardCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *LeaderboardCommand) Run(ctx *core.SlashContext) error {
	entries, err := ctx.Deps.Storage.TopBalances(ctx.GuildID, 10)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		return ctx.Reply("Nobody has earned any coins yet.")
	}

	lines := make([]string, 0, len(entries)+1)
	lines = append(lines, "**Leaderboard**")
	for i, e := range entries {
		lines = append(lines, fmt.Sprintf("%d. <@%s>: %d coin(s)", i+1, e.UserID, e.Balance))
	}
	return ctx.Reply(strings.Join(lines, "\n"))
}

func init() {
	core.RegisterCommand(&LeaderboardCommand{})
}
