// /internal/command/slash_ping.go
package command

import (
	"fmt"

	"github.com/bwmarrin/discordgo"

	"exobot/internal/core"
	"exobot/internal/feature"
)

type PingCommand struct{}

func (c *PingCommand) Name() string           { return "ping" }
func (c *PingCommand) Description() string    { return "Check bot latency" }
func (c *PingCommand) Module() feature.Module { return "" }
func (c *PingCommand) Category() string       { return "⚙️ Core" }
func (c *PingCommand) RequireAdmin() bool     { return false }

func (c *PingCommand) SlashDefinition() *discordgo.ApplicationCommand {
	return &discordgo.ApplicationCommand{
		Name:        c.Name(),
		Description: c.Description(),
		Type:        discordgo.ChatApplicationCommand,
	}
}

func (c *PingCommand) Run(ctx *core.SlashContext) error {
	latency := ctx.Session.HeartbeatLatency().Milliseconds()
	return ctx.Reply(fmt.Sprintf("🏓 Pong! %dms", latency))
}

func init() {
	core.RegisterCommand(&PingCommand{})
}
