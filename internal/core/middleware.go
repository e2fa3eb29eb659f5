// /internal/core/middleware.go
package core

import (
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"
)

type Middleware func(Command) Command

type wrappedCommand struct {
	Command
	wrap func(ctx *SlashContext) error
}

func (w *wrappedCommand) Run(ctx *SlashContext) error {
	if w.wrap != nil {
		return w.wrap(ctx)
	}
	return w.Command.Run(ctx)
}

func (w *wrappedCommand) SlashDefinition() *discordgo.ApplicationCommand {
	if sp, ok := w.Command.(SlashProvider); ok {
		return sp.SlashDefinition()
	}
	return nil
}

// WithGuildOnly swallows invocations arriving outside a guild.
func WithGuildOnly() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *SlashContext) error {
				if ctx.GuildID == "" {
					return ctx.Reply("This command only works inside a server.")
				}
				return cmd.Run(ctx)
			},
		}
	}
}

// WithCommandLogger wraps a command to log its execution
func WithCommandLogger() Middleware {
	return func(cmd Command) Command {
		return &wrappedCommand{
			Command: cmd,
			wrap: func(ctx *SlashContext) error {
				start := time.Now()
				err := cmd.Run(ctx)
				evt := log.Info()
				if err != nil {
					evt = log.Warn().Err(err)
				}
				evt.
					Str("command", cmd.Name()).
					Str("guild", ctx.GuildID).
					Str("user", ctx.UserID).
					Dur("took", time.Since(start)).
					Msg("command executed")
				return err
			},
		}
	}
}

func ApplyMiddlewares(cmd Command, mws ...Middleware) Command {
	for _, mw := range mws {
		cmd = mw(cmd)
	}
	return cmd
}
