// /internal/core/dispatcher.go
package core

import (
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"exobot/internal/metrics"
)

// Dispatcher routes slash interactions to registered commands. Every
// interaction is acknowledged with a deferred response before any work
// happens; if that acknowledgement fails the interaction is dropped rather
// than handled without a way to answer.
type Dispatcher struct {
	deps *Deps
	mws  []Middleware
}

func NewDispatcher(deps *Deps, mws ...Middleware) *Dispatcher {
	return &Dispatcher{deps: deps, mws: mws}
}

// HandleSlash is the discordgo InteractionCreate entry point.
func (d *Dispatcher) HandleSlash(s *discordgo.Session, e *discordgo.InteractionCreate) {
	if e.Type != discordgo.InteractionApplicationCommand {
		return
	}

	ctx := &SlashContext{
		Session:   s,
		Event:     e,
		Responder: &sessionResponder{session: s, interaction: e.Interaction},
		Deps:      d.deps,
		GuildID:   e.GuildID,
		ChannelID: e.ChannelID,
	}
	if e.Member != nil && e.Member.User != nil {
		ctx.UserID = e.Member.User.ID
		ctx.Admin = e.Member.Permissions&discordgo.PermissionAdministrator != 0
	} else if e.User != nil {
		ctx.UserID = e.User.ID
	}

	d.Dispatch(e.ApplicationCommandData().Name, ctx)
}

// Dispatch runs one named command against a prepared context.
func (d *Dispatcher) Dispatch(name string, ctx *SlashContext) {
	if err := ctx.Responder.Ack(); err != nil {
		metrics.CommandsDropped.Inc()
		log.Error().Err(err).Str("command", name).Msg("failed to acknowledge interaction, dropping")
		return
	}

	cmd, ok := GetCommand(name)
	if !ok {
		d.runCustom(name, ctx)
		return
	}

	if m := cmd.Module(); m != "" && !d.deps.Features.Enabled(ctx.GuildID, m) {
		metrics.CommandsHandled.WithLabelValues(name, "gated").Inc()
		d.finish(ctx, fmt.Sprintf("The %s module is disabled on this server.", m))
		return
	}

	if cmd.RequireAdmin() && !ctx.Admin {
		metrics.CommandsHandled.WithLabelValues(name, "denied").Inc()
		d.finish(ctx, "You need administrator permissions for that.")
		return
	}

	err := d.run(cmd, ctx)
	if err != nil {
		metrics.CommandsHandled.WithLabelValues(name, "error").Inc()
		log.Error().Err(err).Str("command", name).Str("guild", ctx.GuildID).Msg("command failed")
		d.finish(ctx, "Something went wrong while running that command.")
		return
	}

	metrics.CommandsHandled.WithLabelValues(name, "ok").Inc()
	d.finish(ctx, "Done.")
}

// run executes the command through the middleware chain, converting a panic
// into an error so one bad handler cannot take the gateway loop down.
func (d *Dispatcher) run(cmd Command, ctx *SlashContext) (err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fmt.Errorf("panic in command %s: %v", cmd.Name(), rec)
		}
	}()
	return ApplyMiddlewares(cmd, d.mws...).Run(ctx)
}

// runCustom answers a guild-defined command, or reports the name unknown.
func (d *Dispatcher) runCustom(name string, ctx *SlashContext) {
	custom, ok, err := d.deps.Storage.CustomCommand(ctx.GuildID, name)
	if err != nil {
		log.Warn().Err(err).Str("command", name).Msg("custom command lookup failed")
	}
	if !ok {
		metrics.CommandsHandled.WithLabelValues(name, "unknown").Inc()
		d.finish(ctx, "Unknown command.")
		return
	}
	metrics.CommandsHandled.WithLabelValues(name, "custom").Inc()
	d.finish(ctx, custom.Response)
}

// finish guarantees exactly one final response: the fallback goes out only
// when the command never replied on its own.
func (d *Dispatcher) finish(ctx *SlashContext, fallback string) {
	if ctx.Replied() {
		return
	}
	if err := ctx.Reply(fallback); err != nil {
		log.Warn().Err(err).Msg("failed to send final response")
	}
}

// sessionResponder answers interactions through a live discordgo session.
type sessionResponder struct {
	session     *discordgo.Session
	interaction *discordgo.Interaction
}

func (r *sessionResponder) Ack() error {
	return r.session.InteractionRespond(r.interaction, &discordgo.InteractionResponse{
		Type: discordgo.InteractionResponseDeferredChannelMessageWithSource,
	})
}

func (r *sessionResponder) Edit(content string) error {
	_, err := r.session.InteractionResponseEdit(r.interaction, &discordgo.WebhookEdit{
		Content: &content,
	})
	return err
}
