// /internal/discord/bot.go
package discord

import (
	"context"
	"fmt"

	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog/log"

	"exobot/internal/classify"
	"exobot/internal/config"
	"exobot/internal/core"
	"exobot/internal/feature"
	"exobot/internal/fireforget"
	"exobot/internal/moderate"
	"exobot/internal/realtime"
	"exobot/internal/schedule"
	"exobot/internal/storage"
)

// Bot glues the gateway session, the moderation pipeline, the command
// dispatcher and the sync stream together.
type Bot struct {
	session    *discordgo.Session
	cfg        *config.Config
	store      *storage.Storage
	features   *feature.Registry
	topics     *feature.TopicCache
	runner     *fireforget.Runner
	pipeline   *moderate.Pipeline
	dispatcher *core.Dispatcher
	deps       *core.Deps
	stream     *realtime.Client
	scheduler  *schedule.Scheduler
}

// New builds a fully wired bot. The session stays closed until Run.
func New(cfg *config.Config, store *storage.Storage) (*Bot, error) {
	session, err := discordgo.New("Bot " + cfg.DiscordToken)
	if err != nil {
		return nil, fmt.Errorf("create session: %w", err)
	}

	b := &Bot{
		session:   session,
		cfg:       cfg,
		store:     store,
		features:  feature.NewRegistry(),
		topics:    feature.NewTopicCache(),
		runner:    &fireforget.Runner{},
		scheduler: schedule.New(),
	}

	var checker moderate.TopicChecker
	if cfg.ClassifierURL != "" {
		checker = classify.New(cfg.ClassifierURL, cfg.ClassifierModel, cfg.ClassifierKey, cfg.ClassifierTimeout)
	}

	b.pipeline = moderate.New(cfg, b.features, b.topics, &sessionActions{session: session}, store, checker, b.runner)

	b.deps = &core.Deps{
		Storage:  store,
		Features: b.features,
		Topics:   b.topics,
		Pipeline: b.pipeline,
		Config:   cfg,
		Runner:   b.runner,
		Resync:   b.ResyncGuild,
	}
	b.dispatcher = core.NewDispatcher(b.deps, core.WithGuildOnly(), core.WithCommandLogger())

	if cfg.RealtimeURL != "" {
		b.stream = realtime.New(cfg.RealtimeURL)
		b.registerSyncHandlers()
	}

	session.Identify.Intents = discordgo.IntentsGuilds |
		discordgo.IntentsGuildMessages |
		discordgo.IntentsGuildMessageReactions |
		discordgo.IntentsGuildMembers |
		discordgo.IntentMessageContent

	session.AddHandler(b.onReady)
	session.AddHandler(b.onGuildCreate)
	session.AddHandler(b.onMessageCreate)
	session.AddHandler(b.onMessageReactionAdd)
	session.AddHandler(b.onGuildMemberAdd)
	session.AddHandler(b.dispatcher.HandleSlash)

	return b, nil
}

// Run opens the session and blocks until ctx is done.
func (b *Bot) Run(ctx context.Context) error {
	if err := b.session.Open(); err != nil {
		return fmt.Errorf("open session: %w", err)
	}
	defer b.session.Close()

	if b.stream != nil {
		go func() {
			if err := b.stream.Run(ctx); err != nil && ctx.Err() == nil {
				log.Error().Err(err).Msg("realtime stream stopped")
			}
		}()
	}

	if err := b.startJobs(ctx); err != nil {
		return err
	}

	<-ctx.Done()
	log.Info().Msg("shutdown signal received, draining pending writes")
	b.runner.Wait()
	return nil
}

func (b *Bot) onReady(s *discordgo.Session, _ *discordgo.Ready) {
	log.Info().Str("user", s.State.User.Username).Int("guilds", len(s.State.Guilds)).Msg("gateway session ready")
}

// onGuildCreate hydrates per-guild caches from storage and registers the
// guild's slash commands. GuildCreate re-fires on session resume; a guild the
// registry already knows keeps its live state instead of reloading.
func (b *Bot) onGuildCreate(_ *discordgo.Session, e *discordgo.GuildCreate) {
	guildID := e.ID

	if !b.features.Known(guildID) {
		modules, known, err := b.store.EnabledModules(guildID)
		if err != nil {
			log.Error().Err(err).Str("guild", guildID).Msg("failed to load enabled modules")
		}
		if known {
			b.features.SetModules(guildID, parseModules(modules))
		}

		topics, err := b.store.ChannelTopics(guildID)
		if err != nil {
			log.Error().Err(err).Str("guild", guildID).Msg("failed to load channel topics")
		}
		for channelID, topic := range topics {
			b.topics.Set(channelID, topic)
		}
	}

	if b.cfg.InitSlashCommands {
		go b.registerGuildCommands(guildID)
	}
}

// ResyncGuild re-registers a guild's slash commands off the calling
// goroutine.
func (b *Bot) ResyncGuild(guildID string) {
	b.runner.Go("resync-"+guildID, func() error {
		b.registerGuildCommands(guildID)
		return nil
	})
}

func parseModules(names []string) []feature.Module {
	out := make([]feature.Module, 0, len(names))
	for _, name := range names {
		if m, ok := feature.ParseModule(name); ok {
			out = append(out, m)
		} else {
			log.Warn().Str("module", name).Msg("unknown module name in storage, ignoring")
		}
	}
	return out
}
