// /internal/discord/sync.go
package discord

import (
	"encoding/json"
	"time"

	"github.com/rs/zerolog/log"

	"exobot/internal/realtime"
	"exobot/internal/storage"
)

type guildFeaturesRecord struct {
	GuildID string   `json:"guild_id"`
	Modules []string `json:"modules"`
}

type channelTopicRecord struct {
	GuildID   string `json:"guild_id"`
	ChannelID string `json:"channel_id"`
	Topic     string `json:"topic"`
}

type customCommandRecord struct {
	GuildID  string `json:"guild_id"`
	Name     string `json:"name"`
	Response string `json:"response"`
}

type workflowRecord struct {
	GuildID string `json:"guild_id"`
	ID      string `json:"id"`
	Module  string `json:"module"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
	Enabled bool   `json:"enabled"`
}

// registerSyncHandlers subscribes the bot to dashboard edits. Handlers apply
// the full new record, so replays after a reconnect settle into the same
// state.
func (b *Bot) registerSyncHandlers() {
	b.stream.OnTable(realtime.TableGuildFeatures, b.syncGuildFeatures)
	b.stream.OnTable(realtime.TableChannelTopics, b.syncChannelTopics)
	b.stream.OnTable(realtime.TableCustomCommands, b.syncCustomCommands)
	b.stream.OnTable(realtime.TableWorkflows, b.syncWorkflows)
}

func (b *Bot) syncGuildFeatures(evt realtime.Event) {
	var rec guildFeaturesRecord
	if err := json.Unmarshal(evt.Record, &rec); err != nil || rec.GuildID == "" {
		log.Warn().Err(err).Str("table", evt.Table).Msg("unparseable sync record")
		return
	}

	modules := rec.Modules
	if evt.Type == "DELETE" {
		modules = nil
	}

	b.features.SetModules(rec.GuildID, parseModules(modules))
	guildID := rec.GuildID
	b.runner.Go("sync-modules", func() error {
		return b.store.SetEnabledModules(guildID, modules)
	})
	b.ResyncGuild(guildID)

	log.Info().Str("guild", guildID).Strs("modules", modules).Msg("module set synced")
}

func (b *Bot) syncChannelTopics(evt realtime.Event) {
	var rec channelTopicRecord
	if err := json.Unmarshal(evt.Record, &rec); err != nil || rec.ChannelID == "" {
		log.Warn().Err(err).Str("table", evt.Table).Msg("unparseable sync record")
		return
	}

	if evt.Type == "DELETE" {
		b.topics.Delete(rec.ChannelID)
		b.runner.Go("sync-topic-delete", func() error {
			return b.store.DeleteChannelTopic(rec.GuildID, rec.ChannelID)
		})
		return
	}

	b.topics.Set(rec.ChannelID, rec.Topic)
	b.runner.Go("sync-topic", func() error {
		return b.store.SetChannelTopic(rec.GuildID, rec.ChannelID, rec.Topic)
	})
}

func (b *Bot) syncCustomCommands(evt realtime.Event) {
	var rec customCommandRecord
	if err := json.Unmarshal(evt.Record, &rec); err != nil || rec.GuildID == "" || rec.Name == "" {
		log.Warn().Err(err).Str("table", evt.Table).Msg("unparseable sync record")
		return
	}

	if evt.Type == "DELETE" {
		b.runner.Go("sync-custom-delete", func() error {
			_, err := b.store.DeleteCustomCommand(rec.GuildID, rec.Name)
			return err
		})
	} else {
		b.runner.Go("sync-custom", func() error {
			return b.store.UpsertCustomCommand(rec.GuildID, rec.Name, rec.Response, "dashboard", time.Now())
		})
	}
	b.ResyncGuild(rec.GuildID)
}

func (b *Bot) syncWorkflows(evt realtime.Event) {
	var rec workflowRecord
	if err := json.Unmarshal(evt.Record, &rec); err != nil || rec.GuildID == "" || rec.ID == "" {
		log.Warn().Err(err).Str("table", evt.Table).Msg("unparseable sync record")
		return
	}

	if evt.Type == "DELETE" {
		b.runner.Go("sync-workflow-delete", func() error {
			_, err := b.store.DeleteWorkflow(rec.GuildID, rec.ID)
			return err
		})
		return
	}

	b.runner.Go("sync-workflow", func() error {
		return b.store.UpsertWorkflow(rec.GuildID, storage.Workflow{
			ID:      rec.ID,
			Module:  rec.Module,
			Trigger: rec.Trigger,
			Action:  rec.Action,
			Enabled: rec.Enabled,
		})
	})
}
