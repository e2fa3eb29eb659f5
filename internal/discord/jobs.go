// /internal/discord/jobs.go
package discord

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"exobot/internal/feature"
	"exobot/internal/schedule"
)

// startJobs registers the daily jobs and launches the scheduler.
func (b *Bot) startJobs(ctx context.Context) error {
	jobs := []schedule.Job{
		{Name: "birthday-shoutouts", At: "00:00", Run: b.runBirthdayShoutouts},
		{Name: "audit-retention", At: "02:00", Run: b.runAuditRetention},
	}
	for _, job := range jobs {
		if err := b.scheduler.Add(job); err != nil {
			return err
		}
	}
	b.scheduler.Start(ctx)
	return nil
}

// runBirthdayShoutouts congratulates everyone whose stored birthday is today,
// guild by guild. One broken guild never blocks the rest.
func (b *Bot) runBirthdayShoutouts(now time.Time) {
	monthDay := now.Format("01-02")

	for _, guildID := range b.store.GuildIDs() {
		if !b.features.Enabled(guildID, feature.ModuleUtility) {
			continue
		}

		users, err := b.store.BirthdaysOn(guildID, monthDay)
		if err != nil {
			log.Error().Err(err).Str("guild", guildID).Msg("birthday lookup failed")
			continue
		}
		if len(users) == 0 {
			continue
		}

		guild, err := b.session.Guild(guildID)
		if err != nil || guild.SystemChannelID == "" {
			log.Debug().Str("guild", guildID).Msg("no system channel for birthday shoutout")
			continue
		}

		mentions := make([]string, len(users))
		for i, userID := range users {
			mentions[i] = "<@" + userID + ">"
		}
		msg := fmt.Sprintf("🎂 Happy birthday %s!", strings.Join(mentions, ", "))
		if _, err := b.session.ChannelMessageSend(guild.SystemChannelID, msg); err != nil {
			log.Warn().Err(err).Str("guild", guildID).Msg("failed to send birthday shoutout")
		}
	}
}

// runAuditRetention sweeps audit rows older than the configured retention.
func (b *Bot) runAuditRetention(now time.Time) {
	purged, err := b.store.PurgeOldAudit(now, b.cfg.AuditRetention)
	if err != nil {
		log.Error().Err(err).Msg("audit retention sweep failed")
		return
	}
	log.Info().Int("purged", purged).Msg("audit retention sweep complete")
}
