// /internal/moderate/pipeline.go
package moderate

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog/log"

	"exobot/internal/config"
	"exobot/internal/feature"
	"exobot/internal/fireforget"
	"exobot/internal/metrics"
	"exobot/internal/track"
)

// Pipeline runs every inbound guild message through module-gated moderation,
// topic classification and activity rewards. The synchronous path decides and
// acts; persistence and the classifier run detached.
type Pipeline struct {
	cfg      *config.Config
	features *feature.Registry
	topics   *feature.TopicCache
	spam     *track.WindowTracker
	warnings *track.WarningLedger
	cooldown *track.CooldownTracker
	actions  Actions
	store    Store
	checker  TopicChecker
	runner   *fireforget.Runner
	now      func() time.Time
}

// New wires a pipeline. checker may be nil, which disables topic
// classification entirely.
func New(
	cfg *config.Config,
	features *feature.Registry,
	topics *feature.TopicCache,
	actions Actions,
	store Store,
	checker TopicChecker,
	runner *fireforget.Runner,
) *Pipeline {
	return &Pipeline{
		cfg:      cfg,
		features: features,
		topics:   topics,
		spam:     track.NewWindowTracker(cfg.SpamWindow),
		warnings: track.NewWarningLedger(track.DefaultLedgerTTL),
		cooldown: track.NewCooldownTracker(cfg.CurrencyCooldown),
		actions:  actions,
		store:    store,
		checker:  checker,
		runner:   runner,
		now:      time.Now,
	}
}

// Process handles one message. Bot authors and non-guild messages are
// ignored. Classification runs detached before the synchronous checks and is
// independent of their outcome; a tripped check is terminal for the activity
// award and the message audit.
func (p *Pipeline) Process(msg Message) {
	if msg.AuthorBot || msg.GuildID == "" {
		return
	}
	metrics.MessagesScanned.Inc()
	now := p.now()

	if p.checker != nil && p.features.Enabled(msg.GuildID, feature.ModuleHelix) {
		if topic, ok := p.topics.Topic(msg.ChannelID); ok && topic != "" {
			p.classifyAsync(msg, topic)
		}
	}

	if p.features.Enabled(msg.GuildID, feature.ModuleModeration) {
		if v := p.runChecks(msg, now); v != nil {
			metrics.ViolationsTripped.WithLabelValues(v.Check).Inc()
			p.enforce(msg, v, now)
			return
		}
	}

	if p.features.Enabled(msg.GuildID, feature.ModuleEconomy) {
		p.award(msg, now)
	}

	if p.features.Enabled(msg.GuildID, feature.ModuleSecurity) {
		p.auditMessage(msg, now)
	}
}

// WarningCount reports the live warning count for a user in a channel.
func (p *Pipeline) WarningCount(userID, channelID string) int {
	return p.warnings.Count(track.Key(userID, channelID))
}

// ResetWarnings drops the live warning counter for a user in a channel.
func (p *Pipeline) ResetWarnings(userID, channelID string) {
	p.warnings.Clear(track.Key(userID, channelID))
}

// enforce deletes the offending message and applies the response the tripped
// check calls for: spam offenders get a direct message, denylist hits get a
// channel reply plus a stored warning row, caps and mention floods get the
// reply alone.
func (p *Pipeline) enforce(msg Message, v *violation, now time.Time) {
	if err := p.actions.Delete(msg.ChannelID, msg.MessageID); err != nil {
		log.Warn().Err(err).
			Str("guild", msg.GuildID).
			Str("channel", msg.ChannelID).
			Msg("failed to delete flagged message")
	}

	switch v.Check {
	case CheckSpam:
		notice := fmt.Sprintf("Your message in <#%s> was removed: %s.", msg.ChannelID, v.Reason)
		if err := p.actions.DirectMessage(msg.AuthorID, notice); err != nil {
			log.Debug().Err(err).Str("user", msg.AuthorID).Msg("spam notice undeliverable")
		}
	case CheckDenylist:
		p.replyRemoved(msg, v)
		p.persistWarning(msg, v, now)
	default:
		p.replyRemoved(msg, v)
	}
}

func (p *Pipeline) replyRemoved(msg Message, v *violation) {
	reply := fmt.Sprintf("<@%s> message removed: %s.", msg.AuthorID, v.Reason)
	if err := p.actions.Reply(msg.ChannelID, reply); err != nil {
		log.Warn().Err(err).Str("channel", msg.ChannelID).Msg("failed to send removal reply")
	}
}

// escalate handles an off-topic verdict: it increments the author's warning
// count, replies, and applies a timeout once the count reaches the configured
// threshold.
func (p *Pipeline) escalate(msg Message, v *violation, now time.Time) {
	count := p.warnings.Increment(track.Key(msg.AuthorID, msg.ChannelID))

	reply := fmt.Sprintf("<@%s> warning %d/%d: %s.", msg.AuthorID, count, p.cfg.WarningThreshold, v.Reason)
	if err := p.actions.Reply(msg.ChannelID, reply); err != nil {
		log.Warn().Err(err).Str("channel", msg.ChannelID).Msg("failed to send warning reply")
	}

	p.persistWarning(msg, v, now)

	if count < p.cfg.WarningThreshold {
		return
	}
	p.timeout(msg, now)
}

// timeout mutes the author and notifies them. The warning counter survives
// the timeout unless reset is configured.
func (p *Pipeline) timeout(msg Message, now time.Time) {
	until := now.Add(p.cfg.TimeoutDuration)
	if err := p.actions.Timeout(msg.GuildID, msg.AuthorID, until); err != nil {
		log.Error().Err(err).
			Str("guild", msg.GuildID).
			Str("user", msg.AuthorID).
			Msg("failed to apply timeout")
		return
	}

	notice := fmt.Sprintf("You have been timed out in <#%s> for %s after repeated warnings.", msg.ChannelID, p.cfg.TimeoutDuration)
	if err := p.actions.DirectMessage(msg.AuthorID, notice); err != nil {
		log.Debug().Err(err).Str("user", msg.AuthorID).Msg("timeout notice undeliverable")
	}

	if p.cfg.ResetWarningsOnTimeout {
		p.warnings.Clear(track.Key(msg.AuthorID, msg.ChannelID))
	}

	guildID, userID := msg.GuildID, msg.AuthorID
	if p.features.Enabled(guildID, feature.ModuleSecurity) {
		p.runner.Go("audit-timeout", func() error {
			return p.store.AppendAudit(guildID, "timeout", userID, fmt.Sprintf("timed out until %s", until.Format(time.RFC3339)), now)
		})
	}
}

// persistWarning mirrors the warning to storage and, when the security module
// is on, the audit log.
func (p *Pipeline) persistWarning(msg Message, v *violation, now time.Time) {
	guildID, userID, channelID := msg.GuildID, msg.AuthorID, msg.ChannelID
	reason := v.Reason

	p.runner.Go("persist-warning", func() error {
		return p.store.AddWarning(guildID, userID, channelID, reason, now)
	})

	if p.features.Enabled(guildID, feature.ModuleSecurity) {
		check := v.Check
		p.runner.Go("audit-violation", func() error {
			return p.store.AppendAudit(guildID, "violation:"+check, userID, reason, now)
		})
	}
}

// classifyAsync asks the topic checker about the message off the hot path.
// Any failure is treated as on-topic.
func (p *Pipeline) classifyAsync(msg Message, topic string) {
	p.runner.Go("classify", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), p.cfg.ClassifierTimeout)
		defer cancel()

		onTopic, err := p.checker.IsOnTopic(ctx, msg.Content, topic)
		if err != nil {
			metrics.ClassifierVerdicts.WithLabelValues("error").Inc()
			return fmt.Errorf("topic check: %w", err)
		}
		if onTopic {
			metrics.ClassifierVerdicts.WithLabelValues("on_topic").Inc()
			return nil
		}

		metrics.ClassifierVerdicts.WithLabelValues("off_topic").Inc()
		metrics.ViolationsTripped.WithLabelValues(CheckOffTopic).Inc()
		p.escalate(msg, &violation{
			Check:  CheckOffTopic,
			Reason: fmt.Sprintf("straying from the channel topic (%s)", topic),
		}, p.now())
		return nil
	})
}

// auditMessage mirrors an accepted message to the audit log.
func (p *Pipeline) auditMessage(msg Message, now time.Time) {
	guildID, userID, content := msg.GuildID, msg.AuthorID, msg.Content
	p.runner.Go("audit-message", func() error {
		return p.store.AppendAudit(guildID, "message", userID, content, now)
	})
}

// award grants one unit of activity currency, at most once per cooldown per
// user per guild.
func (p *Pipeline) award(msg Message, now time.Time) {
	if !p.cooldown.Ready(track.Key(msg.AuthorID, msg.GuildID), now, p.cfg.CurrencyCooldown) {
		return
	}
	metrics.CurrencyAwards.Inc()

	guildID, userID := msg.GuildID, msg.AuthorID
	p.runner.Go("award-currency", func() error {
		_, err := p.store.IncrementBalance(guildID, userID, 1)
		return err
	})
}
