// /internal/moderate/message.go
package moderate

import (
	"context"
	"time"
)

// Message is the transport-neutral view of one inbound guild message.
type Message struct {
	GuildID   string
	ChannelID string
	MessageID string
	AuthorID  string
	AuthorBot bool
	Content   string
	Mentions  []string
}

// Actions is everything the pipeline may do to the platform in response to a
// message.
type Actions interface {
	Delete(channelID, messageID string) error
	Reply(channelID, content string) error
	DirectMessage(userID, content string) error
	Timeout(guildID, userID string, until time.Time) error
}

// Store is the durable side of moderation outcomes. Every call here runs
// fire-and-forget off the hot path.
type Store interface {
	AddWarning(guildID, userID, channelID, reason string, at time.Time) error
	IncrementBalance(guildID, userID string, amount int64) (int64, error)
	AppendAudit(guildID, action, actorID, detail string, at time.Time) error
}

// TopicChecker judges whether content fits a channel topic.
type TopicChecker interface {
	IsOnTopic(ctx context.Context, content, topic string) (bool, error)
}
