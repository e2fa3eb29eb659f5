package feature

import "sync"

// TopicCache maps channel IDs to their configured discussion topic. Channels
// without an entry are not monitored by the off-topic check.
type TopicCache struct {
	mu     sync.RWMutex
	topics map[string]string
}

func NewTopicCache() *TopicCache {
	return &TopicCache{topics: make(map[string]string)}
}

// Topic returns the configured topic for channelID, if any.
func (t *TopicCache) Topic(channelID string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	topic, ok := t.topics[channelID]
	return topic, ok
}

// Set stores (or overwrites) the topic for channelID.
func (t *TopicCache) Set(channelID, topic string) {
	t.mu.Lock()
	t.topics[channelID] = topic
	t.mu.Unlock()
}

// Delete removes channelID from monitoring.
func (t *TopicCache) Delete(channelID string) {
	t.mu.Lock()
	delete(t.topics, channelID)
	t.mu.Unlock()
}
