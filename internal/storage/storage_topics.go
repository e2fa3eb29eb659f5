// /internal/storage/storage_topics.go
package storage

// ChannelTopics returns the channel-to-topic map for a guild.
func (s *Storage) ChannelTopics(guildID string) (map[string]string, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.ChannelTopics, nil
}

// SetChannelTopic upserts the topic for one channel.
func (s *Storage) SetChannelTopic(guildID, channelID, topic string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.ChannelTopics[channelID] = topic
	return s.ds.Set(guildID, record)
}

// DeleteChannelTopic removes a channel's topic. Deleting a missing channel is
// a no-op.
func (s *Storage) DeleteChannelTopic(guildID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	delete(record.ChannelTopics, channelID)
	return s.ds.Set(guildID, record)
}
