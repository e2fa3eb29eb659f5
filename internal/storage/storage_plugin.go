// /internal/storage/storage_plugin.go
package storage

import "time"

// SetStarboard configures the starboard channel and reaction threshold.
func (s *Storage) SetStarboard(guildID, channelID string, threshold int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Starboard = &StarboardSettings{ChannelID: channelID, Threshold: threshold}
	return s.ds.Set(guildID, record)
}

// StarboardSettings returns the starboard config, nil when unset.
func (s *Storage) StarboardSettings(guildID string) (*StarboardSettings, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Starboard, nil
}

// AddPoll stores a two-option poll.
func (s *Storage) AddPoll(guildID, question, option1, option2 string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Polls = append(record.Polls, Poll{
		Question:  question,
		Option1:   option1,
		Option2:   option2,
		CreatedAt: at,
	})
	return s.ds.Set(guildID, record)
}
