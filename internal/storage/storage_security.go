// /internal/storage/storage_security.go
package storage

import "time"

// SetVerificationChannel sets where member verification prompts go.
func (s *Storage) SetVerificationChannel(guildID, channelID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Verification = &VerificationSettings{ChannelID: channelID}
	return s.ds.Set(guildID, record)
}

// VerificationSettings returns the verification config, nil when unset.
func (s *Storage) VerificationSettings(guildID string) (*VerificationSettings, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Verification, nil
}

// AddReport files a user report.
func (s *Storage) AddReport(guildID, userID, reason string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Reports = append(record.Reports, Report{UserID: userID, Reason: reason, CreatedAt: at})
	return s.ds.Set(guildID, record)
}

// AddSignal records a staff broadcast message.
func (s *Storage) AddSignal(guildID, message string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Signals = append(record.Signals, Signal{Message: message, CreatedAt: at})
	return s.ds.Set(guildID, record)
}

// AddSuggestion records a community suggestion.
func (s *Storage) AddSuggestion(guildID, userID, text string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Suggestions = append(record.Suggestions, Suggestion{UserID: userID, Text: text, CreatedAt: at})
	return s.ds.Set(guildID, record)
}
