// /internal/storage/storage_warnings.go
package storage

import "time"

// AddWarning appends a warning row for a user.
func (s *Storage) AddWarning(guildID, userID, channelID, reason string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Warnings = append(record.Warnings, WarningRecord{
		UserID:    userID,
		ChannelID: channelID,
		Reason:    reason,
		CreatedAt: at,
	})
	return s.ds.Set(guildID, record)
}

// Warnings returns every stored warning for one user, oldest first.
func (s *Storage) Warnings(guildID, userID string) ([]WarningRecord, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	var out []WarningRecord
	for _, w := range record.Warnings {
		if w.UserID == userID {
			out = append(out, w)
		}
	}
	return out, nil
}

// ClearWarnings deletes all warnings for a user and reports how many were
// removed.
func (s *Storage) ClearWarnings(guildID, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return 0, err
	}

	kept := record.Warnings[:0]
	removed := 0
	for _, w := range record.Warnings {
		if w.UserID == userID {
			removed++
			continue
		}
		kept = append(kept, w)
	}
	record.Warnings = kept
	return removed, s.ds.Set(guildID, record)
}
