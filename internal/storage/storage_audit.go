// /internal/storage/storage_audit.go
package storage

import "time"

// AppendAudit records one moderation or security action.
func (s *Storage) AppendAudit(guildID, action, actorID, detail string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.AuditLog = append(record.AuditLog, AuditRecord{
		Action:    action,
		ActorID:   actorID,
		Detail:    detail,
		CreatedAt: at,
	})
	return s.ds.Set(guildID, record)
}

// AuditLog returns up to limit newest entries for a guild.
func (s *Storage) AuditLog(guildID string, limit int) ([]AuditRecord, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	entries := record.AuditLog
	if limit > 0 && len(entries) > limit {
		entries = entries[len(entries)-limit:]
	}
	out := make([]AuditRecord, len(entries))
	copy(out, entries)
	return out, nil
}

// PurgeOldAudit deletes entries strictly older than retention, across every
// guild, and reports how many rows went away. An entry exactly at the cutoff
// stays.
func (s *Storage) PurgeOldAudit(now time.Time, retention time.Duration) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := now.Add(-retention)
	purged := 0

	for _, guildID := range s.GuildIDs() {
		record, _, err := s.loadGuildRecord(guildID)
		if err != nil {
			return purged, err
		}

		kept := record.AuditLog[:0]
		for _, e := range record.AuditLog {
			if e.CreatedAt.Before(cutoff) {
				purged++
				continue
			}
			kept = append(kept, e)
		}
		if len(kept) == len(record.AuditLog) {
			continue
		}
		record.AuditLog = kept
		if err := s.ds.Set(guildID, record); err != nil {
			return purged, err
		}
	}
	return purged, nil
}
