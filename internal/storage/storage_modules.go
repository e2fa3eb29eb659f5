// /internal/storage/storage_modules.go
package storage

// EnabledModules returns the module names stored for a guild and whether the
// guild has an explicit record at all.
func (s *Storage) EnabledModules(guildID string) ([]string, bool, error) {
	record, found, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, false, err
	}
	if !found {
		return nil, false, nil
	}
	return record.EnabledModules, true, nil
}

// SetEnabledModules replaces a guild's module list. Writing the same list
// twice leaves the record unchanged.
func (s *Storage) SetEnabledModules(guildID string, modules []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.EnabledModules = append([]string(nil), modules...)
	return s.ds.Set(guildID, record)
}
