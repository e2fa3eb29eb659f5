// /internal/storage/storage_custom.go
package storage

import "time"

// UpsertCustomCommand stores or replaces a guild-defined command.
func (s *Storage) UpsertCustomCommand(guildID, name, response, createdBy string, at time.Time) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.CustomCommands[name] = CustomCommand{
		Name:      name,
		Response:  response,
		CreatedBy: createdBy,
		CreatedAt: at,
	}
	return s.ds.Set(guildID, record)
}

// CustomCommand looks up one guild-defined command by name.
func (s *Storage) CustomCommand(guildID, name string) (CustomCommand, bool, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return CustomCommand{}, false, err
	}
	cmd, ok := record.CustomCommands[name]
	return cmd, ok, nil
}

// CustomCommands returns every guild-defined command.
func (s *Storage) CustomCommands(guildID string) (map[string]CustomCommand, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.CustomCommands, nil
}

// DeleteCustomCommand removes one guild-defined command and reports whether
// it existed.
func (s *Storage) DeleteCustomCommand(guildID, name string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return false, err
	}

	_, ok := record.CustomCommands[name]
	if !ok {
		return false, nil
	}
	delete(record.CustomCommands, name)
	return true, s.ds.Set(guildID, record)
}
