// /internal/storage/storage_workflows.go
package storage

// UpsertWorkflow stores or replaces a workflow definition.
func (s *Storage) UpsertWorkflow(guildID string, wf Workflow) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Workflows[wf.ID] = wf
	return s.ds.Set(guildID, record)
}

// Workflows returns every workflow stored for a guild.
func (s *Storage) Workflows(guildID string) (map[string]Workflow, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}
	return record.Workflows, nil
}

// DeleteWorkflow removes one workflow and reports whether it existed.
func (s *Storage) DeleteWorkflow(guildID, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return false, err
	}

	_, ok := record.Workflows[id]
	if !ok {
		return false, nil
	}
	delete(record.Workflows, id)
	return true, s.ds.Set(guildID, record)
}
