// /internal/storage/storage_birthdays.go
package storage

// SetBirthday stores a user's birthday as "MM-DD".
func (s *Storage) SetBirthday(guildID, userID, monthDay string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}
	record.Birthdays[userID] = monthDay
	return s.ds.Set(guildID, record)
}

// BirthdaysOn returns the users whose stored birthday matches monthDay.
func (s *Storage) BirthdaysOn(guildID, monthDay string) ([]string, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	var users []string
	for userID, md := range record.Birthdays {
		if md == monthDay {
			users = append(users, userID)
		}
	}
	return users, nil
}
