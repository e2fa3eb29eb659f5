// /internal/storage/storage_economy.go
package storage

import (
	"errors"
	"sort"
)

var ErrInsufficientFunds = errors.New("insufficient funds")

// Balance returns a user's currency balance, zero when unknown.
func (s *Storage) Balance(guildID, userID string) (int64, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return 0, err
	}
	return record.Balances[userID], nil
}

// IncrementBalance adds amount to a user's balance and returns the new total.
func (s *Storage) IncrementBalance(guildID, userID string, amount int64) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return 0, err
	}
	record.Balances[userID] += amount
	return record.Balances[userID], s.ds.Set(guildID, record)
}

// TransferBalance moves amount between two users. The sender must cover it.
func (s *Storage) TransferBalance(guildID, fromID, toID string, amount int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return err
	}

	if record.Balances[fromID] < amount {
		return ErrInsufficientFunds
	}
	record.Balances[fromID] -= amount
	record.Balances[toID] += amount
	return s.ds.Set(guildID, record)
}

// TopBalances returns up to limit (userID, balance) pairs ordered by balance
// descending.
func (s *Storage) TopBalances(guildID string, limit int) ([]BalanceEntry, error) {
	record, _, err := s.loadGuildRecord(guildID)
	if err != nil {
		return nil, err
	}

	entries := make([]BalanceEntry, 0, len(record.Balances))
	for userID, bal := range record.Balances {
		entries = append(entries, BalanceEntry{UserID: userID, Balance: bal})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Balance != entries[j].Balance {
			return entries[i].Balance > entries[j].Balance
		}
		return entries[i].UserID < entries[j].UserID
	})
	if limit > 0 && len(entries) > limit {
		entries = entries[:limit]
	}
	return entries, nil
}

// BalanceEntry is one row of a leaderboard.
type BalanceEntry struct {
	UserID  string
	Balance int64
}
