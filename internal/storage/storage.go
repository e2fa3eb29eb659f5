// /internal/storage/storage.go
package storage

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/keshon/datastore"
)

// Storage wraps the datastore SDK with one record per guild. Local trackers
// own real-time decisions; this layer keeps the durable mirror.
//
// The store itself is thread-safe but its Get/Set pairs are not atomic, so mu
// serialises every read-modify-write cycle. Two detached writers touching
// different fields of the same guild record would otherwise overwrite each
// other. Plain readers go straight to the store.
type Storage struct {
	ds     *datastore.DataStore
	cancel context.CancelFunc

	mu sync.Mutex
}

// Record is everything persisted for one guild.
type Record struct {
	EnabledModules []string                 `json:"enabled_modules"`
	ChannelTopics  map[string]string        `json:"channel_topics"` // channelID -> topic
	Warnings       []WarningRecord          `json:"warnings"`
	Balances       map[string]int64         `json:"balances"`  // userID -> currency
	Birthdays      map[string]string        `json:"birthdays"` // userID -> MM-DD
	AuditLog       []AuditRecord            `json:"audit_log"`
	CustomCommands map[string]CustomCommand `json:"custom_commands"` // name -> definition
	Workflows      map[string]Workflow      `json:"workflows"`       // id -> definition
	Starboard      *StarboardSettings       `json:"starboard,omitempty"`
	Verification   *VerificationSettings    `json:"verification,omitempty"`
	Polls          []Poll                   `json:"polls"`
	Reports        []Report                 `json:"reports"`
	Signals        []Signal                 `json:"signals"`
	Suggestions    []Suggestion             `json:"suggestions"`
}

type WarningRecord struct {
	UserID    string    `json:"user_id"`
	ChannelID string    `json:"channel_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type AuditRecord struct {
	Action    string    `json:"action"`
	ActorID   string    `json:"actor_id"`
	Detail    string    `json:"detail"`
	CreatedAt time.Time `json:"created_at"`
}

type CustomCommand struct {
	Name      string    `json:"name"`
	Response  string    `json:"response"`
	CreatedBy string    `json:"created_by"`
	CreatedAt time.Time `json:"created_at"`
}

type Workflow struct {
	ID      string `json:"id"`
	Module  string `json:"module"`
	Trigger string `json:"trigger"`
	Action  string `json:"action"`
	Enabled bool   `json:"enabled"`
}

type StarboardSettings struct {
	ChannelID string `json:"channel_id"`
	Threshold int    `json:"threshold"`
}

type VerificationSettings struct {
	ChannelID string `json:"channel_id"`
}

type Poll struct {
	Question  string    `json:"question"`
	Option1   string    `json:"option1"`
	Option2   string    `json:"option2"`
	CreatedAt time.Time `json:"created_at"`
}

type Report struct {
	UserID    string    `json:"user_id"`
	Reason    string    `json:"reason"`
	CreatedAt time.Time `json:"created_at"`
}

type Signal struct {
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

type Suggestion struct {
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"created_at"`
}

// New opens the store file. ctx bounds the store's background flushing; Close
// cancels it and performs the final save.
func New(ctx context.Context, filePath string) (*Storage, error) {
	ctx, cancel := context.WithCancel(ctx)
	ds, err := datastore.New(ctx, filePath)
	if err != nil {
		cancel()
		return nil, err
	}
	return &Storage{ds: ds, cancel: cancel}, nil
}

func (s *Storage) Close() error {
	s.cancel()
	return s.ds.Close()
}

// GuildIDs returns every guild with a stored record, in stable order.
func (s *Storage) GuildIDs() []string {
	ids := s.ds.Keys()
	sort.Strings(ids)
	return ids
}

// loadGuildRecord reads a guild's record, returning an initialized empty one
// when the guild has never been written. Writers call this holding s.mu.
func (s *Storage) loadGuildRecord(guildID string) (*Record, bool, error) {
	var record Record
	found, err := s.ds.Get(guildID, &record)
	if err != nil {
		return nil, found, fmt.Errorf("load guild %s: %w", guildID, err)
	}

	if record.ChannelTopics == nil {
		record.ChannelTopics = map[string]string{}
	}
	if record.Balances == nil {
		record.Balances = map[string]int64{}
	}
	if record.Birthdays == nil {
		record.Birthdays = map[string]string{}
	}
	if record.CustomCommands == nil {
		record.CustomCommands = map[string]CustomCommand{}
	}
	if record.Workflows == nil {
		record.Workflows = map[string]Workflow{}
	}

	return &record, found, nil
}
