package track

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// WarningLedger counts consecutive offenses per subject key. The escalation
// policy lives with the caller: the ledger only counts. Counters are
// best-effort process state. The store keeps the durable audit copy.
type WarningLedger struct {
	mu     sync.Mutex
	counts *lru.LRU[string, int]
}

// NewWarningLedger creates a ledger whose idle counters expire after ttl.
func NewWarningLedger(ttl time.Duration) *WarningLedger {
	return &WarningLedger{
		counts: lru.NewLRU[string, int](trackerMaxKeys, nil, ttl),
	}
}

// Increment bumps the counter for key and returns the new count.
func (l *WarningLedger) Increment(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, _ := l.counts.Get(key)
	n++
	l.counts.Add(key, n)
	return n
}

// Count returns the current count for key; absent keys read as zero.
func (l *WarningLedger) Count(key string) int {
	l.mu.Lock()
	defer l.mu.Unlock()

	n, _ := l.counts.Get(key)
	return n
}

// Clear resets the counter for key to zero.
func (l *WarningLedger) Clear(key string) {
	l.mu.Lock()
	l.counts.Remove(key)
	l.mu.Unlock()
}

// DefaultLedgerTTL bounds how long an untouched warning counter survives.
const DefaultLedgerTTL = 12 * time.Hour
