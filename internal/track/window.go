// Package track keeps the short-lived in-process counters behind real-time
// moderation decisions: sliding rate windows, award cooldowns and warning
// counts. All state lives in TTL-bounded containers so idle subject keys age
// out instead of accumulating forever. Local state is authoritative for the
// real-time decision; the store only holds best-effort mirrors.
package track

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

const trackerMaxKeys = 16384

// WindowTracker counts events per subject key inside a sliding time window.
// Entries older than the window are pruned lazily on each access.
type WindowTracker struct {
	mu     sync.Mutex
	window time.Duration
	events *lru.LRU[string, []time.Time]
}

// NewWindowTracker creates a tracker with the given lookback window. Keys
// idle for twice the window are evicted wholesale.
func NewWindowTracker(window time.Duration) *WindowTracker {
	return &WindowTracker{
		window: window,
		events: lru.NewLRU[string, []time.Time](trackerMaxKeys, nil, 2*window),
	}
}

// RecordAndCount appends now for key, discards entries older than
// now-window and returns the resulting count. The append and the count are
// one atomic step so a concurrent event for the same key cannot interleave
// between them.
func (w *WindowTracker) RecordAndCount(key string, now time.Time) int {
	w.mu.Lock()
	defer w.mu.Unlock()

	cutoff := now.Add(-w.window)
	prev, _ := w.events.Get(key)

	kept := make([]time.Time, 0, len(prev)+1)
	for _, t := range prev {
		if !t.Before(cutoff) {
			kept = append(kept, t)
		}
	}
	kept = append(kept, now)
	w.events.Add(key, kept)
	return len(kept)
}
