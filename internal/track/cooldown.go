package track

import (
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2/expirable"
)

// CooldownTracker remembers the last qualifying instant per subject key,
// used to gate repeated awards.
type CooldownTracker struct {
	mu   sync.Mutex
	last *lru.LRU[string, time.Time]
}

// NewCooldownTracker creates a tracker whose idle keys expire after ttl.
func NewCooldownTracker(ttl time.Duration) *CooldownTracker {
	return &CooldownTracker{
		last: lru.NewLRU[string, time.Time](trackerMaxKeys, nil, ttl),
	}
}

// SinceLast returns the time elapsed since the last mark for key. The second
// return is false when the key has never been marked (or has expired).
func (c *CooldownTracker) SinceLast(key string, now time.Time) (time.Duration, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.last.Get(key)
	if !ok {
		return 0, false
	}
	return now.Sub(t), true
}

// Mark records now as the last qualifying instant for key.
func (c *CooldownTracker) Mark(key string, now time.Time) {
	c.mu.Lock()
	c.last.Add(key, now)
	c.mu.Unlock()
}

// Ready reports whether at least d has elapsed since the last mark (true for
// never-marked keys) and, when it has, marks now in the same atomic step.
func (c *CooldownTracker) Ready(key string, now time.Time, d time.Duration) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if t, ok := c.last.Get(key); ok && now.Sub(t) <= d {
		return false
	}
	c.last.Add(key, now)
	return true
}
