package feature

import "sync"

// Registry holds the enabled-module set per guild. Safe for concurrent use:
// readers on the dispatch path never observe a half-applied update because
// SetModules swaps a freshly built set in one assignment under the lock.
type Registry struct {
	mu     sync.RWMutex
	guilds map[string]map[Module]bool
}

func NewRegistry() *Registry {
	return &Registry{guilds: make(map[string]map[Module]bool)}
}

// Enabled reports whether m is enabled for guildID. Unknown guilds have
// nothing enabled.
func (r *Registry) Enabled(guildID string, m Module) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.guilds[guildID][m]
}

// SetModules replaces guildID's enabled set wholesale. Idempotent: applying
// the same set twice leaves the registry unchanged.
func (r *Registry) SetModules(guildID string, modules []Module) {
	set := make(map[Module]bool, len(modules))
	for _, m := range modules {
		set[m] = true
	}
	r.mu.Lock()
	r.guilds[guildID] = set
	r.mu.Unlock()
}

// Modules returns the enabled modules for guildID in registry order.
func (r *Registry) Modules(guildID string) []Module {
	r.mu.RLock()
	set := r.guilds[guildID]
	r.mu.RUnlock()

	out := make([]Module, 0, len(set))
	for _, m := range AllModules() {
		if set[m] {
			out = append(out, m)
		}
	}
	return out
}

// Known reports whether the guild has ever been observed.
func (r *Registry) Known(guildID string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.guilds[guildID]
	return ok
}
