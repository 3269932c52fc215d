package queue

import (
	"sort"
	"sync"
)

// Registry owns one State per guild, created on first use. Guilds never
// share state.
type Registry struct {
	mu     sync.Mutex
	guilds map[string]*State
	cfg    config
}

func NewRegistry(opts ...Option) *Registry {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	return &Registry{guilds: make(map[string]*State), cfg: cfg}
}

// Guild returns the guild's queue, creating it lazily.
func (r *Registry) Guild(guildID string) *State {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.guilds[guildID]
	if !ok {
		st = newState(guildID, r.cfg)
		r.guilds[guildID] = st
	}
	return st
}

// Lookup returns the guild's queue without creating it.
func (r *Registry) Lookup(guildID string) (*State, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	st, ok := r.guilds[guildID]
	return st, ok
}

// GuildIDs lists the guilds with state, sorted.
func (r *Registry) GuildIDs() []string {
	r.mu.Lock()
	ids := make([]string, 0, len(r.guilds))
	for id := range r.guilds {
		ids = append(ids, id)
	}
	r.mu.Unlock()
	sort.Strings(ids)
	return ids
}

// Bounds is the draw count range every guild enforces.
func (r *Registry) Bounds() DrawBounds { return r.cfg.bounds }
