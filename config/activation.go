package config

import (
	"sort"
	"sync"
)

// Activation is the host-side policy deciding which languages get
// function-body folding. The zero value has nothing active.
type Activation struct {
	mu     sync.RWMutex
	active map[string]struct{}
}

// NewActivation creates an Activation with the given languages enabled.
func NewActivation(ids ...string) *Activation {
	a := &Activation{active: make(map[string]struct{}, len(ids))}
	for _, id := range ids {
		a.active[id] = struct{}{}
	}
	return a
}

// Active reports whether folding is enabled for a language.
func (a *Activation) Active(id string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	_, ok := a.active[id]
	return ok
}

// Enable turns folding on for a language.
func (a *Activation) Enable(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.active == nil {
		a.active = make(map[string]struct{})
	}
	a.active[id] = struct{}{}
}

// Disable turns folding off for a language.
func (a *Activation) Disable(id string) {
	a.mu.Lock()
	defer a.mu.Unlock()
	delete(a.active, id)
}

// Languages returns the active language ids, sorted.
func (a *Activation) Languages() []string {
	a.mu.RLock()
	ids := make([]string, 0, len(a.active))
	for id := range a.active {
		ids = append(ids, id)
	}
	a.mu.RUnlock()

	sort.Strings(ids)
	return ids
}
