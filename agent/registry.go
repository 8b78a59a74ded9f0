package agent

import (
	"sort"
	"sync"
)

// Registry maps agent ids to generators.
// It is safe for concurrent use.
type Registry struct {
	mu     sync.RWMutex
	agents map[string]Generator
}

// NewRegistry creates an empty agent registry.
func NewRegistry() *Registry {
	return &Registry{
		agents: make(map[string]Generator),
	}
}

// Register adds a generator under id.
// Returns an error if the id is already taken.
func (r *Registry) Register(id string, g Generator) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.agents[id]; exists {
		return &ErrAlreadyRegistered{ID: id}
	}
	r.agents[id] = g
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(id string, g Generator) {
	if err := r.Register(id, g); err != nil {
		panic(err)
	}
}

// Resolve returns the generator registered under id, or *NotFoundError.
func (r *Registry) Resolve(id string) (Generator, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	g, ok := r.agents[id]
	if !ok {
		return nil, &NotFoundError{ID: id}
	}
	return g, nil
}

// IDs returns the registered agent ids, sorted.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	ids := make([]string, 0, len(r.agents))
	for id := range r.agents {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
