package presets

import (
	"errors"
	"fmt"
)

// ErrNotFound is returned when a registry has no entry for an ID.
var ErrNotFound = errors.New("not found")

// Keyed is implemented by registry entries.
type Keyed interface {
	Key() string
}

// Registry holds loaded definitions in file order and indexes them by ID.
type Registry[T Keyed] struct {
	byID map[string]*T
	all  []T
}

// NewRegistry creates a registry from loaded definitions. Later duplicates
// shadow earlier ones in lookups.
func NewRegistry[T Keyed](entries []T) *Registry[T] {
	registry := &Registry[T]{
		byID: make(map[string]*T, len(entries)),
		all:  entries,
	}
	for i := range entries {
		registry.byID[entries[i].Key()] = &entries[i]
	}
	return registry
}

func newLoadedRegistry[T Keyed](filename string, entries []T) (*Registry[T], error) {
	if len(entries) == 0 {
		return nil, fmt.Errorf("no entries loaded from %s", filename)
	}
	return NewRegistry(entries), nil
}

// GetByID returns the definition with the given ID, or nil if not found.
func (r *Registry[T]) GetByID(id string) *T {
	return r.byID[id]
}

// Lookup is GetByID with an error for unknown IDs.
func (r *Registry[T]) Lookup(id string) (T, error) {
	if def := r.byID[id]; def != nil {
		return *def, nil
	}
	var zero T
	return zero, fmt.Errorf("%q: %w", id, ErrNotFound)
}

// IDs returns the IDs of all definitions in file order.
func (r *Registry[T]) IDs() []string {
	ids := make([]string, 0, len(r.all))
	for _, def := range r.all {
		ids = append(ids, def.Key())
	}
	return ids
}

// All returns all definitions.
func (r *Registry[T]) All() []T {
	return r.all
}

// Count returns the number of definitions in the registry.
func (r *Registry[T]) Count() int {
	return len(r.all)
}
