package game

import (
	"errors"
	"fmt"
	"sync"
)

// ErrOutOfRange is returned by At for a position outside [0, Count()).
var ErrOutOfRange = errors.New("game index out of range")

// Registry holds games in insertion order and hands out their ids.
// Names and ids are unique; ids start at 1 and are never reused.
type Registry struct {
	mu     sync.RWMutex
	games  []Game
	nextID int64
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{nextID: 1}
}

// Add returns the game registered under name, creating it if absent.
// The name is stored verbatim; the empty string is a valid name.
func (r *Registry) Add(name string) Game {
	r.mu.Lock()
	defer r.mu.Unlock()
	if g, ok := r.byName(name); ok {
		return g
	}
	g := Game{ID: r.nextID, Name: name}
	r.nextID++
	r.games = append(r.games, g)
	return g
}

// At returns the game inserted at position i (zero-based).
func (r *Registry) At(i int) (Game, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if i < 0 || i >= len(r.games) {
		return Game{}, fmt.Errorf("%w: %d not in [0, %d)", ErrOutOfRange, i, len(r.games))
	}
	return r.games[i], nil
}

// ByID returns a game by id.
func (r *Registry) ByID(id int64) (Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, g := range r.games {
		if g.ID == id {
			return g, true
		}
	}
	return Game{}, false
}

// ByName returns a game by name.
func (r *Registry) ByName(name string) (Game, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byName(name)
}

// byName scans without locking (caller must hold mu).
func (r *Registry) byName(name string) (Game, bool) {
	for _, g := range r.games {
		if g.Name == name {
			return g, true
		}
	}
	return Game{}, false
}

// Count returns the number of registered games.
func (r *Registry) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.games)
}

// List returns a copy of all games in insertion order.
func (r *Registry) List() []Game {
	r.mu.RLock()
	defer r.mu.RUnlock()
	games := make([]Game, len(r.games))
	copy(games, r.games)
	return games
}
