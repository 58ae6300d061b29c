// Package store owns per-session storefront state. Each browsing session
// gets its own explicitly constructed container, so tests and concurrent
// clients hold independent instances instead of sharing one global object.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/apexgrid/gridwear/internal/auth"
	"github.com/apexgrid/gridwear/internal/cart"
	"github.com/apexgrid/gridwear/internal/view"
)

// ErrSessionNotFound is returned when a session id has no live store.
var ErrSessionNotFound = errors.New("session not found")

// Store is the state behind one browsing session: a cart, the navigation
// machine, and the in-progress password-reset flow if any. A Store is
// single-owner; HTTP handlers serialize access to Cart, View and the Reset
// pointer through Lock/Unlock. The ResetFlow itself is safe for concurrent
// use, so code delivery never blocks the store.
type Store struct {
	mu sync.Mutex

	Cart  *cart.Cart
	View  *view.Machine
	Reset *auth.ResetFlow
}

// Lock takes the store's mutex.
func (s *Store) Lock() { s.mu.Lock() }

// Unlock releases the store's mutex.
func (s *Store) Unlock() { s.mu.Unlock() }

// Sessions is the registry of live session stores. Safe for concurrent use.
type Sessions struct {
	mu       sync.RWMutex
	stores   map[uuid.UUID]*Store
	features view.Features
}

// NewSessions creates an empty registry. New stores inherit the given
// navigation feature flags.
func NewSessions(features view.Features) *Sessions {
	return &Sessions{
		stores:   make(map[uuid.UUID]*Store),
		features: features,
	}
}

// Features returns the navigation flags new sessions are created with.
func (s *Sessions) Features() view.Features {
	return s.features
}

// Create starts a fresh session: empty cart, machine on the home page.
func (s *Sessions) Create() (uuid.UUID, *Store) {
	id := uuid.New()
	st := &Store{
		Cart: cart.New(),
		View: view.NewMachine(s.features),
	}

	s.mu.Lock()
	s.stores[id] = st
	s.mu.Unlock()

	return id, st
}

// Get returns the store for the session id, or ErrSessionNotFound.
func (s *Sessions) Get(id uuid.UUID) (*Store, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	st, ok := s.stores[id]
	if !ok {
		return nil, ErrSessionNotFound
	}
	return st, nil
}

// Drop destroys the session and its state. Dropping an absent id is a no-op;
// there is nothing to persist.
func (s *Sessions) Drop(id uuid.UUID) {
	s.mu.Lock()
	delete(s.stores, id)
	s.mu.Unlock()
}

// Len reports the number of live sessions.
func (s *Sessions) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stores)
}
