package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store keeps one cart per cashier for the lifetime of the process. Carts
// are created lazily on first access.
type Store struct {
	mu    sync.RWMutex
	carts map[uuid.UUID]*Cart
}

// NewStore returns an empty cart store.
func NewStore() *Store {
	return &Store{carts: make(map[uuid.UUID]*Cart)}
}

// Get returns the cashier's cart, creating it if needed.
func (s *Store) Get(cashierID uuid.UUID) *Cart {
	s.mu.RLock()
	c, ok := s.carts[cashierID]
	s.mu.RUnlock()
	if ok {
		return c
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if c, ok := s.carts[cashierID]; ok {
		return c
	}
	c = New()
	s.carts[cashierID] = c
	return c
}

// Remove drops the cashier's cart, held orders included.
func (s *Store) Remove(cashierID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.carts, cashierID)
}
