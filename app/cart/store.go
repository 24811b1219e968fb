package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store maps session-held cart ids to carts. Carts live for the process
// lifetime only.
type Store struct {
	mu    sync.Mutex
	carts map[string]*Cart
}

func NewStore() *Store {
	return &Store{carts: make(map[string]*Cart)}
}

// Get returns the cart for the id, creating it on first use. An empty id
// gets a fresh id assigned; the caller is expected to persist the returned
// id in the browser session.
func (s *Store) Get(cartID string) (string, *Cart) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if cartID == "" {
		cartID = uuid.New().String()
	}
	c, ok := s.carts[cartID]
	if !ok {
		c = New()
		s.carts[cartID] = c
	}
	return cartID, c
}

// Peek returns the cart for the id without creating one.
func (s *Store) Peek(cartID string) (*Cart, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	c, ok := s.carts[cartID]
	return c, ok
}
