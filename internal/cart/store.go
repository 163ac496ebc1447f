// Package cart keeps the local mirror of the user's remote reservation
// cart: the cart header, its line items, the item counter shown in the
// header badge, and a loading flag.
package cart

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/capachica-turismo/reservas-service/internal/integrations/reservasapi"
)

// Snapshot read-only view of the store state
type Snapshot struct {
	Cart       *reservasapi.Cart
	Items      []reservasapi.CartItem
	TotalItems int
	Loading    bool
}

// Store client-side cart state. All state changes go through the remote
// API first; the local mirror follows.
type Store struct {
	mu sync.RWMutex

	cart       *reservasapi.Cart
	items      []reservasapi.CartItem
	totalItems int
	loading    bool

	client Client
	log    Logger
}

// NewStore creates an empty cart store
func NewStore(client Client, log Logger) *Store {
	return &Store{
		client: client,
		log:    log,
	}
}

// Snapshot returns a copy of the current state
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]reservasapi.CartItem, len(s.items))
	copy(items, s.items)

	return Snapshot{
		Cart:       s.cart,
		Items:      items,
		TotalItems: s.totalItems,
		Loading:    s.loading,
	}
}

// TotalItems returns the number of items in the cart
func (s *Store) TotalItems() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.totalItems
}

// IsLoading reports whether a refresh is in flight
func (s *Store) IsLoading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading
}

// HasService reports whether the service already has a line item
func (s *Store) HasService(serviceID int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.hasServiceLocked(serviceID)
}

func (s *Store) hasServiceLocked(serviceID int64) bool {
	for _, item := range s.items {
		if item.ServicioID == serviceID {
			return true
		}
	}
	return false
}

// Load refreshes the local mirror from the API. On auth failure the local
// state is dropped; on other failures the stale state is kept so the user
// does not watch their cart vanish over a flaky connection.
func (s *Store) Load(ctx context.Context) error {
	s.setLoading(true)
	defer s.setLoading(false)

	remote, err := s.client.GetCart(ctx)
	if err != nil {
		if errors.Is(err, reservasapi.ErrUnauthorized) {
			s.log.Warn("Load: session rejected, dropping local cart")
			s.reset()
			return ErrNotAuthenticated
		}
		s.log.Error("Load: failed to fetch cart: %v", err)
		return fmt.Errorf("%w: Load: %v", ErrRemote, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if remote == nil {
		s.cart = nil
		s.items = nil
		s.totalItems = 0
		s.log.Info("Load: no pending cart")
		return nil
	}

	s.cart = remote
	s.items = remote.Servicios
	s.totalItems = len(remote.Servicios)
	s.log.Info("Load: cart %s loaded with %d items", remote.CodigoReserva, s.totalItems)
	return nil
}

// Add puts a service into the cart. A service already present is rejected
// locally without touching the network; the backend enforces the same rule.
// After a successful add the whole cart is reloaded so server-computed
// fields (item ids, cart code) land in the mirror.
func (s *Store) Add(ctx context.Context, req reservasapi.AddItemRequest) (*reservasapi.AddItemResult, error) {
	s.mu.RLock()
	duplicate := s.hasServiceLocked(req.ServicioID)
	s.mu.RUnlock()

	if duplicate {
		s.log.Warn("Add: service %d already in cart", req.ServicioID)
		return nil, ErrServiceAlreadyInCart
	}

	result, err := s.client.AddItem(ctx, req)
	if err != nil {
		if errors.Is(err, reservasapi.ErrUnauthorized) {
			s.reset()
			return nil, ErrNotAuthenticated
		}
		s.log.Error("Add: failed to add service %d: %v", req.ServicioID, err)
		return nil, fmt.Errorf("%w: Add: %v", ErrRemote, err)
	}

	if err := s.Load(ctx); err != nil {
		// The add itself succeeded; a failed refresh only leaves the
		// mirror stale until the next load.
		s.log.Warn("Add: reload after add failed: %v", err)
	}

	s.log.Info("Add: service %d added to cart %s", req.ServicioID, result.CodigoReserva)
	return result, nil
}

// Remove deletes a line item remotely, then drops it from the mirror
// without a full reload
func (s *Store) Remove(ctx context.Context, itemID int64) error {
	if err := s.client.RemoveItem(ctx, itemID); err != nil {
		if errors.Is(err, reservasapi.ErrUnauthorized) {
			s.reset()
			return ErrNotAuthenticated
		}
		s.log.Error("Remove: failed to remove item %d: %v", itemID, err)
		return fmt.Errorf("%w: Remove: %v", ErrRemote, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i, item := range s.items {
		if item.ID == itemID {
			s.items = append(s.items[:i], s.items[i+1:]...)
			if s.cart != nil {
				s.cart.Servicios = s.items
			}
			if s.totalItems > 0 {
				s.totalItems--
			}
			break
		}
	}

	s.log.Info("Remove: item %d removed, %d items left", itemID, s.totalItems)
	return nil
}

// Confirm turns the cart into a confirmed reservation and empties the
// mirror; the confirmed cart is returned for the success screen
func (s *Store) Confirm(ctx context.Context) (*reservasapi.Cart, error) {
	confirmed, err := s.client.Confirm(ctx)
	if err != nil {
		if errors.Is(err, reservasapi.ErrUnauthorized) {
			s.reset()
			return nil, ErrNotAuthenticated
		}
		s.log.Error("Confirm: failed: %v", err)
		return nil, fmt.Errorf("%w: Confirm: %v", ErrRemote, err)
	}

	s.reset()
	s.log.Info("Confirm: cart %s confirmed", confirmed.CodigoReserva)
	return confirmed, nil
}

// Clear empties the cart remotely and drops the mirror. The mirror is
// dropped even when the remote call fails: an emptied-looking cart that
// still exists server-side self-heals on the next load, the reverse
// confuses the user.
func (s *Store) Clear(ctx context.Context) error {
	err := s.client.Empty(ctx)
	s.reset()

	if err != nil {
		if errors.Is(err, reservasapi.ErrUnauthorized) {
			return ErrNotAuthenticated
		}
		s.log.Error("Clear: failed: %v", err)
		return fmt.Errorf("%w: Clear: %v", ErrRemote, err)
	}

	s.log.Info("Clear: cart emptied")
	return nil
}

func (s *Store) reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.items = nil
	s.totalItems = 0
}

func (s *Store) setLoading(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.loading = v
}
