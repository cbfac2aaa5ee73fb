package memory

import (
	"context"
	"sync"
	"time"

	"github.com/allsvenskan/insikter/internal/domain/cart"
)

// CartRepository is the in-memory cart store used in tests and when no
// database is configured.
type CartRepository struct {
	mu    sync.RWMutex
	carts map[string]cart.Cart
	now   func() time.Time
}

func NewCartRepository() *CartRepository {
	return &CartRepository{
		carts: make(map[string]cart.Cart),
		now:   time.Now,
	}
}

func (r *CartRepository) Get(_ context.Context, sessionID string) (cart.Cart, bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	existing, ok := r.carts[sessionID]
	if !ok {
		return cart.Cart{}, false, nil
	}
	return cloneCart(existing), true, nil
}

func (r *CartRepository) UpsertItem(_ context.Context, sessionID string, item cart.Item) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing := r.carts[sessionID]
	existing.SessionID = sessionID
	existing.UpdatedAt = r.now()

	for i, line := range existing.Items {
		if line.ProductRef == item.ProductRef && sameVariation(line.Variation, item.Variation) {
			existing.Items[i].Quantity += item.Quantity
			r.carts[sessionID] = existing
			return nil
		}
	}

	existing.Items = append(existing.Items, item)
	r.carts[sessionID] = existing
	return nil
}

func (r *CartRepository) UpdateQuantity(_ context.Context, sessionID, itemID string, quantity int) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.carts[sessionID]
	if !ok {
		return cart.ErrItemNotFound
	}
	for i, line := range existing.Items {
		if line.ID == itemID {
			existing.Items[i].Quantity = quantity
			existing.UpdatedAt = r.now()
			r.carts[sessionID] = existing
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (r *CartRepository) RemoveItem(_ context.Context, sessionID, itemID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	existing, ok := r.carts[sessionID]
	if !ok {
		return cart.ErrItemNotFound
	}
	for i, line := range existing.Items {
		if line.ID == itemID {
			existing.Items = append(existing.Items[:i], existing.Items[i+1:]...)
			existing.UpdatedAt = r.now()
			r.carts[sessionID] = existing
			return nil
		}
	}
	return cart.ErrItemNotFound
}

func (r *CartRepository) Clear(_ context.Context, sessionID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	delete(r.carts, sessionID)
	return nil
}

func cloneCart(in cart.Cart) cart.Cart {
	out := in
	out.Items = make([]cart.Item, len(in.Items))
	copy(out.Items, in.Items)
	return out
}

func sameVariation(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for key, value := range a {
		if b[key] != value {
			return false
		}
	}
	return true
}
