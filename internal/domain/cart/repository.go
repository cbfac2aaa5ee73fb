package cart

import (
	"context"
	"errors"
)

// ErrItemNotFound is returned by repositories when a line item does
// not exist in the session's cart.
var ErrItemNotFound = errors.New("cart item not found")

// Repository describes cart persistence needs from use cases.
type Repository interface {
	Get(ctx context.Context, sessionID string) (Cart, bool, error)
	UpsertItem(ctx context.Context, sessionID string, item Item) error
	UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) error
	RemoveItem(ctx context.Context, sessionID, itemID string) error
	Clear(ctx context.Context, sessionID string) error
}
