package cart

import (
	"fmt"
	"time"
)

// Item is one line of a cart: a product reference at a unit price with
// a quantity and a free-form variation mapping (size, color, ...).
type Item struct {
	ID         string
	ProductRef string
	Name       string
	UnitPrice  int64
	Quantity   int
	Variation  map[string]string
}

func (i Item) Subtotal() int64 {
	return i.UnitPrice * int64(i.Quantity)
}

func (i Item) Validate() error {
	if i.ProductRef == "" {
		return fmt.Errorf("item product ref is required")
	}
	if i.Quantity < 1 {
		return fmt.Errorf("item quantity must be at least 1")
	}
	if i.UnitPrice < 0 {
		return fmt.Errorf("item unit price must not be negative")
	}

	return nil
}

// Cart is keyed by an opaque session identifier.
type Cart struct {
	SessionID string
	Items     []Item
	UpdatedAt time.Time
}

func (c Cart) Total() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.Subtotal()
	}
	return total
}

func (c Cart) Count() int {
	var n int
	for _, item := range c.Items {
		n += item.Quantity
	}
	return n
}
