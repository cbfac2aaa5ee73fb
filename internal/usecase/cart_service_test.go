package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/allsvenskan/insikter/internal/domain/cart"
	"github.com/allsvenskan/insikter/internal/infrastructure/repository/memory"
	"github.com/allsvenskan/insikter/internal/platform/id"
)

// downCartRepository fails every operation, like a cart database that
// stopped accepting connections.
type downCartRepository struct{ err error }

func (r downCartRepository) Get(context.Context, string) (cart.Cart, bool, error) {
	return cart.Cart{}, false, r.err
}
func (r downCartRepository) UpsertItem(context.Context, string, cart.Item) error { return r.err }
func (r downCartRepository) UpdateQuantity(context.Context, string, string, int) error {
	return r.err
}
func (r downCartRepository) RemoveItem(context.Context, string, string) error { return r.err }
func (r downCartRepository) Clear(context.Context, string) error              { return r.err }

func TestCartService_AddUpdateRemove(t *testing.T) {
	t.Parallel()

	svc := NewCartService(memory.NewCartRepository(), id.NewRandomGenerator())
	ctx := context.Background()

	sessionID, err := svc.NewSessionID()
	require.NoError(t, err)

	got, err := svc.AddItem(ctx, sessionID, AddCartItemInput{
		ProductRef: "scarf-blue",
		Name:       "Supporter Scarf",
		UnitPrice:  19900,
		Quantity:   2,
		Variation:  map[string]string{"color": "blue"},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.EqualValues(t, 39800, got.Total())
	require.Equal(t, 2, got.Count())

	// Same product and variation merges into the existing line.
	got, err = svc.AddItem(ctx, sessionID, AddCartItemInput{
		ProductRef: "scarf-blue",
		Name:       "Supporter Scarf",
		UnitPrice:  19900,
		Quantity:   1,
		Variation:  map[string]string{"color": "blue"},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 1)
	require.Equal(t, 3, got.Items[0].Quantity)

	// Different variation gets its own line.
	got, err = svc.AddItem(ctx, sessionID, AddCartItemInput{
		ProductRef: "scarf-blue",
		Name:       "Supporter Scarf",
		UnitPrice:  19900,
		Quantity:   1,
		Variation:  map[string]string{"color": "green"},
	})
	require.NoError(t, err)
	require.Len(t, got.Items, 2)

	itemID := got.Items[0].ID
	got, err = svc.UpdateQuantity(ctx, sessionID, itemID, 1)
	require.NoError(t, err)
	require.Equal(t, 1, got.Items[0].Quantity)

	got, err = svc.RemoveItem(ctx, sessionID, itemID)
	require.NoError(t, err)
	require.Len(t, got.Items, 1)

	require.NoError(t, svc.ClearCart(ctx, sessionID))
	got, err = svc.GetCart(ctx, sessionID)
	require.NoError(t, err)
	require.Empty(t, got.Items)
	require.EqualValues(t, 0, got.Total())
}

func TestCartService_Validation(t *testing.T) {
	t.Parallel()

	svc := NewCartService(memory.NewCartRepository(), id.NewRandomGenerator())
	ctx := context.Background()

	_, err := svc.AddItem(ctx, "s1", AddCartItemInput{ProductRef: "", Quantity: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.AddItem(ctx, "s1", AddCartItemInput{ProductRef: "x", Quantity: 0})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = svc.UpdateQuantity(ctx, "s1", "missing-item", 2)
	require.True(t, errors.Is(err, ErrNotFound), "missing item should map to not found, got %v", err)

	_, err = svc.GetCart(ctx, "  ")
	require.ErrorIs(t, err, ErrInvalidInput)
}

func TestCartService_RepositoryOutageIsDependencyUnavailable(t *testing.T) {
	t.Parallel()

	svc := NewCartService(downCartRepository{err: errors.New("connection refused")}, id.NewRandomGenerator())
	ctx := context.Background()

	_, err := svc.GetCart(ctx, "s1")
	require.ErrorIs(t, err, ErrDependencyUnavailable)

	_, err = svc.AddItem(ctx, "s1", AddCartItemInput{ProductRef: "scarf-blue", UnitPrice: 19900, Quantity: 1})
	require.ErrorIs(t, err, ErrDependencyUnavailable)

	_, err = svc.UpdateQuantity(ctx, "s1", "line-1", 2)
	require.ErrorIs(t, err, ErrDependencyUnavailable)

	_, err = svc.RemoveItem(ctx, "s1", "line-1")
	require.ErrorIs(t, err, ErrDependencyUnavailable)

	require.ErrorIs(t, svc.ClearCart(ctx, "s1"), ErrDependencyUnavailable)
}
