package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/allsvenskan/insikter/internal/domain/cart"
	"github.com/allsvenskan/insikter/internal/platform/id"
)

type AddCartItemInput struct {
	ProductRef string
	Name       string
	UnitPrice  int64
	Quantity   int
	Variation  map[string]string
}

// CartService manages session-keyed shopping carts.
type CartService struct {
	repo cart.Repository
	ids  id.Generator
	now  func() time.Time
}

func NewCartService(repo cart.Repository, ids id.Generator) *CartService {
	return &CartService{
		repo: repo,
		ids:  ids,
		now:  time.Now,
	}
}

func (s *CartService) NewSessionID() (string, error) {
	sessionID, err := s.ids.NewID()
	if err != nil {
		return "", fmt.Errorf("generate session id: %w", err)
	}
	return sessionID, nil
}

func (s *CartService) GetCart(ctx context.Context, sessionID string) (cart.Cart, error) {
	ctx, span := startUsecaseSpan(ctx, "CartService.GetCart")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return cart.Cart{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	existing, found, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return cart.Cart{}, fmt.Errorf("%w: get cart: %v", ErrDependencyUnavailable, err)
	}
	if !found {
		return cart.Cart{SessionID: sessionID, UpdatedAt: s.now()}, nil
	}
	return existing, nil
}

func (s *CartService) AddItem(ctx context.Context, sessionID string, input AddCartItemInput) (cart.Cart, error) {
	ctx, span := startUsecaseSpan(ctx, "CartService.AddItem")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return cart.Cart{}, fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	itemID, err := s.ids.NewID()
	if err != nil {
		return cart.Cart{}, fmt.Errorf("generate item id: %w", err)
	}

	item := cart.Item{
		ID:         itemID,
		ProductRef: strings.TrimSpace(input.ProductRef),
		Name:       strings.TrimSpace(input.Name),
		UnitPrice:  input.UnitPrice,
		Quantity:   input.Quantity,
		Variation:  input.Variation,
	}
	if err := item.Validate(); err != nil {
		return cart.Cart{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	if err := s.repo.UpsertItem(ctx, sessionID, item); err != nil {
		return cart.Cart{}, fmt.Errorf("%w: add cart item: %v", ErrDependencyUnavailable, err)
	}
	return s.GetCart(ctx, sessionID)
}

func (s *CartService) UpdateQuantity(ctx context.Context, sessionID, itemID string, quantity int) (cart.Cart, error) {
	ctx, span := startUsecaseSpan(ctx, "CartService.UpdateQuantity")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	itemID = strings.TrimSpace(itemID)
	if sessionID == "" || itemID == "" {
		return cart.Cart{}, fmt.Errorf("%w: session id and item id are required", ErrInvalidInput)
	}
	if quantity < 1 {
		return cart.Cart{}, fmt.Errorf("%w: quantity must be at least 1", ErrInvalidInput)
	}

	if err := s.repo.UpdateQuantity(ctx, sessionID, itemID, quantity); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			return cart.Cart{}, fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
		}
		return cart.Cart{}, fmt.Errorf("%w: update cart quantity: %v", ErrDependencyUnavailable, err)
	}
	return s.GetCart(ctx, sessionID)
}

func (s *CartService) RemoveItem(ctx context.Context, sessionID, itemID string) (cart.Cart, error) {
	ctx, span := startUsecaseSpan(ctx, "CartService.RemoveItem")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	itemID = strings.TrimSpace(itemID)
	if sessionID == "" || itemID == "" {
		return cart.Cart{}, fmt.Errorf("%w: session id and item id are required", ErrInvalidInput)
	}

	if err := s.repo.RemoveItem(ctx, sessionID, itemID); err != nil {
		if errors.Is(err, cart.ErrItemNotFound) {
			return cart.Cart{}, fmt.Errorf("%w: cart item %s", ErrNotFound, itemID)
		}
		return cart.Cart{}, fmt.Errorf("%w: remove cart item: %v", ErrDependencyUnavailable, err)
	}
	return s.GetCart(ctx, sessionID)
}

func (s *CartService) ClearCart(ctx context.Context, sessionID string) error {
	ctx, span := startUsecaseSpan(ctx, "CartService.ClearCart")
	defer span.End()

	sessionID = strings.TrimSpace(sessionID)
	if sessionID == "" {
		return fmt.Errorf("%w: session id is required", ErrInvalidInput)
	}

	if err := s.repo.Clear(ctx, sessionID); err != nil {
		return fmt.Errorf("%w: clear cart: %v", ErrDependencyUnavailable, err)
	}
	return nil
}
