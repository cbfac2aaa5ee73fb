package httpapi

import (
	"fmt"
	"net/http"
	"strings"

	sonic "github.com/bytedance/sonic"

	"github.com/allsvenskan/insikter/internal/usecase"
)

const cartSessionHeader = "X-Cart-Session"

type addCartItemRequest struct {
	ProductRef string            `json:"product_ref" validate:"required,max=100"`
	Name       string            `json:"name" validate:"omitempty,max=200"`
	UnitPrice  int64             `json:"unit_price" validate:"gte=0"`
	Quantity   int               `json:"quantity" validate:"required,gte=1"`
	Variation  map[string]string `json:"variation" validate:"omitempty,max=10"`
}

type updateCartQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required,gte=1"`
}

type cartSessionDTO struct {
	SessionID string `json:"session_id"`
}

func cartSessionFromRequest(r *http.Request) (string, error) {
	sessionID := strings.TrimSpace(r.Header.Get(cartSessionHeader))
	if sessionID == "" {
		return "", fmt.Errorf("%w: missing %s header", usecase.ErrInvalidInput, cartSessionHeader)
	}
	return sessionID, nil
}

func (h *Handler) CreateCartSession(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.CreateCartSession")
	defer span.End()

	sessionID, err := h.carts.NewSessionID()
	if err != nil {
		h.logger.ErrorContext(ctx, "create cart session failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusCreated, cartSessionDTO{SessionID: sessionID})
}

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetCart")
	defer span.End()

	sessionID, err := cartSessionFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.carts.GetCart(ctx, sessionID)
	if err != nil {
		h.logger.WarnContext(ctx, "get cart failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cartToDTO(c))
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.AddCartItem")
	defer span.End()

	sessionID, err := cartSessionFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	var req addCartItemRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.carts.AddItem(ctx, sessionID, usecase.AddCartItemInput{
		ProductRef: req.ProductRef,
		Name:       req.Name,
		UnitPrice:  req.UnitPrice,
		Quantity:   req.Quantity,
		Variation:  req.Variation,
	})
	if err != nil {
		h.logger.WarnContext(ctx, "add cart item failed", "session_id", sessionID, "product_ref", req.ProductRef, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cartToDTO(c))
}

func (h *Handler) UpdateCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.UpdateCartItemQuantity")
	defer span.End()

	sessionID, err := cartSessionFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	itemID := strings.TrimSpace(r.PathValue("itemID"))
	if itemID == "" {
		writeError(ctx, w, fmt.Errorf("%w: item id is required", usecase.ErrInvalidInput))
		return
	}

	var req updateCartQuantityRequest
	decoder := sonic.ConfigDefault.NewDecoder(r.Body)
	if err := decoder.Decode(&req); err != nil {
		writeError(ctx, w, fmt.Errorf("%w: invalid request body: %v", usecase.ErrInvalidInput, err))
		return
	}
	if err := h.validateRequest(ctx, req); err != nil {
		writeError(ctx, w, err)
		return
	}

	c, err := h.carts.UpdateQuantity(ctx, sessionID, itemID, req.Quantity)
	if err != nil {
		h.logger.WarnContext(ctx, "update cart quantity failed", "session_id", sessionID, "item_id", itemID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cartToDTO(c))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RemoveCartItem")
	defer span.End()

	sessionID, err := cartSessionFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	itemID := strings.TrimSpace(r.PathValue("itemID"))
	if itemID == "" {
		writeError(ctx, w, fmt.Errorf("%w: item id is required", usecase.ErrInvalidInput))
		return
	}

	c, err := h.carts.RemoveItem(ctx, sessionID, itemID)
	if err != nil {
		h.logger.WarnContext(ctx, "remove cart item failed", "session_id", sessionID, "item_id", itemID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, cartToDTO(c))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ClearCart")
	defer span.End()

	sessionID, err := cartSessionFromRequest(r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	if err := h.carts.ClearCart(ctx, sessionID); err != nil {
		h.logger.WarnContext(ctx, "clear cart failed", "session_id", sessionID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, map[string]string{"status": "cleared"})
}
