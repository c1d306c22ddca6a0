package httphandler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/cartsession"
	"github.com/niksmo/storefront/internal/core/domain"
)

// Session cart endpoints. Each requires the session cookie set by [Session].
//
// GET v1/session/cart
// POST v1/session/cart/items JSON {variantId, quantity?}
// PATCH v1/session/cart/lines/{lineId} JSON {quantity}
// DELETE v1/session/cart/lines/{lineId}
// POST v1/session/cart/lines/{lineId}/decrement
// POST v1/session/cart/drawer/open, v1/session/cart/drawer/close

type SessionControllers interface {
	Controller(ctx context.Context, sessionID string) *cartsession.Controller
}

type SessionCartHandler struct {
	sessions SessionControllers
}

func RegisterSessionCart(mux *http.ServeMux, sessions SessionControllers) {
	h := SessionCartHandler{sessions}
	mux.HandleFunc("GET /v1/session/cart", h.GetCart)
	mux.Handle("POST /v1/session/cart/items", AllowJSON(http.HandlerFunc(h.PostItem)))
	mux.Handle(
		"PATCH /v1/session/cart/lines/{lineId}",
		AllowJSON(http.HandlerFunc(h.PatchLine)),
	)
	mux.HandleFunc("DELETE /v1/session/cart/lines/{lineId}", h.DeleteLine)
	mux.HandleFunc("POST /v1/session/cart/lines/{lineId}/decrement", h.PostDecrement)
	mux.HandleFunc("POST /v1/session/cart/drawer/open", h.PostDrawerOpen)
	mux.HandleFunc("POST /v1/session/cart/drawer/close", h.PostDrawerClose)
}

func (h SessionCartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	writeState(w, ctrl)
}

func (h SessionCartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "SessionCartHandler.PostItem"
	log := slog.With("op", op)

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}

	var req addItemRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		return
	}
	quantity := 1
	if req.Quantity != nil {
		quantity = *req.Quantity
	}

	if err := ctrl.AddItem(r.Context(), req.VariantID, quantity); err != nil {
		writeFailure(w, log, err, "failed to add item")
		return
	}
	writeState(w, ctrl)
}

func (h SessionCartHandler) PatchLine(w http.ResponseWriter, r *http.Request) {
	const op = "SessionCartHandler.PatchLine"
	log := slog.With("op", op)

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}

	var req updateItemRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		return
	}
	if req.Quantity == nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{
			Error: "quantity is required", Field: "quantity",
		})
		return
	}

	err := ctrl.UpdateItem(r.Context(), r.PathValue("lineId"), *req.Quantity)
	if err != nil {
		writeFailure(w, log, err, "failed to update item")
		return
	}
	writeState(w, ctrl)
}

func (h SessionCartHandler) DeleteLine(w http.ResponseWriter, r *http.Request) {
	const op = "SessionCartHandler.DeleteLine"
	log := slog.With("op", op)

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	if err := ctrl.RemoveItem(r.Context(), r.PathValue("lineId")); err != nil {
		writeFailure(w, log, err, "failed to remove item")
		return
	}
	writeState(w, ctrl)
}

func (h SessionCartHandler) PostDecrement(w http.ResponseWriter, r *http.Request) {
	const op = "SessionCartHandler.PostDecrement"
	log := slog.With("op", op)

	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	if err := ctrl.DecrementItem(r.Context(), r.PathValue("lineId")); err != nil {
		writeFailure(w, log, err, "failed to update item")
		return
	}
	writeState(w, ctrl)
}

func (h SessionCartHandler) PostDrawerOpen(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	ctrl.OpenCart()
	writeState(w, ctrl)
}

func (h SessionCartHandler) PostDrawerClose(w http.ResponseWriter, r *http.Request) {
	ctrl, ok := h.controller(w, r)
	if !ok {
		return
	}
	ctrl.CloseCart()
	writeState(w, ctrl)
}

func (h SessionCartHandler) controller(
	w http.ResponseWriter, r *http.Request,
) (*cartsession.Controller, bool) {
	id := domain.SessionID(r.Context())
	if id == "" {
		writeError(w, http.StatusBadRequest, "session is required")
		return nil, false
	}
	return h.sessions.Controller(r.Context(), id), true
}

func writeState(w http.ResponseWriter, ctrl *cartsession.Controller) {
	s := ctrl.State()
	writeJSON(w, http.StatusOK, sessionCartResponse{
		Cart:         s.Cart,
		CartID:       s.CartID,
		IsLoading:    s.IsLoading,
		IsMutating:   s.IsMutating,
		IsDrawerOpen: s.IsDrawerOpen,
	})
}
