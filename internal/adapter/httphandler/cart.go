package httphandler

import (
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

// GET api/cart?cartId=id (200 OK {cart|null}, 400 Bad request)
// POST api/cart JSON {action, cartId?, lines?, lineIds?} (200 OK, 400 Bad request, 500)

type CartHandler struct {
	carts port.CartFacade
}

func RegisterCart(mux *http.ServeMux, carts port.CartFacade) {
	h := CartHandler{carts}
	mux.HandleFunc("GET /api/cart", h.GetCart)
	mux.Handle("POST /api/cart", AllowJSON(http.HandlerFunc(h.PostCart)))
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.GetCart"
	log := slog.With("op", op)

	cart, err := h.carts.Get(r.Context(), r.URL.Query().Get("cartId"))
	if err != nil {
		writeFailure(w, log, err, "failed to fetch cart")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{cart})
}

func (h CartHandler) PostCart(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCart"
	log := slog.With("op", op)

	var req domain.CartRequest
	if err := decodeJSON(r, &req); err != nil {
		log.Warn("failed to parse JSON", "err", err)
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		return
	}

	cart, err := h.carts.Do(r.Context(), req)
	if err != nil {
		writeFailure(w, log, err, "cart operation failed")
		return
	}
	writeJSON(w, http.StatusOK, cartResponse{&cart})
}
