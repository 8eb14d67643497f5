package httpapi

import (
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
)

func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, newCartView(h.session(r).Cart()))
}

func (h *Handler) AddCartItem(w http.ResponseWriter, r *http.Request) {
	var body struct {
		ProductID int64 `json:"productId"`
	}
	if err := decodeJSON(w, r, &body); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}
	if body.ProductID <= 0 {
		writeError(w, r, http.StatusBadRequest, "missing productId")
		return
	}

	s := h.session(r)

	// Price and stock come from the catalog, never from the caller.
	p, err := h.products.GetProduct(r.Context(), body.ProductID)
	if err != nil {
		h.writeUpstreamError(w, r, err, "Product not found", "Failed to fetch product")
		return
	}
	if !p.InStock() {
		s.Toasts().Post(notify.KindWarning, p.Name+" is out of stock")
		writeError(w, r, http.StatusConflict, "product is out of stock")
		return
	}

	s.AddToCart(*p)
	writeJSON(w, http.StatusOK, newCartView(s.Cart()))
}

func (h *Handler) SetCartItemQuantity(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "productId")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid productId")
		return
	}

	var body struct {
		Quantity *int `json:"quantity"`
	}
	if err := decodeJSON(w, r, &body); err != nil || body.Quantity == nil {
		writeError(w, r, http.StatusBadRequest, "invalid json: quantity is required")
		return
	}

	s := h.session(r)
	s.SetQuantity(id, *body.Quantity)
	writeJSON(w, http.StatusOK, newCartView(s.Cart()))
}

func (h *Handler) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "productId")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid productId")
		return
	}

	s := h.session(r)
	s.RemoveFromCart(id)
	writeJSON(w, http.StatusOK, newCartView(s.Cart()))
}

func (h *Handler) ClearCart(w http.ResponseWriter, r *http.Request) {
	s := h.session(r)
	s.ClearCart()
	writeJSON(w, http.StatusOK, newCartView(s.Cart()))
}
