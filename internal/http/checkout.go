package httpapi

import (
	"errors"
	"net/http"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/checkout"
	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/middleware"
)

type checkoutResponse struct {
	State           checkout.State `json:"state"`
	Order           *orderDetail   `json:"order,omitempty"`
	RedirectTo      string         `json:"redirectTo,omitempty"`
	RedirectAfterMs int64          `json:"redirectAfterMs,omitempty"`
	Error           string         `json:"error,omitempty"`
	Field           string         `json:"field,omitempty"`
	CorrelationID   string         `json:"correlationId,omitempty"`
}

func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request) {
	var form checkout.Form
	if err := decodeJSON(w, r, &form); err != nil {
		writeError(w, r, http.StatusBadRequest, "invalid json")
		return
	}

	s := h.session(r)
	res, err := s.Checkout().Submit(r.Context(), form)

	out := checkoutResponse{State: res.State, CorrelationID: middleware.GetCorrelationID(r.Context())}
	var verr *checkout.ValidationError
	switch {
	case err == nil:
		detail := newOrderDetail(*res.Order)
		out.Order = &detail
		out.RedirectTo = res.RedirectTo
		out.RedirectAfterMs = res.RedirectAfter.Milliseconds()
		writeJSON(w, http.StatusCreated, out)
	case errors.As(err, &verr):
		out.Error, out.Field = verr.Message, verr.Field
		writeJSON(w, http.StatusBadRequest, out)
	case errors.Is(err, checkout.ErrEmptyCart):
		out.Error = "Your cart is empty"
		writeJSON(w, http.StatusUnprocessableEntity, out)
	case errors.Is(err, checkout.ErrInProgress):
		out.Error = "checkout already in progress"
		writeJSON(w, http.StatusConflict, out)
	default:
		out.Error = checkout.MsgSubmitFailed
		writeJSON(w, http.StatusBadGateway, out)
	}
}
