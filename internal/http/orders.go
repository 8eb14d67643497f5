package httpapi

import (
	"net/http"
)

const msgOrdersFetchFailed = "Failed to fetch orders"

func (h *Handler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListOrders(r.Context())
	if err != nil {
		h.logger.Printf("list orders: %v", err)
		writeJSON(w, http.StatusOK, map[string]any{
			"orders": []orderSummary{},
			"error":  msgOrdersFetchFailed,
		})
		return
	}

	out := make([]orderSummary, 0, len(orders))
	for _, o := range orders {
		out = append(out, newOrderSummary(o))
	}
	writeJSON(w, http.StatusOK, map[string]any{"orders": out})
}

func (h *Handler) GetOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(r, "id")
	if !ok {
		writeError(w, r, http.StatusBadRequest, "invalid order id")
		return
	}

	o, err := h.orders.GetOrder(r.Context(), id)
	if err != nil {
		h.writeUpstreamError(w, r, err, "Order not found.", "Failed to fetch order details")
		return
	}
	writeJSON(w, http.StatusOK, newOrderDetail(*o))
}
