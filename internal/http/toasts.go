package httpapi

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/andreasstove999/ecommerce-system/storefront-go/internal/notify"
)

func (h *Handler) ListToasts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"toasts": h.session(r).Toasts().List()})
}

// DismissToast is idempotent: an already expired toast still answers 204.
func (h *Handler) DismissToast(w http.ResponseWriter, r *http.Request) {
	h.session(r).Toasts().Dismiss(chi.URLParam(r, "id"))
	w.WriteHeader(http.StatusNoContent)
}

// StreamToasts pushes the session's toast list as server-sent events,
// once on connect and again after every change. The stream ends when the
// session is closed or the server shuts down.
func (h *Handler) StreamToasts(w http.ResponseWriter, r *http.Request) {
	rc := http.NewResponseController(w)
	sink := h.session(r).Toasts()

	updates := make(chan []notify.Toast, 8)
	unsubscribe := sink.Subscribe(func(toasts []notify.Toast) {
		select {
		case updates <- toasts:
		default:
			// slow reader; the next change carries the full list anyway
		}
	})
	defer unsubscribe()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.WriteHeader(http.StatusOK)

	send := func(toasts []notify.Toast) error {
		payload, err := json.Marshal(map[string]any{"toasts": toasts})
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintf(w, "event: toasts\ndata: %s\n\n", payload); err != nil {
			return err
		}
		return rc.Flush()
	}

	if err := send(sink.List()); err != nil {
		return
	}
	for {
		select {
		case <-r.Context().Done():
			return
		case <-sink.Done():
			// session evicted or closed; the client reconnects to a fresh one
			return
		case <-h.shutdown:
			return
		case toasts := <-updates:
			if err := send(toasts); err != nil {
				return
			}
		}
	}
}
