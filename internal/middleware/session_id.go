package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
)

const HeaderSessionID = "X-Session-Id"

// SessionID makes sure every request carries a session id. A missing or
// malformed id is replaced with a fresh one, and the id in use is echoed
// back so the caller can keep it.
func SessionID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get(HeaderSessionID))
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
		}

		w.Header().Set(HeaderSessionID, sid)

		ctx := context.WithValue(r.Context(), ctxSessionID, sid)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func GetSessionID(ctx context.Context) string {
	return stringFromContext(ctx, ctxSessionID)
}
