package httpapi

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// SessionHeader carries the browsing-session identifier. Carts and checkout
// state are scoped to it; nothing survives the session.
const SessionHeader = "X-Session-ID"

type contextKey string

const sessionIDKey contextKey = "session_id"

// SessionMiddleware reads the session id from the request header, minting a
// fresh one when absent, and echoes it back so the client can keep it.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID := r.Header.Get(SessionHeader)
		if sessionID == "" {
			sessionID = uuid.New().String()
		}

		w.Header().Set(SessionHeader, sessionID)
		ctx := context.WithValue(r.Context(), sessionIDKey, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func sessionIDFromContext(ctx context.Context) string {
	if sessionID, ok := ctx.Value(sessionIDKey).(string); ok {
		return sessionID
	}
	return ""
}
