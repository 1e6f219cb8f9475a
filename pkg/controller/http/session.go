package http

import (
	"context"
	"net/http"

	"github.com/secmon-lab/ticklist/pkg/domain/types"
)

const sessionCookieName = "ticklist_session"

type ctxSessionKey struct{}

// sessionMiddleware assigns each browser a stable session ID via cookie.
// The session ID is the persistence key of the checklist; there is no user
// account model.
func sessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var sessionID types.SessionID

		if cookie, err := r.Cookie(sessionCookieName); err == nil {
			sessionID = types.SessionID(cookie.Value)
		}
		if sessionID.Validate() != nil {
			sessionID = types.NewSessionID()
			http.SetCookie(w, &http.Cookie{
				Name:     sessionCookieName,
				Value:    sessionID.String(),
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		ctx := context.WithValue(r.Context(), ctxSessionKey{}, sessionID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionFrom returns the session ID set by sessionMiddleware
func sessionFrom(ctx context.Context) types.SessionID {
	if id, ok := ctx.Value(ctxSessionKey{}).(types.SessionID); ok {
		return id
	}
	return ""
}
