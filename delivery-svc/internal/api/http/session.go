package httpapi

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	SessionCookie = "sinet_session"
	SessionHeader = "X-Session-ID"
)

type sessionKey struct{}

// SessionMiddleware attaches the cart session id to the request context,
// issuing a new one as a cookie when the client sent none.
func SessionMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sid := strings.TrimSpace(r.Header.Get(SessionHeader))
		if sid == "" {
			if cookie, err := r.Cookie(SessionCookie); err == nil {
				sid = strings.TrimSpace(cookie.Value)
			}
		}
		if _, err := uuid.Parse(sid); err != nil {
			sid = uuid.NewString()
			http.SetCookie(w, &http.Cookie{
				Name:     SessionCookie,
				Value:    sid,
				Path:     "/",
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
				Expires:  time.Now().Add(7 * 24 * time.Hour),
			})
		}
		w.Header().Set(SessionHeader, sid)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), sessionKey{}, sid)))
	})
}

func SessionID(ctx context.Context) string {
	sid, _ := ctx.Value(sessionKey{}).(string)
	return sid
}
