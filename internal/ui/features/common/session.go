package common

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"
)

// SessionName is the cookie session the site keeps per visitor.
const SessionName = "musb"

const visitorKey = "visitor_id"

// AnonymousVisitor keys form state for requests that carry no session.
const AnonymousVisitor = "anonymous"

type visitorCtxKey struct{}

// WithVisitor stores the visitor ID on ctx.
func WithVisitor(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, visitorCtxKey{}, id)
}

// VisitorID returns the visitor ID stored on ctx.
func VisitorID(ctx context.Context) string {
	if id, ok := ctx.Value(visitorCtxKey{}).(string); ok && id != "" {
		return id
	}
	return AnonymousVisitor
}

// VisitorMiddleware assigns every visitor a stable ID kept in the session
// cookie. Form instances are keyed by it.
func VisitorMiddleware(store sessions.Store, logger *slog.Logger) func(http.Handler) http.Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// A cookie that fails to decode still yields a usable new session.
			sess, _ := store.Get(r, SessionName)

			id, _ := sess.Values[visitorKey].(string)
			if id == "" {
				id = uuid.NewString()
				sess.Values[visitorKey] = id
				if err := sess.Save(r, w); err != nil {
					logger.Warn("failed to save session", "error", err)
				}
			}
			next.ServeHTTP(w, r.WithContext(WithVisitor(r.Context(), id)))
		})
	}
}

// NewSessionStore builds the cookie store the site uses.
func NewSessionStore(secret string) *sessions.CookieStore {
	store := sessions.NewCookieStore([]byte(secret))
	store.MaxAge(86400 * 30) // 30 days
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode
	return store
}
