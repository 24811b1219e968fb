package middlewares

import (
	"context"
	"log"
	"net/http"

	"github.com/velato/storefront/app/cart"
	"github.com/velato/storefront/app/models"
	"github.com/velato/storefront/app/utils/sessions"
)

type contextKey string

const (
	UserKey      contextKey = "current_user"
	CartCountKey contextKey = "cart_count"
)

// CurrentUserMiddleware restores the persisted identity snapshot into the
// request context. A missing or unreadable snapshot just means an
// anonymous visit; the request always proceeds.
func CurrentUserMiddleware(sessionStore sessions.SessionStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if user := sessionStore.GetUser(r); user != nil {
				r = r.WithContext(context.WithValue(r.Context(), UserKey, user))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// CartCountMiddleware exposes the current cart's line count to every page.
func CartCountMiddleware(sessionStore sessions.SessionStore, carts *cart.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			count := 0
			if cartID := sessionStore.GetCartID(r); cartID != "" {
				if c, ok := carts.Peek(cartID); ok {
					count = c.Len()
				}
			}
			ctx := context.WithValue(r.Context(), CartCountKey, count)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireUserMiddleware gates account pages behind a signed-in session.
func RequireUserMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := r.Context().Value(UserKey).(*models.User); !ok {
			log.Printf("RequireUserMiddleware: anonymous request to %s, redirecting to login", r.URL.Path)
			http.Redirect(w, r, "/login", http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// UserFromContext returns the signed-in identity, if any.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(UserKey).(*models.User)
	return user, ok
}
