package middleware

import (
	"context"
	"net/http"
	"strings"

	"bistro-pos-service/internal/models"
	"bistro-pos-service/internal/store"
	"bistro-pos-service/pkg/response"
)

type contextKey string

const userContextKey contextKey = "currentUser"

// WithUser stores the resolved user on the request context.
func WithUser(ctx context.Context, user models.User) context.Context {
	return context.WithValue(ctx, userContextKey, user)
}

// CurrentUser returns the user resolved by RequireUser. ok is false when the
// userid header named no existing user; role checks then fail closed.
func CurrentUser(ctx context.Context) (models.User, bool) {
	value := ctx.Value(userContextKey)
	if value == nil {
		return models.User{}, false
	}
	user, ok := value.(models.User)
	return user, ok
}

// RequireUser gates a route on the userid request header. A missing header is
// rejected outright; a header naming an unknown user passes the gate but
// resolves to no user, so any role check downstream denies it. That mirrors
// the original API, which only role-checked where it mattered.
func RequireUser(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			userID := strings.TrimSpace(r.Header.Get("userid"))
			if userID == "" {
				response.Message(w, http.StatusUnauthorized, "Unauthorized")
				return
			}

			ctx := r.Context()
			st.View(func(d *store.Data) {
				if user, ok := store.Find(d.Users, func(u models.User) bool { return u.ID == userID }); ok {
					ctx = WithUser(ctx, user)
				}
			})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles denies the request unless the resolved user holds one of the
// given roles.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, ok := CurrentUser(r.Context())
			if !ok || !HasRole(user, roles...) {
				response.Message(w, http.StatusForbidden, "Forbidden")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// HasRole reports whether the user holds one of the given roles.
func HasRole(user models.User, roles ...string) bool {
	for _, role := range roles {
		if user.Role == role {
			return true
		}
	}
	return false
}
