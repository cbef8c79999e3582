package transport

import (
	"context"
	"net/http"
	"strings"

	"github.com/emirhly/marketplace/application/user"
	"github.com/emirhly/marketplace/constant"
	"github.com/emirhly/marketplace/utils/errors"
	"github.com/gorilla/mux"
)

// AuthMiddleware returns a middleware that resolves the token subject from
// the auth cookie once per request and injects it into the context. Only the
// owner-scoped endpoints require a token; everything else passes through.
func AuthMiddleware(userApp user.UserApp) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isProtectedPath(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie(constant.AuthCookieName)
			if err != nil || cookie.Value == "" {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			userID, err := userApp.ValidateToken(r.Context(), cookie.Value)
			if err != nil {
				writeError(w, errors.SetCustomError(constant.ErrUnauthorize))
				return
			}

			ctx := context.WithValue(r.Context(), constant.UserIDKey, userID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// isProtectedPath lists the endpoints that require an authenticated subject.
func isProtectedPath(path string) bool {
	if path == "/me" || path == "/listings/create" {
		return true
	}
	if strings.HasPrefix(path, "/users/update/") ||
		strings.HasPrefix(path, "/listings/delete/") ||
		strings.HasPrefix(path, "/comments/update/") ||
		strings.HasPrefix(path, "/comments/delete_comment/") {
		return true
	}
	if strings.HasPrefix(path, "/listings/") && strings.HasSuffix(path, "/update") {
		return true
	}

	return false
}
