package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/joycybakery/fournil/pkg/auth"
	"github.com/joycybakery/fournil/pkg/response"
)

type claimsKey struct{}

// AuthMiddleware validates the Bearer token and stores the verified claims
// in the request context for downstream handlers and the rbac package.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := strings.TrimPrefix(r.Header.Get("Authorization"), "Bearer ")

		if token == "" {
			response.Unauthorized(w)
			return
		}

		claims, err := auth.ValidateToken(token)
		if err != nil {
			response.Error(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey{}, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ClaimsFromCtx returns the verified claims stored by AuthMiddleware.
func ClaimsFromCtx(r *http.Request) (*auth.Claims, bool) {
	c, ok := r.Context().Value(claimsKey{}).(*auth.Claims)
	return c, ok
}

// UserIDFromCtx returns the authenticated user's id, if any.
func UserIDFromCtx(r *http.Request) (string, bool) {
	if c, ok := ClaimsFromCtx(r); ok {
		return c.UserID, true
	}
	return "", false
}

// RoleFromCtx returns the authenticated user's role, if any.
func RoleFromCtx(r *http.Request) (string, bool) {
	if c, ok := ClaimsFromCtx(r); ok {
		return c.Role, true
	}
	return "", false
}
