// Package middleware provides HTTP middlewares for authentication and logging.
package middleware

import (
	"context"
	"net/http"
	"strings"
)

type ctxKey string

const sellerKey ctxKey = "seller"

// TokenParser verifies a bearer token and returns the seller ID it carries.
type TokenParser interface {
	Parse(token string) (string, error)
}

// BearerAuth is a middleware that enforces bearer-token authentication.
//
// It checks whether the incoming HTTP request carries a valid
// "Authorization: Bearer <token>" header. The /api/auth/login and
// /api/auth/register endpoints are excluded so that unauthenticated sellers
// can obtain a token.
//
// On successful validation, it extracts the seller ID from the token and
// stores it in the request context, so it can be used downstream as the
// authenticated user ID.
func BearerAuth(parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.URL.Path == "/api/auth/login" || r.URL.Path == "/api/auth/register" {
				// Allow obtaining a token without one
				next.ServeHTTP(w, r)
				return
			}
			header := r.Header.Get("Authorization")
			raw, ok := strings.CutPrefix(header, "Bearer ")
			if !ok || raw == "" {
				http.Error(w, "no bearer token provided", http.StatusUnauthorized)
				return
			}
			sellerID, err := parser.Parse(raw)
			if err != nil {
				http.Error(w, "invalid bearer token", http.StatusUnauthorized)
				return
			}
			ctx := context.WithValue(r.Context(), sellerKey, sellerID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSellerIDFromContext extracts the seller ID (subject of the bearer token)
// from the request context. Returns an empty string if not found.
func GetSellerIDFromContext(ctx context.Context) string {
	val := ctx.Value(sellerKey)
	if s, ok := val.(string); ok {
		return s
	}
	return ""
}
