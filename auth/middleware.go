// Package auth, as part of the authentication module.
// This file defines the HTTP middleware that gates the protected routes: it
// verifies the bearer token from the Authorization header, requires the
// referenced session to still exist in the registry, and places the session
// ID in the request context for downstream handlers.
package auth

import (
	"net/http"
	"strings"

	"github.com/Varshinigowda8/Resume-Screening-Agent/apperror"
	"github.com/Varshinigowda8/Resume-Screening-Agent/session"
)

// Middleware creates the session authentication middleware. The registry
// check means logout and reaping take effect immediately: a structurally
// valid token whose session is gone is rejected.
func Middleware(svc *Service, registry *session.Registry) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apperror.WriteError(w, r, apperror.NewUnauthorizedError("Authorization header is missing", nil))
				return
			}

			// The Authorization header should be in the format "Bearer {token}".
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				apperror.WriteError(w, r, apperror.NewUnauthorizedError("Authorization header format must be Bearer {token}", nil))
				return
			}

			claims, err := svc.ValidateToken(parts[1])
			if err != nil {
				apperror.WriteError(w, r, apperror.NewUnauthorizedError("Invalid session token", err))
				return
			}

			if _, ok := registry.Get(claims.ID); !ok {
				apperror.WriteError(w, r, apperror.NewUnauthorizedError("session expired, please log in again", nil))
				return
			}

			ctx := session.NewContextWithID(r.Context(), claims.ID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
