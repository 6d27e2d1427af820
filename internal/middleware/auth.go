package middleware

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/model"
	"github.com/Suriyaprakashm14/BPTracker-Backend-Project/internal/service"
)

type contextKey string

const userKey contextKey = "user"

// Auth returns middleware that resolves the Authorization bearer token to a
// user via the auth service and stores the user in the request context.
// Missing, malformed, and unknown tokens all produce the same 401.
func Auth(auth *service.AuthService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user, err := auth.ResolveToken(r.Context(), r.Header.Get("Authorization"))
			if err != nil {
				if errors.Is(err, service.ErrUnauthenticated) {
					writeJSONError(w, http.StatusUnauthorized, "unauthorized")
					return
				}
				writeJSONError(w, http.StatusInternalServerError, "internal server error")
				return
			}

			ctx := context.WithValue(r.Context(), userKey, user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// UserFromContext extracts the authenticated user from the request context.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(userKey).(*model.User)
	return user, ok
}

func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
