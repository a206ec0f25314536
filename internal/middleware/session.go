package middleware

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"docspot-booking-api/internal/model"
	"docspot-booking-api/internal/store"
)

type ctxKey string

const userKey ctxKey = "user"

// Session resolves the store's single session pointer into the request
// context. Requests without an active session are rejected; login, register
// and health stay outside this middleware.
func Session(st *store.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, err := st.Session(r.Context())
			if err != nil {
				writeError(w, http.StatusInternalServerError, "internal error")
				return
			}
			if u == nil {
				writeError(w, http.StatusUnauthorized, "no active session")
				return
			}
			ctx := context.WithValue(r.Context(), userKey, *u)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole gates a route group to one role. Must sit inside Session.
func RequireRole(role model.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if UserFrom(r.Context()).Role != role {
				writeError(w, http.StatusForbidden, fmt.Sprintf("%s role required", role))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// UserFrom returns the session user placed in ctx by Session. Zero value
// outside the middleware.
func UserFrom(ctx context.Context) model.User {
	u, _ := ctx.Value(userKey).(model.User)
	return u
}

func writeError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
