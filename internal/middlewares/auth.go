package middlewares

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/desafio/car-users-api/internal/logger"
)

// Tokener defines the minimal token operations needed by the middleware.
type Tokener interface {
	GetTokenFromRequest(ctx context.Context, r *http.Request) (string, error)
	GetLogin(ctx context.Context, tokenString string) (string, error)
	Validate(ctx context.Context, tokenString, login string) bool
}

// loginKey is an unexported context key type for the authenticated login.
type loginKey struct{}

// SetLoginToContext stores the authenticated login in the context.
func SetLoginToContext(ctx context.Context, login string) context.Context {
	return context.WithValue(ctx, loginKey{}, login)
}

// GetLoginFromContext returns the authenticated login, if the request
// passed authentication.
func GetLoginFromContext(ctx context.Context) (string, bool) {
	login, ok := ctx.Value(loginKey{}).(string)
	return login, ok && login != ""
}

// Authenticate returns a middleware that resolves the request identity from
// the bearer token. It never rejects: on any failure the request simply
// continues unauthenticated, and the authorization layer decides whether
// that matters for the route.
func Authenticate(tokener Tokener) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			tokenString, err := tokener.GetTokenFromRequest(ctx, r)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			login, err := tokener.GetLogin(ctx, tokenString)
			if err != nil {
				logger.Log.Errorw("failed to parse bearer token", "err", err)
				next.ServeHTTP(w, r)
				return
			}

			if !tokener.Validate(ctx, tokenString, login) {
				logger.Log.Errorw("invalid bearer token", "login", login)
				next.ServeHTTP(w, r)
				return
			}

			next.ServeHTTP(w, r.WithContext(SetLoginToContext(ctx, login)))
		})
	}
}

// RequireAuth rejects requests that carry no authenticated identity.
// It is the authorize step paired with Authenticate and the only place
// a missing identity turns into a 401.
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if _, ok := GetLoginFromContext(r.Context()); !ok {
			w.Header().Set("Content-Type", "application/json")
			w.WriteHeader(http.StatusUnauthorized)
			json.NewEncoder(w).Encode(map[string]any{
				"message":   "Unauthorized",
				"errorCode": http.StatusUnauthorized,
			})
			return
		}
		next.ServeHTTP(w, r)
	})
}
