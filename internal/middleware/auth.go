package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/RitaM5/Learn-Lingo-server/internal/auth"
	"github.com/RitaM5/Learn-Lingo-server/internal/models"
	"github.com/RitaM5/Learn-Lingo-server/internal/store"
	"github.com/RitaM5/Learn-Lingo-server/internal/utils"
)

type contextKey int

const claimsKey contextKey = iota

// Auth carries the two authorization capabilities: token authentication and
// stored-role checks.
type Auth struct {
	Tokens *auth.TokenService
	Users  store.UserStore
}

// RequireAuth extracts and verifies the bearer token from the Authorization
// header. Missing header and invalid token are both 401. On success the
// claims are attached to the request context.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" || !strings.HasPrefix(header, "Bearer ") {
			utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		claims, err := a.Tokens.Verify(strings.TrimPrefix(header, "Bearer "))
		if err != nil {
			utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRole gates a route on the stored role of the authenticated user.
// It must be chained after RequireAuth. One parameterized check serves every
// role; there are no per-role variants.
func (a *Auth) RequireRole(role models.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			claims, ok := ClaimsFrom(r.Context())
			if !ok {
				utils.WriteError(w, http.StatusUnauthorized, "unauthorized access")
				return
			}

			user, err := a.Users.FindByEmail(r.Context(), claims.Email)
			if err != nil || user.Role != role {
				utils.WriteError(w, http.StatusForbidden, "forbidden access")
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

// ClaimsFrom returns the verified claims RequireAuth attached to the
// request context.
func ClaimsFrom(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}
