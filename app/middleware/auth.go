package middleware

import (
	"context"
	"net/http"
	"strings"

	jwtutil "booking-backend/app/jwt"
	"booking-backend/app/models"
)

type ctxKey int

const principalKey ctxKey = 1

// RoleLookup resolves the current role of a user id from the credential
// store.
type RoleLookup interface {
	RoleByID(id uint) (string, error)
}

type Auth struct {
	Signer *jwtutil.Signer
	Users  RoleLookup
	// TrustTokenRole trusts the role claim baked into the token instead of
	// re-fetching it. Off by default so role changes take effect on the
	// next request, at the cost of one store lookup per request.
	TrustTokenRole bool
}

// RequireAuth authenticates the request and attaches a Principal to the
// context. 401 means no usable token was presented; 403 means the token
// is fine but its subject no longer resolves to a user.
func (a *Auth) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authz := r.Header.Get("Authorization")
		if !strings.HasPrefix(authz, "Bearer ") {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		token := strings.TrimPrefix(authz, "Bearer ")
		claims, err := a.Signer.Parse(token)
		if err != nil {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		role := claims.Role
		if !a.TrustTokenRole {
			role, err = a.Users.RoleByID(claims.UserID)
			if err != nil {
				w.WriteHeader(http.StatusForbidden)
				return
			}
		}
		principal := &models.Principal{ID: claims.UserID, Role: role}
		ctx := context.WithValue(r.Context(), principalKey, principal)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
