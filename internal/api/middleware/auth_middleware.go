package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/cardcollection-app/cardcollection-backend/internal/api/httputil"
	"github.com/cardcollection-app/cardcollection-backend/internal/database"
	"github.com/cardcollection-app/cardcollection-backend/internal/logger"
	"github.com/cardcollection-app/cardcollection-backend/internal/models"
)

type userKey struct{}

// UserFromContext returns the authenticated user injected by Protect.
func UserFromContext(ctx context.Context) (*models.User, bool) {
	user, ok := ctx.Value(userKey{}).(*models.User)
	return user, ok
}

// Auth verifies bearer tokens and resolves them to accounts.
type Auth struct {
	secret string
	users  database.UserRepository
}

// NewAuth creates the auth middleware with the signing secret and the
// repository used to resolve token subjects.
func NewAuth(secret string, users database.UserRepository) *Auth {
	return &Auth{secret: secret, users: users}
}

// Protect rejects requests without a valid Bearer token and stores the
// resolved account in the request context.
func (a *Auth) Protect(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if !strings.HasPrefix(authHeader, "Bearer ") {
			httputil.Error(w, http.StatusUnauthorized, "No autorizado, no hay token")
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		claims := &jwt.RegisteredClaims{}
		token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
			}
			return []byte(a.secret), nil
		})
		if err != nil || !token.Valid {
			httputil.Error(w, http.StatusUnauthorized, "No autorizado, token inválido")
			return
		}

		userID, err := strconv.ParseInt(claims.Subject, 10, 64)
		if err != nil {
			httputil.Error(w, http.StatusUnauthorized, "No autorizado, token inválido")
			return
		}

		user, err := a.users.GetUserByID(r.Context(), userID)
		if err != nil {
			logger.Error("auth: could not resolve user %d: %v", userID, err)
			httputil.Error(w, http.StatusInternalServerError, "Error interno del servidor")
			return
		}
		if user == nil {
			httputil.Error(w, http.StatusUnauthorized, "Usuario no encontrado")
			return
		}

		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// AdminOnly rejects authenticated requests whose account is not an admin.
// It must run after Protect.
func (a *Auth) AdminOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok || user.Role != models.RoleAdmin {
			httputil.Error(w, http.StatusForbidden, "No autorizado, se requiere rol de administrador")
			return
		}
		next.ServeHTTP(w, r)
	})
}
