package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/flooring-crm/backend/internal/domain"
	"github.com/flooring-crm/backend/pkg/utils"
	"go.uber.org/zap"
)

type ContextKey string

const UserKey ContextKey = "currentUser"

// UserResolver maps a verified token subject to a stored user.
type UserResolver interface {
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
}

type Middleware struct {
	jwtService JWTServiceInterface
	users      UserResolver
}

func NewMiddleware(jwtService JWTServiceInterface, users UserResolver) *Middleware {
	return &Middleware{
		jwtService: jwtService,
		users:      users,
	}
}

func UserFromContext(ctx context.Context) (*domain.User, bool) {
	user, ok := ctx.Value(UserKey).(*domain.User)
	return user, ok
}

// Authenticate verifies the bearer credential and stores the resolved user in
// the request context. An expired token, a malformed token and a token whose
// subject no longer exists are reported as three distinct conditions.
func (m *Middleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, ok := extractToken(r.Header.Get("Authorization"))
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token format",
				"Authorization header must be in the format 'Bearer <token>'")
			return
		}

		claims, err := m.jwtService.Validate(token)
		if err != nil {
			if errors.Is(err, ErrTokenExpired) {
				utils.RespondWithError(w, http.StatusUnauthorized, "Token has expired",
					"Please log in again to obtain a new token")
				return
			}
			utils.RespondWithError(w, http.StatusUnauthorized, "Invalid token",
				"Token could not be verified")
			return
		}

		user, err := m.users.FindByUsername(r.Context(), claims.Subject)
		if err != nil {
			zap.L().Error("can't resolve token subject", zap.Error(err))
			utils.RespondWithError(w, http.StatusInternalServerError, "Internal server error")
			return
		}
		if user == nil {
			utils.RespondWithError(w, http.StatusNotFound, "User not found",
				"The user associated with this token no longer exists")
			return
		}

		ctx := context.WithValue(r.Context(), UserKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireActive is the second-stage check behind Authenticate: a resolved but
// deactivated account is forbidden, not unauthorized.
func RequireActive(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		user, ok := UserFromContext(r.Context())
		if !ok {
			utils.RespondWithError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}
		if !user.IsActive {
			utils.RespondWithError(w, http.StatusForbidden, "Account inactive",
				"This account has been deactivated",
				"Please contact support if you believe this is an error")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// extractToken accepts either a bare token without embedded whitespace or the
// exact two-part "Bearer <token>" form; every other shape is rejected.
func extractToken(header string) (string, bool) {
	if header == "" {
		return "", false
	}
	if strings.HasPrefix(header, "Bearer ") {
		parts := strings.Split(header, " ")
		if len(parts) != 2 || parts[1] == "" {
			return "", false
		}
		return parts[1], true
	}
	if strings.ContainsAny(header, " \t") {
		return "", false
	}
	return header, true
}
