package middleware

import (
	"context"
	"net/http"

	"github.com/m04kA/Mila-BookingService/internal/api/handlers"
	"github.com/m04kA/Mila-BookingService/internal/domain"
)

const (
	msgUnauthorized = "authentication required"
	msgForbidden    = "access denied"
)

type ctxKey string

const (
	userIDKey ctxKey = "userID"
	roleKey   ctxKey = "role"
)

// Auth пропускает запрос только с действительной сессией (cookie или Bearer)
// и кладёт ID и роль пользователя в контекст
func Auth(sessions SessionReader, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sess, err := sessions.FromRequest(r)
			if err != nil {
				log.Warn("Auth: %s %s rejected: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}

			ctx := WithUser(r.Context(), sess.UserID, sess.Role)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRole пропускает только пользователей с указанной ролью.
// Должен стоять после Auth
func RequireRole(role domain.UserRole, log Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got, ok := GetRole(r.Context())
			if !ok {
				handlers.RespondUnauthorized(w, msgUnauthorized)
				return
			}
			if got != role {
				userID, _ := GetUserID(r.Context())
				log.Warn("RequireRole: user=%d with role=%s denied %s %s", userID, got, r.Method, r.URL.Path)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// WithUser кладёт пользователя в контекст
func WithUser(ctx context.Context, userID int64, role domain.UserRole) context.Context {
	ctx = context.WithValue(ctx, userIDKey, userID)
	return context.WithValue(ctx, roleKey, role)
}

// GetUserID извлекает ID пользователя из контекста
func GetUserID(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// GetRole извлекает роль пользователя из контекста
func GetRole(ctx context.Context) (domain.UserRole, bool) {
	role, ok := ctx.Value(roleKey).(domain.UserRole)
	return role, ok
}
