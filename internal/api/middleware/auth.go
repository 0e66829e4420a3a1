package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/m04kA/SMC-CourtBookingService/internal/api/handlers"
)

type contextKey string

const adminIDKey contextKey = "adminID"

const (
	msgMissingToken = "missing or invalid Authorization header"
	msgInvalidToken = "unauthorized admin access"
)

// AdminAuth пропускает только запросы с валидным Bearer-токеном администратора
func AdminAuth(verifier TokenVerifier, logger Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := bearerToken(r)
			if !ok {
				logger.Warn("AdminAuth: missing bearer token: %s %s", r.Method, r.URL.Path)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			adminID, err := verifier.VerifyAdmin(token)
			if err != nil {
				logger.Warn("AdminAuth: rejected token: %s %s: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			ctx := context.WithValue(r.Context(), adminIDKey, adminID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetAdminID извлекает ID администратора из контекста
func GetAdminID(ctx context.Context) (string, bool) {
	adminID, ok := ctx.Value(adminIDKey).(string)
	return adminID, ok
}

func bearerToken(r *http.Request) (string, bool) {
	auth := r.Header.Get("Authorization")
	if len(auth) <= len("Bearer ") || !strings.EqualFold(auth[:len("Bearer ")], "Bearer ") {
		return "", false
	}
	token := strings.TrimSpace(auth[len("Bearer "):])
	return token, token != ""
}
