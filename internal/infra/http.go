package infra

import (
	"context"
	"crypto/subtle"
	"net/http"

	logger_lib "github.com/s21platform/logger-lib"

	"github.com/lernora/conversation-service/internal/config"
	"github.com/lernora/conversation-service/internal/model"
)

// AuthInterceptorHTTP trusts the identity headers injected by the
// platform gateway. Requests arriving without them never reach a
// handler.
func AuthInterceptorHTTP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		userUUID := r.Header.Get("X-User-Uuid")
		if userUUID == "" {
			http.Error(w, "missing user identity", http.StatusUnauthorized)
			return
		}

		role, err := model.ParseRole(r.Header.Get("X-User-Role"))
		if err != nil {
			http.Error(w, "missing or unknown user role", http.StatusUnauthorized)
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, userUUID)
		ctx = context.WithValue(ctx, config.KeyRole, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func LoggerHTTP(next http.Handler, logger *logger_lib.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), config.KeyLogger, logger)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// ProxyAuthHTTP guards the Centrifugo proxy endpoints with a shared
// secret; only the Centrifugo node should be able to reach them.
func ProxyAuthHTTP(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			got := r.Header.Get("X-Proxy-Secret")
			if secret == "" || subtle.ConstantTimeCompare([]byte(got), []byte(secret)) != 1 {
				http.Error(w, "forbidden", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
