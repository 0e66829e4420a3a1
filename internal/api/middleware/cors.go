package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS разрешает запросы фронтенда с указанных origin; пустой список означает любой origin
func CORS(allowedOrigins []string) func(http.Handler) http.Handler {
	if len(allowedOrigins) == 0 {
		allowedOrigins = []string{"*"}
	}
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"Origin", "Authorization", "Content-Type", "X-Email-Verification-Token"},
		ExposedHeaders: []string{"Retry-After"},
		MaxAge:         12 * 60 * 60,
	})
	return c.Handler
}
