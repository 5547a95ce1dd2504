package middlewares

import (
	"net/http"

	"github.com/rs/cors"
)

// CORS allows exactly one browser origin, GET and POST, and the Content-Type
// header. Preflight responses are cached for three minutes.
func CORS(allowedOrigin string) func(http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: []string{allowedOrigin},
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
		AllowedHeaders: []string{"Content-Type"},
		MaxAge:         180,
	})
	return c.Handler
}
