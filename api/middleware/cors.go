package middleware

import (
	"net/http"

	"github.com/go-chi/cors"
)

// CORS allows any origin: the ledger UI may be served from anywhere and the
// API carries no credentials.
func CORS() func(http.Handler) http.Handler {
	return cors.New(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{
			"X-CSRF-Token", "X-Requested-With", "Accept", "Accept-Version",
			"Content-Length", "Content-MD5", "Content-Type", "Date", "X-Api-Version",
		},
		MaxAge: 300,
	}).Handler
}
