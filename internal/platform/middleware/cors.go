package middleware

import (
	"net/http"

	"github.com/go-chi/cors"

	"github.com/taibuivan/libris/internal/platform/constants"
)

// AppConfig defines the behavior needed by the CORS middleware.
type AppConfig interface {
	IsDevelopment() bool
	AllowedOrigins() []string
}

// CORS handles Cross-Origin Resource Sharing. Development allows any origin;
// other environments only the configured EXTRA_ORIGINS.
func CORS(cfg AppConfig) func(http.Handler) http.Handler {
	options := cors.Options{
		AllowedOrigins: cfg.AllowedOrigins(),
		AllowedMethods: []string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept", "Content-Type", "Content-Length",
			constants.HeaderAcceptLanguage, constants.HeaderXRequestID,
		},
		ExposedHeaders: []string{"Content-Length", constants.HeaderXRequestID, constants.HeaderContentLanguage},
		MaxAge:         300,
	}

	if cfg.IsDevelopment() {
		options.AllowOriginFunc = func(*http.Request, string) bool { return true }
	}

	return cors.Handler(options)
}
