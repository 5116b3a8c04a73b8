package http

import (
	"net/http"

	"github.com/MKhiriev/go-pulse-keeper/internal/config"
)

// securityHeaders applies baseline protective headers to every response.
// Strict-Transport-Security is set only in production, where the service
// is expected to sit behind TLS; emitting it in development would pin
// localhost to HTTPS in the browser.
func (h *Handler) securityHeaders(next http.Handler) http.Handler {
	isProduction := h.cfg.App.Env == config.EnvProduction

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := w.Header()
		header.Set("X-Content-Type-Options", "nosniff")
		header.Set("X-Frame-Options", "DENY")
		header.Set("Referrer-Policy", "no-referrer")
		header.Set("Content-Security-Policy", "default-src 'none'; frame-ancestors 'none'")

		if isProduction {
			header.Set("Strict-Transport-Security", "max-age=31536000; includeSubDomains")
		}

		next.ServeHTTP(w, r)
	})
}
