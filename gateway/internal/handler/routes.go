package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/bibbank/ibankit/gateway/internal/middleware"
	"github.com/bibbank/ibankit/gateway/internal/proxy"
	"github.com/bibbank/ibankit/pkg/auth"
)

// publicPaths skip authentication.
var publicPaths = []string{"/healthz", "/readyz"}

// Proxies holds the backend proxies the routes delegate to.
type Proxies struct {
	Validation *proxy.ValidationProxy
}

// RouterOptions carries the middleware dependencies.
type RouterOptions struct {
	Logger         *slog.Logger
	Verifier       auth.Verifier
	RateLimiter    *middleware.PerClientRateLimiter
	RequestTimeout time.Duration
}

// NewRouter wires all public endpoints with middleware. Authentication runs
// before rate limiting so authenticated clients get their own bucket.
func NewRouter(p *Proxies, opts RouterOptions) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(middleware.LoggingMiddleware(opts.Logger))
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}
	r.Use(middleware.AuthMiddleware(opts.Verifier, publicPaths))
	if opts.RateLimiter != nil {
		r.Use(middleware.PerClientRateLimitMiddleware(opts.RateLimiter))
	}

	r.Get("/healthz", healthz)
	r.Get("/readyz", readyz(p))

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/iban/validate", p.Validation.ValidateIBAN)
		r.Post("/iban/compose", p.Validation.ComposeIBAN)
		r.Post("/iban/extract", p.Validation.ExtractIBAN)
		r.Post("/bban/validate", p.Validation.ValidateBBAN)
		r.Post("/bic/validate", p.Validation.ValidateBIC)
		r.Get("/countries", p.Validation.ListCountries)
		r.Post("/payments/screen", p.Validation.ScreenPayment)
	})

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not found"})
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusMethodNotAllowed, map[string]string{"error": "method not allowed"})
	})

	return r
}

func healthz(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// readyz reports ready only while the validation backend answers its health
// check.
func readyz(p *Proxies) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if err := p.Validation.Conn().CheckHealth(ctx); err != nil {
			writeJSON(w, http.StatusServiceUnavailable, map[string]string{
				"status": "unavailable",
				"error":  err.Error(),
			})
			return
		}
		writeJSON(w, http.StatusOK, map[string]string{"status": "ready"})
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
