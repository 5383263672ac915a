// Package router sets up the HTTP routes and middleware chain for the
// public site.
package router

import (
	"io/fs"
	"net/http"

	"github.com/go-chi/chi/v5"

	"patrika/internal/handlers"
	"patrika/internal/middleware"
	"patrika/web"
)

// New creates and returns the configured Chi router with all middleware
// and routes wired up. limiter may be nil to disable rate limiting.
func New(public *handlers.Public, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	// Health check.
	r.Get("/health", healthHandler)

	// Static assets (stylesheet).
	staticFS, _ := fs.Sub(web.StaticFS, "static")
	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServerFS(staticFS)))

	// Public pages.
	r.Get("/", public.Home)
	r.Get("/blogs/{slug}", public.Post)
	r.Get("/category/{title}", public.Category)

	r.NotFound(public.NotFound)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
