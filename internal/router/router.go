package router

import (
	"net/http"
	"time"

	"products-api/internal/handler"
	"products-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// Options configures cross-cutting router behaviour.
type Options struct {
	// AllowedOrigin is the single origin permitted by CORS on /api/products routes.
	AllowedOrigin string

	// RequestTimeout bounds the context of every request.
	RequestTimeout time.Duration
}

// New creates a new HTTP router with all routes and middleware configured.
func New(
	productHandler *handler.ProductHandler,
	healthHandler *handler.HealthHandler,
	opts Options,
	logger zerolog.Logger,
) http.Handler {
	r := chi.NewRouter()

	// Middleware order: Recovery -> RequestID -> Logging -> Timeout
	r.Use(middleware.Recovery(logger))
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging(logger))
	if opts.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(opts.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeRouteError(w, http.StatusNotFound, `{"error":"Not found"}`)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeRouteError(w, http.StatusMethodNotAllowed, `{"error":"Method not allowed"}`)
	})

	r.Get("/", healthHandler.Index)
	r.Get("/health", healthHandler.Health)

	// CORS is scoped to the products routes; other /api paths get a plain 404.
	r.Route("/api", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Use(middleware.CORS(opts.AllowedOrigin))

			r.Get("/", productHandler.GetAll)
			r.Post("/", productHandler.Create)
			r.Get("/{id}", productHandler.GetByID)
			r.Put("/{id}", productHandler.Update)
			r.Delete("/{id}", productHandler.Delete)
		})
	})

	return r
}

func writeRouteError(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write([]byte(body))
}
