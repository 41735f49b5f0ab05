package http

import (
	"log/slog"
	nethttp "net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/preston-bernstein/games-catalog-service/internal/http/handlers"
	"github.com/preston-bernstein/games-catalog-service/internal/http/middleware"
	"github.com/preston-bernstein/games-catalog-service/internal/metrics"
)

// RouterOptions carries the cross-cutting dependencies mounted on every route.
type RouterOptions struct {
	Logger         *slog.Logger
	Recorder       *metrics.Recorder
	AllowedOrigins []string
}

// NewRouter registers HTTP routes on a chi router.
func NewRouter(handler *handlers.Handler, opts RouterOptions) nethttp.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Middleware(opts.Logger, opts.Recorder))
	r.Use(chimiddleware.Recoverer)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(opts.AllowedOrigins),
		AllowedMethods: []string{nethttp.MethodGet, nethttp.MethodPost, nethttp.MethodDelete, nethttp.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders: []string{"X-Request-ID"},
		MaxAge:         300,
	}))

	r.NotFound(handler.NotFound)
	r.MethodNotAllowed(handler.MethodNotAllowed)

	r.Get("/", handler.Root)
	r.Get("/health", handler.Health)
	r.Route("/games", func(r chi.Router) {
		r.Get("/", handler.ListGames)
		r.Post("/", handler.CreateGame)
		r.Get("/{"+handlers.IDParam+"}", handler.GetGame)
		r.Delete("/{"+handlers.IDParam+"}", handler.DeleteGame)
	})
	return r
}

func allowedOrigins(origins []string) []string {
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}
