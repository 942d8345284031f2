package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/craftshop/admin-backend/internal/config"
	"github.com/craftshop/admin-backend/internal/transport/middleware"
)

// TokenValidator validates an admin bearer token and returns the caller's
// identity.
type TokenValidator interface {
	ValidateToken(ctx context.Context, token string) (uuid.UUID, error)
}

// Handlers groups the REST handlers wired into the router.
type Handlers struct {
	Products    *ProductHandler
	Collections *CollectionHandler
	Orders      *OrderHandler
	Media       *MediaHandler
	Health      *HealthHandler
}

// NewRouter builds the HTTP handler: method-scoped routes wrapped in the
// standard middleware chain. The rate limiter may be nil when disabled.
func NewRouter(
	logger *slog.Logger,
	cfg config.Config,
	validator TokenValidator,
	limiter *middleware.RateLimiter,
	h Handlers,
) http.Handler {
	mux := http.NewServeMux()

	// Probes.
	mux.HandleFunc("GET /health", h.Health.Health)
	mux.HandleFunc("GET /ready", h.Health.Ready)
	mux.HandleFunc("GET /live", h.Health.Live)

	// Products.
	mux.HandleFunc("GET /products", h.Products.List)
	mux.HandleFunc("POST /products", h.Products.Create)
	mux.HandleFunc("GET /products/{id}", h.Products.Get)
	mux.HandleFunc("POST /products/{id}", h.Products.Update)
	mux.HandleFunc("DELETE /products/{id}", h.Products.Delete)

	// Search. Both patterns so /search and /search/ behave like an empty
	// query instead of a 404.
	mux.HandleFunc("GET /search", h.Products.Search)
	mux.HandleFunc("GET /search/{query...}", h.Products.Search)

	// Collections.
	mux.HandleFunc("GET /collections", h.Collections.List)
	mux.HandleFunc("POST /collections", h.Collections.Create)
	mux.HandleFunc("GET /collections/{id}", h.Collections.Get)
	mux.HandleFunc("POST /collections/{id}", h.Collections.Update)
	mux.HandleFunc("DELETE /collections/{id}", h.Collections.Delete)

	// Orders (read-only).
	mux.HandleFunc("GET /orders", h.Orders.List)
	mux.HandleFunc("GET /orders/{id}", h.Orders.Get)

	// Media uploads.
	mux.HandleFunc("POST /media", h.Media.Upload)

	mws := []middleware.Middleware{
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.NoCache,
	}
	if limiter != nil && cfg.RateLimit.Enabled {
		mws = append(mws, limiter.Limit(cfg.RateLimit.MaxPerMinute))
	}
	mws = append(mws, middleware.Auth(validator))

	return middleware.Chain(mws...)(mux)
}
