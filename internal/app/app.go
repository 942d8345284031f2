// Package app wires configuration, storage, services, and transport into a
// runnable server process.
package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/craftshop/admin-backend/internal/adapter/media"
	"github.com/craftshop/admin-backend/internal/adapter/postgres"
	collectionrepo "github.com/craftshop/admin-backend/internal/adapter/postgres/collection"
	customerrepo "github.com/craftshop/admin-backend/internal/adapter/postgres/customer"
	orderrepo "github.com/craftshop/admin-backend/internal/adapter/postgres/order"
	productrepo "github.com/craftshop/admin-backend/internal/adapter/postgres/product"
	"github.com/craftshop/admin-backend/internal/auth"
	"github.com/craftshop/admin-backend/internal/config"
	"github.com/craftshop/admin-backend/internal/service/catalog"
	"github.com/craftshop/admin-backend/internal/service/order"
	"github.com/craftshop/admin-backend/internal/transport/middleware"
	"github.com/craftshop/admin-backend/internal/transport/rest"
)

// Run starts the admin backend and blocks until SIGINT/SIGTERM, then shuts
// down gracefully within the configured timeout.
func Run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	log := NewLogger(cfg.Log)
	log.Info("starting admin backend", "version", BuildVersion())

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	products := productrepo.New(pool)
	collections := collectionrepo.New(pool)
	orders := orderrepo.New(pool)
	customers := customerrepo.New(pool)
	txm := postgres.NewTxManager(pool)

	catalogSvc := catalog.NewService(log, products, collections, txm)
	orderSvc := order.NewService(log, orders, customers)

	verifier := auth.NewVerifier(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer)

	mediaStore, err := media.NewDiskStore(cfg.Media.Dir, cfg.Media.MaxUploadSize)
	if err != nil {
		return fmt.Errorf("init media store: %w", err)
	}

	var limiter *middleware.RateLimiter
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
		defer limiter.Stop()
	}

	router := rest.NewRouter(log, *cfg, verifier, limiter, rest.Handlers{
		Products:    rest.NewProductHandler(catalogSvc, log),
		Collections: rest.NewCollectionHandler(catalogSvc, log),
		Orders:      rest.NewOrderHandler(orderSvc, log),
		Media:       rest.NewMediaHandler(mediaStore, cfg.Media.MaxUploadSize, log),
		Health:      rest.NewHealthHandler(pool, Version),
	})

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("http server: %w", err)
	case <-ctx.Done():
	}

	log.Info("shutting down", "timeout", cfg.Server.ShutdownTimeout.String())

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped")
	return nil
}
