// Command cleanup removes orphaned product_collections link rows. The link
// table carries no foreign keys; when the in-process post-delete cleanup
// fails twice, the dangling rows stay behind and this command repairs them.
// It is intended to be invoked by an external cron job.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/craftshop/admin-backend/internal/adapter/postgres"
	"github.com/craftshop/admin-backend/internal/adapter/postgres/product"
	"github.com/craftshop/admin-backend/internal/app"
	"github.com/craftshop/admin-backend/internal/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	productRepo := product.New(pool)

	pruned, err := productRepo.PruneOrphanLinks(ctx)
	if err != nil {
		logger.Error("prune orphan links failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	logger.Info("prune orphan links completed", slog.Int64("pruned", pruned))
}
