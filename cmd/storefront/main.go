package main

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	_ "github.com/jackc/pgx/v5/stdlib"

	"Elegante/internal/account"
	"Elegante/internal/cart"
	"Elegante/internal/catalog"
	"Elegante/internal/config"
	"Elegante/internal/leads"
	"Elegante/internal/storefront"
	"Elegante/pkg/kit"
)

func main() {
	service := "storefront"

	cfg := config.MustLoad()

	log := kit.NewLogger(service, cfg.Debug)
	defer func() { _ = log.Sync() }()

	stores, err := buildStores(cfg, log)
	if err != nil {
		log.Fatal("store setup failed", zap.Error(err))
	}

	if err := seedIfNeeded(context.Background(), cfg, stores); err != nil {
		log.Fatal("seeding failed", zap.Error(err))
	}

	var limiter *kit.IPRateLimiter
	if cfg.RateLimit.Enabled {
		limiter = kit.NewIPRateLimiter(cfg.RateLimit.Limit, cfg.RateLimit.Window)
	}

	h := storefront.NewHandler(stores, storefront.HTTPDeps{
		Log:            log,
		Service:        service,
		Registry:       prometheus.NewRegistry(),
		MetricsEnabled: cfg.Metrics.Enabled,
		MetricsToken:   cfg.Metrics.Token,
		FormLimiter:    limiter,
	})

	addr := fmt.Sprintf(":%d", cfg.HTTP.Port)
	if err := kit.RunHTTPServer(addr, h, log); err != nil {
		log.Fatal("http server stopped", zap.Error(err))
	}
}

func buildStores(cfg *config.Config, log *zap.Logger) (storefront.Stores, error) {
	if cfg.Database.URL == "" {
		log.Info("using in-memory stores")
		return storefront.Stores{
			Catalog:  catalog.NewMemStore(),
			Cart:     cart.NewMemStore(),
			Leads:    leads.NewMemStore(),
			Accounts: account.NewMemStore(),
		}, nil
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return storefront.Stores{}, fmt.Errorf("open database: %w", err)
	}

	log.Info("using postgres stores")
	return storefront.Stores{
		Catalog:  catalog.NewPostgresStore(db),
		Cart:     cart.NewPostgresStore(db),
		Leads:    leads.NewPostgresStore(db),
		Accounts: account.NewPostgresStore(db),
	}, nil
}

// seedIfNeeded loads the demo data exactly once. The in-memory stores start
// empty on every boot; a database keeps its rows, so it is only seeded when
// the catalog is empty.
func seedIfNeeded(ctx context.Context, cfg *config.Config, stores storefront.Stores) error {
	if cfg.Database.URL != "" {
		categories, err := stores.Catalog.ListCategories(ctx)
		if err != nil {
			return err
		}
		if len(categories) > 0 {
			return nil
		}
	}

	return storefront.Seed(ctx, stores)
}
