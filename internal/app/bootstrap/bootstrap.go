package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	accountservice "tanavent/contexts/identity-access/account-service"
	accountpostgres "tanavent/contexts/identity-access/account-service/adapters/postgres"
	tenancyservice "tanavent/contexts/identity-access/tenancy-service"
	tenancypostgres "tanavent/contexts/identity-access/tenancy-service/adapters/postgres"
	catalogservice "tanavent/contexts/inventory/catalog-service"
	catalogpostgres "tanavent/contexts/inventory/catalog-service/adapters/postgres"
	stockservice "tanavent/contexts/inventory/stock-service"
	stockpostgres "tanavent/contexts/inventory/stock-service/adapters/postgres"
	stocktakeservice "tanavent/contexts/inventory/stocktake-service"
	stocktakepostgres "tanavent/contexts/inventory/stocktake-service/adapters/postgres"
	"tanavent/internal/platform/config"
	"tanavent/internal/platform/db"
	"tanavent/internal/platform/httpserver"
	"tanavent/internal/platform/identity"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	logger   *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	tenancyRepo := tenancypostgres.NewRepository(pg.DB, logger)
	tenancy := tenancyservice.NewModule(tenancyservice.Dependencies{
		Repository:  tenancyRepo,
		Clock:       tenancypostgres.SystemClock{},
		IDGenerator: tenancypostgres.UUIDGenerator{},
		Logger:      logger,
	})

	accountRepo := accountpostgres.NewRepository(pg.DB, logger)
	account := accountservice.NewModule(accountservice.Dependencies{
		Repository: accountRepo,
		Clock:      accountpostgres.SystemClock{},
		Logger:     logger,
	})

	stockRepo := stockpostgres.NewRepository(pg.DB, logger)
	stock := stockservice.NewModule(stockservice.Dependencies{
		Repository:  stockRepo,
		Sections:    stockRepo,
		Memberships: stockRepo,
		Clock:       stockpostgres.SystemClock{},
		IDGenerator: stockpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalog := catalogservice.NewModule(catalogservice.Dependencies{
		Repository:  catalogRepo,
		Sections:    catalogRepo,
		Memberships: catalogRepo,
		IDGenerator: catalogpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	stocktakeRepo := stocktakepostgres.NewRepository(pg.DB, logger)
	stocktake := stocktakeservice.NewModule(stocktakeservice.Dependencies{
		Repository:  stocktakeRepo,
		Sections:    stocktakeRepo,
		Memberships: stocktakeRepo,
		Items:       stocktakeRepo,
		Clock:       stocktakepostgres.SystemClock{},
		IDGenerator: stocktakepostgres.UUIDGenerator{},
		Logger:      logger,
	})

	keys := identity.NewRemoteKeySet(cfg.IdentityJWKSURL, nil, logger)
	verifier := identity.NewVerifier(cfg.FirebaseProjectID, keys, logger)

	server := httpserver.New(tenancy, account, stock, catalog, stocktake, verifier, logger, normalizeAddr(cfg.HTTPPort))
	return &APIApp{
		server:   server,
		postgres: pg,
		logger:   logger,
	}, nil
}

func (a *APIApp) Run(_ context.Context) error {
	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
