package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/noumansaleem/partnership-ledger-backend/api/routes"
	"github.com/noumansaleem/partnership-ledger-backend/internal/filestore"
	"github.com/noumansaleem/partnership-ledger-backend/internal/ledger"
	"github.com/noumansaleem/partnership-ledger-backend/internal/sheetstore"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/config"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/logger"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/metrics"
	"github.com/noumansaleem/partnership-ledger-backend/pkg/sheets"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	registry := prometheus.NewRegistry()
	ledgerMetrics := metrics.NewLedgerMetrics(registry)

	// The sheets backend is optional: without a spreadsheet id the service
	// runs on the local file alone, and a failed bootstrap degrades the
	// same way instead of refusing to start.
	var (
		primary       ledger.PrimaryStore
		primaryPinger sheets.Pinger
	)
	if cfg.Sheets.Configured() {
		client, err := sheets.NewClient(context.Background(), cfg.Sheets, logg)
		if err != nil {
			logg.Warn(
				logg.WithField(context.Background(), "error", err.Error()),
				"sheets backend unavailable at startup, continuing on file store",
			)
		} else {
			primary = sheetstore.New(client)
			primaryPinger = client
		}
	} else {
		logg.Warn(context.Background(), "no spreadsheet configured, running on file store only")
	}

	repo, err := ledger.NewRepository(ledger.RepositoryParams{
		Primary:  primary,
		Fallback: filestore.New(cfg.Fallback.DataFile),
		Partners: cfg.Partners.Set(),
		Logger:   logg,
		Metrics:  ledgerMetrics,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create ledger repository", err)
		os.Exit(1)
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr:    addr,
		Handler: routes.NewRouter(cfg, logg, repo, primaryPinger, registry),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
