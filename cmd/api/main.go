package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/joho/godotenv"

	"github.com/pndiaye/xaalis/internal/alias"
	aliasStore "github.com/pndiaye/xaalis/internal/alias/store"
	"github.com/pndiaye/xaalis/internal/config"
	"github.com/pndiaye/xaalis/internal/database"
	"github.com/pndiaye/xaalis/internal/engine"
	"github.com/pndiaye/xaalis/internal/export"
	xaalisHttp "github.com/pndiaye/xaalis/internal/http"
	aliasHandler "github.com/pndiaye/xaalis/internal/http/alias"
	exportHandler "github.com/pndiaye/xaalis/internal/http/export"
	notificationHandler "github.com/pndiaye/xaalis/internal/http/notification"
	recordHandler "github.com/pndiaye/xaalis/internal/http/record"
	repairHandler "github.com/pndiaye/xaalis/internal/http/repair"
	"github.com/pndiaye/xaalis/internal/importer"
	"github.com/pndiaye/xaalis/internal/record"
	recordStore "github.com/pndiaye/xaalis/internal/record/store"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	db, err := database.New(cfg.ConnectionString())
	if err != nil {
		slog.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer db.Close()

	ctx := context.Background()

	if err := database.Migrate(ctx, db); err != nil {
		slog.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	var (
		aliasService  = alias.NewService(aliasStore.New(db))
		recordService = record.NewService(
			recordStore.New(db),
			engine.New(),
			aliasService,
			cfg.Engine.DuplicateWindow,
		)
		importService = importer.NewService()
		exportService = export.NewService(recordService)
	)

	if purged, err := recordService.PurgeTrash(ctx, cfg.Trash.Retention); err != nil {
		slog.Warn("failed to purge expired trash", "error", err)
	} else if purged > 0 {
		slog.Info("purged expired trash", "records", purged)
	}

	var (
		notificationH = notificationHandler.NewHandler(recordService, importService)
		recordH       = recordHandler.NewHandler(recordService, cfg.Trash.Retention)
		aliasH        = aliasHandler.NewHandler(aliasService)
		exportH       = exportHandler.NewHandler(exportService)
		repairH       = repairHandler.NewHandler(recordService)
	)

	router := xaalisHttp.New(notificationH, recordH, aliasH, exportH, repairH, cfg.Auth.DeviceSecret)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	slog.Info("starting server", "port", port)

	if err := http.ListenAndServe(port, router); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
