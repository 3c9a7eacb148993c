package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"time"

	"go.uber.org/zap"

	"github.com/madiallo/fruittrack/internal/config"
	"github.com/madiallo/fruittrack/internal/repository/records"
	"github.com/madiallo/fruittrack/internal/repository/sheets"
	"github.com/madiallo/fruittrack/internal/server/handlers"
	"github.com/madiallo/fruittrack/internal/server/router"
	exportsvc "github.com/madiallo/fruittrack/internal/service/export"
	inventorysvc "github.com/madiallo/fruittrack/internal/service/inventory"
	ledgersvc "github.com/madiallo/fruittrack/internal/service/ledger"
	metricssvc "github.com/madiallo/fruittrack/internal/service/metrics"
	"github.com/madiallo/fruittrack/pkg/clients/notify"
	"github.com/madiallo/fruittrack/pkg/logger"
)

func main() {
	cfg, err := config.Load("")
	if err != nil {
		panic(err)
	}

	baseLogger := logger.Must(logger.New(cfg.Store.Backend == config.StoreMemory))
	defer func() { _ = baseLogger.Sync() }()

	zap.ReplaceGlobals(baseLogger)

	var store records.Store
	switch cfg.Store.Backend {
	case config.StoreMongo:
		mongoStore, err := records.NewMongoStore(context.Background(), cfg.MongoDB.URI, cfg.MongoDB.DBName)
		if err != nil {
			baseLogger.Fatal("failed to init mongodb record store", zap.Error(err))
		}
		defer func() {
			if err := mongoStore.Close(context.Background()); err != nil {
				baseLogger.Error("failed to close mongodb connection", zap.Error(err))
			}
		}()
		store = mongoStore
	default:
		baseLogger.Warn("using in-memory record store, collections will not survive restarts")
		store = records.NewMemoryStore()
	}

	ledgerSvc := ledgersvc.NewService(store, baseLogger.Named("svc.ledger"))
	inventorySvc := inventorysvc.NewService(store, baseLogger.Named("svc.inventory"))
	metricsSvc := metricssvc.NewService(ledgerSvc, baseLogger.Named("svc.metrics"))

	var publisher notify.Publisher = notify.Nop{}
	if cfg.Notify.WebhookURL != "" {
		publisher = notify.NewWebhookClient(cfg.Notify.WebhookURL, baseLogger.Named("clients.notify"))
		baseLogger.Info("operation event webhook enabled")
	}

	var exporter *exportsvc.Service
	if cfg.SheetsEnabled() {
		sheetsRepo, err := sheets.NewGoogleSheetRepository(context.Background(), cfg.Sheets, baseLogger.Named("repo.sheets"))
		if err != nil {
			baseLogger.Fatal("failed to init sheets repository", zap.Error(err))
		}
		exporter = exportsvc.NewService(sheetsRepo, metricsSvc, inventorySvc, baseLogger.Named("svc.export"))
		baseLogger.Info("spreadsheet snapshot export enabled")
	} else {
		baseLogger.Warn("sheets export not configured, POST /api/export will be unavailable")
	}

	engine := router.New(router.Handlers{
		Ledger:    handlers.NewLedgerHandler(ledgerSvc, publisher, baseLogger.Named("handlers.ledger")),
		Salary:    handlers.NewSalaryHandler(ledgerSvc, publisher, baseLogger.Named("handlers.salary")),
		Message:   handlers.NewMessageHandler(ledgerSvc, publisher, baseLogger.Named("handlers.message")),
		Inventory: handlers.NewInventoryHandler(inventorySvc, publisher, baseLogger.Named("handlers.inventory")),
		Metrics:   handlers.NewMetricsHandler(metricsSvc, baseLogger.Named("handlers.metrics")),
		Data:      handlers.NewDataHandler(ledgerSvc, inventorySvc, publisher, baseLogger.Named("handlers.data")),
		Export:    handlers.NewExportHandler(exporter, baseLogger.Named("handlers.export")),
	}, baseLogger.Named("router"))

	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      engine,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	go func() {
		baseLogger.Info("server starting", zap.String("port", cfg.Server.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			baseLogger.Fatal("http server crashed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	baseLogger.Info("shutdown signal received")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		baseLogger.Error("graceful shutdown failed", zap.Error(err))
	}
}
