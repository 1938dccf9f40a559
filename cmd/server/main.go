package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"stockdesk/internal/config"
	"stockdesk/internal/infrastructure/logger"
	"stockdesk/internal/infrastructure/metrics"
	"stockdesk/internal/infrastructure/mysql"
	"stockdesk/internal/ledger"
	"stockdesk/internal/monitor"
	"stockdesk/internal/server"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("loading config: %v", err)
	}

	zapLogger, err := logger.New(cfg.Log.Level)
	if err != nil {
		log.Fatalf("creating logger: %v", err)
	}
	defer zapLogger.Sync()

	db, err := mysql.NewConnection(cfg.Database)
	if err != nil {
		zapLogger.Fatal("connecting to database", zap.Error(err))
	}
	defer db.Close()
	zapLogger.Info("database connected")

	ctx := context.Background()

	slotStore := mysql.NewSlotStore(db)
	if err := slotStore.EnsureSchema(ctx); err != nil {
		zapLogger.Fatal("preparing cache schema", zap.Error(err))
	}

	m := metrics.New()

	ledgerCtrl, ledgerSvc := ledger.NewModule(ctx, slotStore, cfg, zapLogger, m)
	monitorCtrl := monitor.NewModule(ledgerSvc, cfg, zapLogger)

	router := server.NewRouter(ledgerCtrl, monitorCtrl, m, cfg.Metrics.Enabled, zapLogger)

	srv := server.New(cfg.Server, router, zapLogger)

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := srv.Start(); err != nil {
			zapLogger.Fatal("server error", zap.Error(err))
		}
	}()

	<-quit
	zapLogger.Info("received shutdown signal")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("server shutdown failed", zap.Error(err))
	}

	zapLogger.Info("server stopped gracefully")
}
