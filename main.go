package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"antennacalc/internal/config"
	"antennacalc/internal/logger"
	"antennacalc/internal/metrics"
	"antennacalc/internal/server"
	"antennacalc/internal/storage"
)

const (
	shutdownTimeout = 30 * time.Second
	cleanupInterval = 24 * time.Hour
)

func main() {
	ctx := context.Background()

	// Load configuration
	cfg, err := config.Load(ctx)
	if err != nil {
		logger.Fatal("Failed to load configuration", err)
	}
	logger.Configure(cfg.LogLevel, cfg.ResolvedLogFormat())
	log := logger.WithComponent("main")

	log.Info("Starting antenna calculator service", map[string]interface{}{
		"port":        cfg.Port,
		"environment": cfg.Environment,
		"storage":     cfg.StorageMode,
		"version":     config.GetVersion(),
	})

	store, err := storage.NewStorageClient(ctx, cfg)
	if err != nil {
		logger.Fatal("Failed to initialize storage", err)
	}

	collector, err := metrics.NewCollector(prometheus.DefaultRegisterer)
	if err != nil {
		logger.Fatal("Failed to register metrics", err)
	}

	srv := server.NewServer(cfg, store, collector)
	defer srv.Close()

	httpServer := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      srv.SetupRoutes(),
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 60 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	runCtx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	go runRetention(runCtx, store, cfg.ReportRetention)

	go func() {
		log.Info("Server listening", map[string]interface{}{"addr": httpServer.Addr})
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("HTTP server error", err)
		}
	}()

	<-runCtx.Done()
	log.Info("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown error", err)
	}
	log.Info("Server stopped")
}

// runRetention deletes reports older than retention once a day until ctx ends
func runRetention(ctx context.Context, store storage.StorageClient, retention time.Duration) {
	if retention <= 0 {
		return
	}
	log := logger.WithComponent("retention")

	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()
	for {
		deleted, err := store.DeleteOlderThan(ctx, retention)
		if err != nil {
			log.Error("Failed to delete old reports", err)
		} else if deleted > 0 {
			log.Info("Deleted old reports", map[string]interface{}{"count": deleted})
		}

		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
		}
	}
}
