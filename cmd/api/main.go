package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/Topethedop/stock-dashboard/internal/api"
	"github.com/Topethedop/stock-dashboard/internal/infra/quotes"
	"github.com/Topethedop/stock-dashboard/internal/infra/storage"
	"github.com/Topethedop/stock-dashboard/internal/pkg/config"
	"github.com/Topethedop/stock-dashboard/internal/pkg/logger"
	"github.com/Topethedop/stock-dashboard/internal/service/dashboard"
)

const (
	serviceName    = "stock-dashboard-api"
	serviceVersion = "1.0.0"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to load configuration")
	}

	if err := logger.Init(logger.Config{
		Level:          cfg.Logging.Level,
		Format:         cfg.Logging.Format,
		FileEnabled:    cfg.Logging.FileEnabled,
		FilePath:       cfg.Logging.FilePath,
		RotationSize:   cfg.Logging.RotationSize,
		RetentionDays:  cfg.Logging.RetentionDays,
		ServiceName:    serviceName,
		ServiceVersion: serviceVersion,
	}); err != nil {
		log.Fatal().Err(err).Msg("Failed to initialize logger")
	}

	log.Info().
		Str("version", serviceVersion).
		Msg("Starting stock dashboard API server")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	store, err := storage.OpenWatchlistFile(ctx, cfg.Watchlist.FilePath)
	if err != nil {
		log.Fatal().Err(err).Str("path", cfg.Watchlist.FilePath).Msg("Failed to load watchlist")
	}

	provider, err := quotes.New(cfg.Quotes)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create quote provider")
	}

	svc := dashboard.NewService(store, provider, dashboard.Config{
		ThresholdPct: cfg.Events.ThresholdPct,
		LogCapacity:  cfg.Events.Capacity,
	})

	symbols, err := store.List(ctx)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to read watchlist")
	}
	log.Info().
		Str("provider", provider.Name()).
		Str("watchlist_file", store.Path()).
		Int("symbols", len(symbols)).
		Float64("event_threshold_pct", cfg.Events.ThresholdPct).
		Int("event_log_capacity", cfg.Events.Capacity).
		Msg("Dashboard service ready")

	router, err := api.NewRouter(cfg, svc, serviceVersion)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to build router")
	}

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router.Engine(),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	go func() {
		log.Info().
			Str("address", addr).
			Msg("API server listening")

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("Failed to start API server")
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	log.Info().Msg("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error().Err(err).Msg("Server shutdown failed")
	}

	log.Info().Msg("Stock dashboard API server stopped")
}
