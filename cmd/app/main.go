package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/osse101/LootLedger_Go/internal/bootstrap"
	"github.com/osse101/LootLedger_Go/internal/config"
	"github.com/osse101/LootLedger_Go/internal/economy"
	"github.com/osse101/LootLedger_Go/internal/item"
	"github.com/osse101/LootLedger_Go/internal/server"
)

func main() {
	if err := run(); err != nil {
		slog.Error("LootLedger exited", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		return fmt.Errorf("failed to set up logging: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// A malformed catalog ends the session before anything is served.
	catalog, err := item.LoadCatalog(ctx, item.NewLoader(), cfg.CatalogPath)
	if err != nil {
		return fmt.Errorf("failed to load item catalog: %w", err)
	}

	bus := bootstrap.InitializeEventSystem()
	hub := bootstrap.InitializeEventStream(bus)

	economyService, err := economy.NewService(ctx, catalog, economy.Config{
		MaxInventoryWeight: cfg.MaxInventoryWeight,
		InitialCurrency:    cfg.InitialCurrency,
		GateByProbability:  cfg.LootProbabilityGate,
	}, nil, bus)
	if err != nil {
		return fmt.Errorf("failed to create economy service: %w", err)
	}

	srv := server.NewServer(cfg.Addr(), cfg.Version, economyService, hub)

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	var runErr error
	select {
	case err := <-serveErr:
		if err != nil {
			runErr = fmt.Errorf("server failed: %w", err)
		}
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()
	bootstrap.GracefulShutdown(shutdownCtx, bootstrap.ShutdownComponents{
		Streams: hub,
		Server:  srv,
		LogFile: logFile,
	})

	return runErr
}
