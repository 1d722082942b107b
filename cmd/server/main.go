package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/amirasaad/ledger/infra/initializer"
	"github.com/amirasaad/ledger/pkg/app"
	"github.com/amirasaad/ledger/pkg/config"
	"github.com/amirasaad/ledger/webapi"
	log "github.com/charmbracelet/log"
	"github.com/gofiber/fiber/v2"
	"golang.org/x/sync/errgroup"
)

// @title Ledger API
// @version 1.0.0
// @description Account ledger with deposits and transfers
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Initialize all dependencies
	deps, err := initializer.InitializeDependencies(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	logger := deps.Logger

	a := app.New(deps, cfg)
	defer func() {
		if err := a.Close(); err != nil {
			logger.Error("Failed to close ledger store", "error", err)
		}
	}()

	// Setup Fiber app with all routes and middleware
	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return serve(ctx, fiberApp, addr, cfg.Server.ShutdownTimeout, logger)
}

// serve runs the HTTP server until ctx is cancelled, then drains in-flight
// requests for at most shutdownTimeout.
func serve(
	ctx context.Context,
	fiberApp *fiber.App,
	addr string,
	shutdownTimeout time.Duration,
	logger *slog.Logger,
) error {
	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return fiberApp.Listen(addr)
	})
	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutting down server", "timeout", shutdownTimeout)
		if err := fiberApp.ShutdownWithTimeout(shutdownTimeout); err != nil {
			return fmt.Errorf("shutdown: %w", err)
		}
		return nil
	})
	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
