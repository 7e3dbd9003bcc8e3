package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"

	"switchboard/internal/api"
	"switchboard/internal/config"
	"switchboard/internal/database"
	"switchboard/internal/directory"
	"switchboard/internal/middleware"
	"switchboard/internal/telemetry"
	"switchboard/internal/validator"
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	cfg := config.NewConfig()

	// Set up telemetry and logging
	tel, err := telemetry.New(cfg.Telemetry)
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	slog.SetDefault(tel.Logger())

	// Set up Postgres connection
	db := database.NewDatabase()
	if err := db.Connect(ctx, cfg.Database.DSN()); err != nil {
		slog.Error("Failed to initialize database", "error", err)
		return err
	}
	defer db.Close()

	if err := db.Ping(ctx); err != nil {
		slog.Error("Failed to ping database", "error", err)
		return err
	}

	service := directory.NewService(&db)
	validate := validator.New()
	handler := api.NewHandler(&db, service, validate)

	// Set up Fiber app
	app := fiber.New(fiber.Config{
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	})

	app.Use(middleware.RequestID())
	app.Use(middleware.Logger())
	if tel.IsEnabled() {
		app.Use(telemetry.FiberMiddleware(cfg.Telemetry.ServiceName))
	}

	// Routes
	app.Get("/api/health", handler.Health)
	app.Get("/api/org-units", handler.ListOrgUnits)
	app.Get("/api/directory", handler.GetDirectory)
	app.Get("/api/directory/search", handler.SearchDirectory)
	app.Get("/api/directory/:unitID", handler.GetOrgUnitDirectory)
	app.Get("/api/extensions", handler.ListExtensionRegistry)

	go func() {
		sig := <-sigChan
		slog.Info("Received signal, shutting down", "signal", sig.String())
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			slog.Error("Failed to shut down server", "error", err)
		}
		cancel()
	}()

	addr := cfg.Server.Host + ":" + cfg.Server.Port
	slog.Info("Starting server", "addr", addr, "environment", cfg.Server.Environment)
	if err := app.Listen(addr); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := tel.Shutdown(shutdownCtx); err != nil {
		slog.Error("Failed to shut down telemetry", "error", err)
	}

	return nil
}
