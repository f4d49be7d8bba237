// Package main is the entry point for the Javanese calendar API server.
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
	"time"

	"github.com/zapponejosh/kalender-jawa/internal/api"
	"github.com/zapponejosh/kalender-jawa/internal/calendar"
	"github.com/zapponejosh/kalender-jawa/internal/config"
	"github.com/zapponejosh/kalender-jawa/internal/database"
	"github.com/zapponejosh/kalender-jawa/internal/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load configuration", slog.Any("error", err))
		os.Exit(1)
	}

	log := logger.Setup(cfg, os.Stdout)

	if err := run(cfg, log); err != nil {
		log.Error("server stopped", slog.Any("error", err))
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *slog.Logger) error {
	log.Info("starting kalender API",
		slog.String("env", cfg.Env),
		slog.Int("port", cfg.Port),
		slog.String("log_level", cfg.LogLevel),
		slog.String("stepping", cfg.Stepping),
	)

	db, err := database.Open(database.DefaultConfig(cfg.DatabasePath), log)
	if err != nil {
		return fmt.Errorf("open database: %w", err)
	}
	defer db.Close()

	ctx := context.Background()
	applied, err := db.Migrate(ctx)
	if err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}
	log.Info("migrations complete", slog.Int("applied", applied))

	var opts []calendar.Option
	if cfg.IterativeStepping() {
		opts = append(opts, calendar.WithIterativeStepping())
	}
	conv := calendar.NewConverter(opts...)

	handlers := api.NewHandlers(db, conv, cfg, log)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           api.SetupRoutes(handlers, cfg, log),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("kalender API ready", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-stop:
		log.Info("shutting down", slog.String("signal", sig.String()))
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}

	log.Info("server stopped cleanly")
	return nil
}
