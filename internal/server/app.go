// Package server assembles the Memora backend: database, migrations,
// services, and the HTTP endpoint.
package server

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

	"github.com/ndmitriev/memora/internal/logging"
	"github.com/ndmitriev/memora/internal/server/config"
	"github.com/ndmitriev/memora/internal/server/httpapi"
	"github.com/ndmitriev/memora/internal/server/identity"
	"github.com/ndmitriev/memora/internal/server/repositories/repomanager"
	"github.com/ndmitriev/memora/internal/server/services"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	config *config.Config
	logger logging.Logger
}

func NewApp(cfg *config.Config) *App {
	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))
	return &App{config: cfg, logger: logger}
}

// Run starts the server and blocks until the context is cancelled or the
// listener fails.
func (a *App) Run(ctx context.Context) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	db, err := repomanager.OpenDB(a.config.DatabaseDSN)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer db.Close()

	manager := repomanager.NewPostgresRepositoryManager()
	if err := manager.RunMigrations(ctx, db); err != nil {
		return fmt.Errorf("running migrations: %w", err)
	}

	broker := identity.NewHTTPClient(a.config.AuthSessionDataURL)

	authService := services.NewAuthService(db, manager, broker, a.config)
	entryService, err := services.NewEntryService(db, manager, a.config)
	if err != nil {
		return err
	}
	attachmentService := services.NewAttachmentService(db, manager, a.config)

	handler := httpapi.NewHandler(authService, entryService, attachmentService, a.config, a.logger)

	srv := &http.Server{
		Addr:    a.config.EndpointAddr,
		Handler: handler.Router(),
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info(ctx, "starting http server", "addr", a.config.EndpointAddr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	a.logger.Info(ctx, "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
