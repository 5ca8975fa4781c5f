package cmd

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

	"github.com/frahmantamala/tunjangan-pas/internal/transport/openapi"
	"github.com/frahmantamala/tunjangan-pas/pkg/logger"
	"github.com/spf13/cobra"
)

var httpServerCmd = &cobra.Command{
	Use:   "server",
	Short: "Start HTTP server",
	Long:  `Start the HTTP server to handle API requests`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return startHTTPServer(cmd.Context())
	},
}

func startHTTPServer(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}
	cfg, err := setup()
	if err != nil {
		return err
	}
	lg := logger.L()

	if _, err := openapi.Load(ctx); err != nil {
		return err
	}

	app, err := newApp(ctx, cfg, lg)
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	server := &http.Server{
		Addr:              addr,
		Handler:           app.Router(),
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
		ReadTimeout:       cfg.Server.ReadTimeout,
		WriteTimeout:      cfg.Server.WriteTimeout,
		IdleTimeout:       cfg.Server.IdleTimeout,
	}

	// Signal handling for graceful shutdown
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	serverErrChan := make(chan error, 1)
	go func() {
		lg.Info("starting HTTP server", "address", addr, "driver", cfg.Database.Driver)
		serverErrChan <- server.ListenAndServe()
	}()

	select {
	case sig := <-sigChan:
		lg.Info("received signal, shutting down", "signal", sig)
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			lg.Error("server shutdown error", "error", err)
		}
	case err := <-serverErrChan:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			_ = app.Close()
			return fmt.Errorf("server failed: %w", err)
		}
	}

	if err := app.Close(); err != nil {
		slog.Error("database close error", "error", err)
	}
	lg.Info("server stopped")
	return nil
}
