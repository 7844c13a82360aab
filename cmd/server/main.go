package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	"github.com/semana-app/semana/internal/calendar"
	"github.com/semana-app/semana/internal/config"
	"github.com/semana-app/semana/internal/domain"
	semanahttp "github.com/semana-app/semana/internal/http"
	"github.com/semana-app/semana/internal/http/handler"
	"github.com/semana-app/semana/internal/kanban"
	"github.com/semana-app/semana/internal/kvstore/factory"
	"github.com/semana-app/semana/internal/observability"
	"github.com/semana-app/semana/internal/prefs"
	"github.com/semana-app/semana/internal/schedule"
	"github.com/semana-app/semana/internal/syncer"
)

func main() {
	if err := run(); err != nil {
		// Print to stderr directly: slog may not be configured yet when
		// config loading fails.
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// A .env file is a development convenience; absence is not an error.
	_ = godotenv.Load()

	cfg, err := config.LoadServerConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	// Root context for all normal operations, canceled on SIGTERM/SIGINT.
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	obsCfg := observability.Config{
		Enabled:     cfg.Observability.Enabled,
		ServiceName: cfg.Observability.ServiceName,
	}

	lp, logger, err := observability.InitLogger(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init logger: %w", err)
	}
	defer func() {
		// Fresh timeout context so shutdown cannot hang on an unreachable
		// collector.
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lp.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown logger provider", "error", err)
		}
	}()
	slog.SetDefault(logger)

	tp, err := observability.InitTracerProvider(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init tracer provider: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown tracer provider", "error", err)
		}
	}()

	mp, err := observability.InitMeterProvider(ctx, obsCfg)
	if err != nil {
		return fmt.Errorf("failed to init meter provider: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mp.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown meter provider", "error", err)
		}
	}()

	slog.InfoContext(ctx, "starting semana service", "storage_driver", cfg.Storage.Driver)

	kv, err := factory.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	if cfg.Storage.Driver == "postgres" {
		slog.InfoContext(ctx, "storage initialized", "url", maskPassword(cfg.Storage.PostgresURL))
	}

	scheduleStore := schedule.NewStore(kv)
	taskStore := kanban.NewStore(kv)
	syncEngine := syncer.New(scheduleStore, taskStore)
	monthView := calendar.NewView(scheduleStore)
	prefsStore := prefs.NewStore(kv)

	if cfg.SeedDefaultSlots {
		slots := scheduleStore.EnsureDefaultSlots(ctx)
		slog.InfoContext(ctx, "schedule slots ready", "count", len(slots))
	}

	apiHandler := handler.NewServer(scheduleStore, taskStore, syncEngine, monthView, prefsStore, kv)

	server := semanahttp.NewAPIServer(apiHandler.Routes(), semanahttp.ServerConfig{
		Host:              cfg.HTTP.Host,
		Port:              cfg.HTTP.Port,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		MaxHeaderBytes:    cfg.HTTP.MaxHeaderBytes,
		MaxBodyBytes:      cfg.HTTP.MaxBodyBytes,
		APIToken:          cfg.HTTP.APIToken,
	})

	if cfg.Sync.Enabled {
		c := cron.New(cron.WithSeconds())
		if _, err := c.AddFunc(cfg.Sync.Schedule, func() {
			today := domain.DateOf(time.Now().UTC())
			result := syncEngine.Sync(context.Background(), today)
			slog.Info("scheduled sync finished",
				"date", today.String(),
				"created", result.Created,
				"skipped", result.Skipped,
				"errors", len(result.Errors))
		}); err != nil {
			return fmt.Errorf("failed to schedule sync job: %w", err)
		}
		c.Start()
		defer c.Stop()
		slog.InfoContext(ctx, "scheduled sync enabled", "cron", cfg.Sync.Schedule)
	}

	errResult := make(chan error, 1)
	go func() {
		if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errResult <- fmt.Errorf("failed to serve HTTP: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		slog.Info("shutdown signal received")
	case err := <-errResult:
		return err
	}

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("failed to shutdown HTTP server: %w", err)
	}

	slog.Info("server shut down gracefully")
	return nil
}

// maskPassword masks the password in a connection string for logging.
func maskPassword(connStr string) string {
	u, err := url.Parse(connStr)
	if err != nil {
		// Full redaction when parsing fails.
		return "[REDACTED]"
	}
	if u.User != nil {
		if _, hasPassword := u.User.Password(); hasPassword {
			u.User = url.UserPassword(u.User.Username(), "xxxxxx")
		}
	}
	return u.String()
}
