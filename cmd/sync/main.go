// Command sync runs one synchronization pass from the command line: due
// schedule activities become to-do tasks, and the run summary is printed
// as JSON. Meant for cron jobs outside the server and for manual runs.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/semana-app/semana/internal/config"
	"github.com/semana-app/semana/internal/domain"
	"github.com/semana-app/semana/internal/kanban"
	"github.com/semana-app/semana/internal/kvstore/factory"
	"github.com/semana-app/semana/internal/observability"
	"github.com/semana-app/semana/internal/schedule"
	"github.com/semana-app/semana/internal/syncer"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to run: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	dateFlag := flag.String("date", "", "sync date as YYYY-MM-DD (default: today)")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.LoadSyncCommandConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	today := domain.DateOf(time.Now().UTC())
	if *dateFlag != "" {
		if today, err = domain.ParseDate(*dateFlag); err != nil {
			return fmt.Errorf("invalid -date: %w", err)
		}
	}

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
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := lp.Shutdown(shutdownCtx); err != nil {
			slog.ErrorContext(shutdownCtx, "failed to shutdown logger provider", "error", err)
		}
	}()
	slog.SetDefault(logger)

	kv, err := factory.Open(ctx, cfg.Storage)
	if err != nil {
		return fmt.Errorf("failed to open storage: %w", err)
	}
	defer func() {
		if err := kv.Close(); err != nil {
			slog.Error("failed to close storage", "error", err)
		}
	}()

	scheduleStore := schedule.NewStore(kv)
	taskStore := kanban.NewStore(kv)

	result := syncer.New(scheduleStore, taskStore).Sync(ctx, today)

	return report(os.Stdout, result)
}

// report prints the run summary as one line of JSON. Per-activity errors
// are already part of the summary and are soft: only a failure to render
// the summary itself makes the command exit nonzero.
func report(w io.Writer, result syncer.Result) error {
	out, err := json.Marshal(result)
	if err != nil {
		return fmt.Errorf("failed to encode result: %w", err)
	}
	_, err = fmt.Fprintln(w, string(out))
	return err
}
