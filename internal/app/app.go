package app

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"

	"github.com/lawdesk/casetrack-backend/internal/adapter/postgres"
	"github.com/lawdesk/casetrack-backend/internal/adapter/postgres/caseview"
	"github.com/lawdesk/casetrack-backend/internal/config"
	"github.com/lawdesk/casetrack-backend/internal/service/deadline"
	"github.com/lawdesk/casetrack-backend/migrations"
)

// Run is the application entry point for the alert daemon. It loads
// configuration, initializes the logger, connects to the database, applies
// schema migrations, and then periodically scans all cases for statutory
// deadline alerts until the context is canceled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)

	logger.Info("starting alert daemon",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.Duration("check_interval", cfg.Alerts.CheckInterval),
	)

	if err := migrate(ctx, cfg.Database.DSN, logger); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect database: %w", err)
	}
	defer pool.Close()

	cases := caseview.New(pool)
	watcher := deadline.NewWatcher(
		cfg.Alerts.StatutoryWindowDays,
		cfg.Alerts.AlertAtDaysLeft,
		cfg.Alerts.CaseListRoute,
	)
	svc := deadline.NewService(logger, cases, watcher)

	ticker := time.NewTicker(cfg.Alerts.CheckInterval)
	defer ticker.Stop()

	// One scan at startup, then on every tick.
	scan(ctx, logger, svc)

	for {
		select {
		case <-ctx.Done():
			logger.Info("shutting down alert daemon")
			return nil
		case <-ticker.C:
			scan(ctx, logger, svc)
		}
	}
}

func scan(ctx context.Context, logger *slog.Logger, svc *deadline.Service) {
	alerts, err := svc.PendingAlerts(ctx, time.Now())
	if err != nil {
		logger.ErrorContext(ctx, "deadline scan failed", slog.Any("error", err))
		return
	}

	for _, a := range alerts {
		logger.InfoContext(ctx, "statutory deadline alert",
			slog.String("tier", a.Tier.String()),
			slog.String("case_id", a.CaseID.String()),
			slog.String("case_number", a.CaseNumber),
			slog.Int("days_left", a.DaysLeft),
			slog.String("target", a.Target),
		)
	}
}

// migrate applies pending goose migrations. It uses database/sql because
// goose requires a *sql.DB; the application itself talks pgx.
func migrate(ctx context.Context, dsn string, logger *slog.Logger) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	for _, r := range results {
		logger.InfoContext(ctx, "applied migration", slog.String("source", r.Source.Path))
	}

	return nil
}
