package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/tzcis/navstat/internal/api"
	"github.com/tzcis/navstat/internal/config"
	"github.com/tzcis/navstat/internal/dashboard"
	"github.com/tzcis/navstat/internal/database"
	"github.com/tzcis/navstat/internal/export"
	"github.com/tzcis/navstat/internal/feed"
	"github.com/tzcis/navstat/internal/fund"
	"github.com/tzcis/navstat/internal/nav"
	"github.com/tzcis/navstat/internal/snapshot"
	"github.com/tzcis/navstat/internal/worker"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

func main() {
	app := &cli.App{
		Name:  "navstat",
		Usage: "Tanzanian collective investment scheme NAV statistics service",
		Commands: []*cli.Command{
			{
				Name:   "serve",
				Usage:  "run the HTTP API and the periodic refresh worker",
				Action: runServe,
			},
			{
				Name:   "refresh",
				Usage:  "run the pipeline once, store the result and exit",
				Action: runRefresh,
			},
			{
				Name:  "export",
				Usage: "run the pipeline once and export it as a spreadsheet",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "format",
						Value: "xlsx",
						Usage: "export destination: xlsx or sheets",
					},
				},
				Action: runExport,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// newBuilder wires the three feed services into a dashboard builder.
func newBuilder(cfg config.Config) (*dashboard.Builder, error) {
	catalogue, err := config.LoadCatalogue(cfg.CataloguePath)
	if err != nil {
		return nil, fmt.Errorf("loading catalogue: %w", err)
	}

	feeds := feed.NewClient(cfg.FetchTimeout)
	fundSvc := fund.NewService(feeds, cfg.FundsCSVURL)
	navSvc := nav.NewService(feeds, catalogue, cfg.NavSheetBaseURL, cfg.FetchConcurrency, cfg.NavFailFast)
	latestSvc := snapshot.NewService(feeds, cfg.LatestCSVURL)

	return dashboard.NewBuilder(fundSvc, navSvc, latestSvc), nil
}

// newDashboardService connects to the database, applies migrations and wires
// the persisted dashboard service.
func newDashboardService(ctx context.Context, cfg config.Config) (*dashboard.Service, func(), error) {
	if cfg.DatabaseURL == "" {
		return nil, nil, fmt.Errorf("DATABASE_URL is required")
	}

	pool, err := database.Connect(ctx, cfg.DatabaseURL)
	if err != nil {
		return nil, nil, fmt.Errorf("connecting to database: %w", err)
	}

	migrationsSub, err := fs.Sub(migrationsFS, "migrations")
	if err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("creating migrations sub-fs: %w", err)
	}
	if err := database.RunMigrations(ctx, pool, migrationsSub); err != nil {
		pool.Close()
		return nil, nil, fmt.Errorf("running migrations: %w", err)
	}

	builder, err := newBuilder(cfg)
	if err != nil {
		pool.Close()
		return nil, nil, err
	}

	svc := dashboard.NewService(builder, dashboard.NewPgRepository(pool))
	return svc, pool.Close, nil
}

// newExportHook builds the optional post-refresh export hook from config.
// Google Sheets wins when both destinations are configured.
func newExportHook(ctx context.Context, cfg config.Config) (*export.Service, error) {
	if cfg.SheetsID != "" && cfg.SheetsCredentials != "" {
		writer, err := export.NewSheetsWriter(ctx, cfg.SheetsID, cfg.SheetsCredentials)
		if err != nil {
			return nil, fmt.Errorf("creating sheets writer: %w", err)
		}
		return export.NewService(writer), nil
	}
	if cfg.XLSXOutputPath != "" {
		return export.NewService(export.NewXLSXWriter(cfg.XLSXOutputPath)), nil
	}
	return nil, nil
}

func runServe(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	dashboards, closePool, err := newDashboardService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePool()

	hook, err := newExportHook(ctx, cfg)
	if err != nil {
		return err
	}

	var refreshHook worker.AfterRefreshHook
	if hook != nil {
		refreshHook = hook
	}
	refreshWorker := worker.NewRefreshWorker(dashboards, cfg.RefreshInterval, refreshHook)
	go refreshWorker.Run(ctx)

	if cfg.AdminAPIKey == "" {
		slog.Warn("ADMIN_API_KEY not set, refresh endpoint is unprotected")
	}

	srv := api.NewServer(cfg.HTTPPort, dashboards, cfg.AdminAPIKey)

	go func() {
		slog.Info("HTTP server listening", "port", cfg.HTTPPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("HTTP server error", "error", err)
			stop()
		}
	}()

	<-ctx.Done()
	slog.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("shutdown complete")
	return nil
}

func runRefresh(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	dashboards, closePool, err := newDashboardService(ctx, cfg)
	if err != nil {
		return err
	}
	defer closePool()

	now := time.Now().UTC()
	date := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	data, err := dashboards.Generate(ctx, date)
	if err != nil {
		return fmt.Errorf("refreshing dashboard: %w", err)
	}

	slog.Info("dashboard refreshed",
		"date", date.Format("2006-01-02"),
		"funds", len(data.Funds),
		"series", len(data.Series),
		"warnings", len(data.Warnings))
	return nil
}

func runExport(c *cli.Context) error {
	ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg := config.Load()

	builder, err := newBuilder(cfg)
	if err != nil {
		return err
	}

	var writer export.SheetWriter
	switch format := c.String("format"); format {
	case "sheets":
		if cfg.SheetsID == "" || cfg.SheetsCredentials == "" {
			return fmt.Errorf("sheets export requires SHEETS_SPREADSHEET_ID and SHEETS_CREDENTIALS_JSON")
		}
		writer, err = export.NewSheetsWriter(ctx, cfg.SheetsID, cfg.SheetsCredentials)
		if err != nil {
			return fmt.Errorf("creating sheets writer: %w", err)
		}
	case "xlsx":
		if cfg.XLSXOutputPath == "" {
			return fmt.Errorf("xlsx export requires XLSX_OUTPUT_PATH")
		}
		writer = export.NewXLSXWriter(cfg.XLSXOutputPath)
	default:
		return fmt.Errorf("unknown export format %q", format)
	}

	data, err := builder.Build(ctx, time.Now().UTC())
	if err != nil {
		return fmt.Errorf("building dashboard: %w", err)
	}

	if err := export.NewService(writer).Export(ctx, data); err != nil {
		return fmt.Errorf("exporting dashboard: %w", err)
	}

	slog.Info("dashboard exported", "format", c.String("format"))
	return nil
}
