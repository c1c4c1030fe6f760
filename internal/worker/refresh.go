// Package worker runs the periodic dashboard refresh.
package worker

import (
	"context"
	"log/slog"
	"time"

	"github.com/tzcis/navstat/internal/domain"
)

// DashboardGenerator runs one pipeline pass and stores the result.
type DashboardGenerator interface {
	Generate(ctx context.Context, date time.Time) (domain.DashboardData, error)
}

// AfterRefreshHook is called after each successful refresh.
type AfterRefreshHook interface {
	Export(ctx context.Context, data domain.DashboardData) error
}

// RefreshWorker periodically regenerates the dashboard.
type RefreshWorker struct {
	generator DashboardGenerator
	interval  time.Duration
	hook      AfterRefreshHook // optional
}

// NewRefreshWorker creates a RefreshWorker with an optional post-refresh hook.
func NewRefreshWorker(generator DashboardGenerator, interval time.Duration, hook AfterRefreshHook) *RefreshWorker {
	return &RefreshWorker{
		generator: generator,
		interval:  interval,
		hook:      hook,
	}
}

func (w *RefreshWorker) refresh(ctx context.Context) {
	data, err := w.generator.Generate(ctx, utcDate())
	if err != nil {
		slog.Error("RefreshWorker: refresh failed", "error", err)
		return
	}
	slog.Info("RefreshWorker: refresh completed",
		"funds", len(data.Funds), "series", len(data.Series), "warnings", len(data.Warnings))

	if w.hook == nil {
		return
	}
	if err := w.hook.Export(ctx, data); err != nil {
		slog.Error("RefreshWorker: export hook failed", "error", err)
	} else {
		slog.Info("RefreshWorker: export hook completed")
	}
}

// utcDate returns the current date normalized to midnight UTC.
func utcDate() time.Time {
	now := time.Now().UTC()
	return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
}

// Run starts the refresh loop. It blocks until the context is cancelled.
func (w *RefreshWorker) Run(ctx context.Context) {
	slog.Info("RefreshWorker: starting", "interval", w.interval)

	// Refresh immediately on startup
	w.refresh(ctx)

	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			slog.Info("RefreshWorker: shutting down")
			return
		case <-ticker.C:
			w.refresh(ctx)
		}
	}
}
