// Package dashboard orchestrates one full pipeline run: the three feed
// groups are fetched concurrently, derived projections are computed and the
// result is assembled into a single immutable DashboardData value.
package dashboard

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/fund"
	"github.com/tzcis/navstat/internal/metrics"
	"github.com/tzcis/navstat/internal/snapshot"
)

// FundSource yields the fund attribute records.
type FundSource interface {
	FetchFunds(ctx context.Context) ([]domain.FundRecord, error)
}

// SeriesSource yields the per-fund NAV time series plus any per-fund
// warnings accumulated in partial mode.
type SeriesSource interface {
	BuildSeries(ctx context.Context) ([]domain.NavSeries, []string, error)
}

// LatestSource yields the independently-sourced latest-state records.
type LatestSource interface {
	FetchLatest(ctx context.Context) ([]domain.LatestFundSnapshot, error)
}

// Builder assembles DashboardData from the three upstream sources.
type Builder struct {
	funds  FundSource
	series SeriesSource
	latest LatestSource
}

// NewBuilder creates a dashboard Builder. All three sources are required.
func NewBuilder(funds FundSource, series SeriesSource, latest LatestSource) *Builder {
	if funds == nil {
		panic("dashboard.NewBuilder: funds is nil")
	}
	if series == nil {
		panic("dashboard.NewBuilder: series is nil")
	}
	if latest == nil {
		panic("dashboard.NewBuilder: latest is nil")
	}
	return &Builder{funds: funds, series: series, latest: latest}
}

// Build runs the whole pipeline once. Any source failure fails the run; the
// caller gets either a complete DashboardData or a single error.
func (b *Builder) Build(ctx context.Context, now time.Time) (domain.DashboardData, error) {
	var (
		funds      []domain.FundRecord
		series     []domain.NavSeries
		warnings   []string
		latestFeed []domain.LatestFundSnapshot
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		funds, err = b.funds.FetchFunds(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		series, warnings, err = b.series.BuildSeries(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		latestFeed, err = b.latest.FetchLatest(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return domain.DashboardData{}, err
	}

	seriesMetrics := make(map[string]domain.SeriesMetrics, len(series))
	navSnapshots := make([]domain.NavSnapshot, 0, len(series))
	for _, s := range series {
		seriesMetrics[s.FundID] = metrics.Compute(s.Points)
		if snap := snapshot.Latest(s); snap != nil {
			navSnapshots = append(navSnapshots, *snap)
		}
	}

	return domain.DashboardData{
		Funds:             funds,
		Managers:          fund.AggregateByManager(funds),
		Series:            series,
		Metrics:           seriesMetrics,
		NavSnapshots:      navSnapshots,
		LatestSnapshots:   latestFeed,
		Summary:           snapshot.Summarize(latestFeed, now),
		PerformancePoints: fund.PerformancePoints(funds),
		SpreadRows:        snapshot.SpreadRows(navSnapshots),
		Warnings:          warnings,
		GeneratedAt:       now.UTC(),
	}, nil
}
