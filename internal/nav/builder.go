// Package nav assembles per-fund NAV time series from the catalogue's feeds.
package nav

import (
	"context"
	"fmt"
	"sort"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/feed"
)

// FeedFetcher retrieves header-keyed rows from a named CSV feed.
type FeedFetcher interface {
	FetchCSV(ctx context.Context, name, url string) ([]feed.Row, error)
}

// Service fetches every catalogue fund's NAV feed and builds ordered series.
type Service struct {
	feeds       FeedFetcher
	catalogue   []domain.FundMeta
	baseURL     string
	concurrency int
	failFast    bool
}

// NewService creates a series builder over the given catalogue.
//
// failFast selects the batch policy: when true one failed feed voids the
// whole batch (in-flight fetches are cancelled and partial results
// discarded); when false failed funds are reported as warnings and their
// series omitted.
func NewService(feeds FeedFetcher, catalogue []domain.FundMeta, baseURL string, concurrency int, failFast bool) *Service {
	if feeds == nil {
		panic("nav.NewService: feeds is nil")
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Service{
		feeds:       feeds,
		catalogue:   catalogue,
		baseURL:     baseURL,
		concurrency: concurrency,
		failFast:    failFast,
	}
}

// BuildSeries fetches all catalogue feeds concurrently and returns one series
// per catalogue entry, in catalogue order, each sorted ascending by date.
// Returned warnings list funds skipped in partial mode; in fail-fast mode the
// first failure is returned as the batch error instead.
func (s *Service) BuildSeries(ctx context.Context) ([]domain.NavSeries, []string, error) {
	// Each task writes only its own slot, so no locking is needed and
	// catalogue order is preserved for free.
	results := make([]domain.NavSeries, len(s.catalogue))
	failures := make([]error, len(s.catalogue))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)

	for i, meta := range s.catalogue {
		g.Go(func() error {
			series, err := s.buildOne(gctx, meta)
			if err != nil {
				if s.failFast {
					return err
				}
				failures[i] = err
				return nil
			}
			results[i] = series
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}

	var warnings []string
	kept := make([]domain.NavSeries, 0, len(results))
	for i, series := range results {
		if failures[i] != nil {
			warnings = append(warnings, fmt.Sprintf("nav series %s skipped: %v", s.catalogue[i].FundID, failures[i]))
			continue
		}
		kept = append(kept, series)
	}
	return kept, warnings, nil
}

func (s *Service) buildOne(ctx context.Context, meta domain.FundMeta) (domain.NavSeries, error) {
	rows, err := s.feeds.FetchCSV(ctx, meta.FundID, meta.FeedURL(s.baseURL))
	if err != nil {
		return domain.NavSeries{}, err
	}

	points := lo.FilterMap(rows, func(row feed.Row, _ int) (domain.NavPoint, bool) {
		p := mapRowToNavPoint(row, meta.FundID)
		if p == nil {
			return domain.NavPoint{}, false
		}
		return *p, true
	})

	// Row order is not guaranteed by the source. Dates are canonical ISO,
	// so string order is chronological; the sort is stable to keep
	// duplicate-date rows in source order.
	sort.SliceStable(points, func(i, j int) bool {
		return points[i].Date < points[j].Date
	})

	return domain.NavSeries{
		FundID: meta.FundID,
		Label:  meta.Label,
		Color:  meta.Color,
		Points: points,
	}, nil
}
