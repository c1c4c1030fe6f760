package snapshot

import (
	"context"
	"errors"

	"github.com/samber/lo"

	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/feed"
	"github.com/tzcis/navstat/internal/normalize"
)

// ErrNotConfigured indicates that the latest-snapshot feed address is unset.
// It is surfaced before any fetch is attempted; an absent address is a
// deployment error, not an empty feed.
var ErrNotConfigured = errors.New("latest fund feed URL is not configured (set LATEST_FUNDS_CSV_URL)")

// FeedFetcher retrieves header-keyed rows from a named CSV feed.
type FeedFetcher interface {
	FetchCSV(ctx context.Context, name, url string) ([]feed.Row, error)
}

// Service loads the independently-sourced latest-state feed.
type Service struct {
	feeds FeedFetcher
	url   string
}

// NewService creates a latest-snapshot Service. The url may be empty;
// FetchLatest then fails with ErrNotConfigured.
func NewService(feeds FeedFetcher, url string) *Service {
	if feeds == nil {
		panic("snapshot.NewService: feeds is nil")
	}
	return &Service{feeds: feeds, url: url}
}

// FetchLatest retrieves and maps the latest-snapshot feed. Rows without a
// fund id are skipped silently.
func (s *Service) FetchLatest(ctx context.Context) ([]domain.LatestFundSnapshot, error) {
	if s.url == "" {
		return nil, ErrNotConfigured
	}

	rows, err := s.feeds.FetchCSV(ctx, "latest", s.url)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(rows, func(row feed.Row, _ int) (domain.LatestFundSnapshot, bool) {
		snap := mapRowToSnapshot(row)
		if snap == nil {
			return domain.LatestFundSnapshot{}, false
		}
		return *snap, true
	}), nil
}

// mapRowToSnapshot converts one latest-feed row. Numeric cells in this feed
// arrive ledger-styled ("TZS 1,200", "(350)"), hence the accounting parser.
func mapRowToSnapshot(row feed.Row) *domain.LatestFundSnapshot {
	fundID := normalize.Sanitize(row["fund_id"])
	if fundID == nil {
		return nil
	}

	return &domain.LatestFundSnapshot{
		FundID:           *fundID,
		Date:             normalize.ParseCalendarDate(row["date"]),
		NavTotal:         normalize.ParseAccountingNumber(row["nav_total"]),
		UnitsOutstanding: normalize.ParseAccountingNumber(row["units_outstanding"]),
		NavPerUnit:       normalize.ParseAccountingNumber(row["nav_per_unit"]),
		SalePrice:        normalize.ParseAccountingNumber(row["sale_price"]),
		RepurchasePrice:  normalize.ParseAccountingNumber(row["repurchase_price"]),
		CollectedAt:      normalize.ParseTimestamp(row["collected_at"]),
	}
}
