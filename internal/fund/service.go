package fund

import (
	"context"

	"github.com/samber/lo"

	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/feed"
)

// FeedFetcher retrieves header-keyed rows from a named CSV feed.
type FeedFetcher interface {
	FetchCSV(ctx context.Context, name, url string) ([]feed.Row, error)
}

// Service loads and maps the fund attribute feed.
type Service struct {
	feeds FeedFetcher
	url   string
}

// NewService creates a fund attribute Service.
func NewService(feeds FeedFetcher, url string) *Service {
	if feeds == nil {
		panic("fund.NewService: feeds is nil")
	}
	return &Service{feeds: feeds, url: url}
}

// FetchFunds retrieves the attribute feed and maps it to typed records.
// Rows without a fund name are skipped silently.
func (s *Service) FetchFunds(ctx context.Context) ([]domain.FundRecord, error) {
	rows, err := s.feeds.FetchCSV(ctx, "funds", s.url)
	if err != nil {
		return nil, err
	}

	return lo.FilterMap(rows, func(row feed.Row, _ int) (domain.FundRecord, bool) {
		rec := mapRowToFund(row)
		if rec == nil {
			return domain.FundRecord{}, false
		}
		return *rec, true
	}), nil
}
