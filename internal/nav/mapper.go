package nav

import (
	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/feed"
	"github.com/tzcis/navstat/internal/normalize"
)

// mapRowToNavPoint converts one NAV-feed row for the given fund. Rows whose
// date cell is blank or unparseable are dropped (nil): a point without a date
// cannot be placed on the series.
func mapRowToNavPoint(row feed.Row, fundID string) *domain.NavPoint {
	date := normalize.ParseCalendarDate(row["date"])
	if date == nil {
		return nil
	}

	return &domain.NavPoint{
		FundID:           fundID,
		Date:             *date,
		NavTotal:         normalize.ParseNumber(row["nav_total"]),
		UnitsOutstanding: normalize.ParseNumber(row["units_outstanding"]),
		NavPerUnit:       normalize.ParseNumber(row["nav_per_unit"]),
		SalePrice:        normalize.ParseNumber(row["sale_price"]),
		RepurchasePrice:  normalize.ParseNumber(row["repurchase_price"]),
		SourceURL:        normalize.Sanitize(row["source_url"]),
		CollectedAt:      normalize.ParseTimestamp(row["collected_at"]),
	}
}
