// Package snapshot derives per-fund "latest known state" records, their
// freshness classification and pricing spreads.
package snapshot

import (
	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

var billion = decimal.New(1, 9)

// Latest selects the most recent usable point of a series: scanning from the
// newest point backward, the first one with any of nav total, NAV per unit,
// sale price or repurchase price present. A series whose points are all empty
// falls back to the chronologically last point; an empty series yields nil.
func Latest(series domain.NavSeries) *domain.NavSnapshot {
	if len(series.Points) == 0 {
		return nil
	}

	chosen := series.Points[len(series.Points)-1]
	for i := len(series.Points) - 1; i >= 0; i-- {
		if hasAnyValue(series.Points[i]) {
			chosen = series.Points[i]
			break
		}
	}

	snap := &domain.NavSnapshot{
		FundID:          series.FundID,
		Label:           series.Label,
		NavTotal:        chosen.NavTotal,
		NavPerUnit:      chosen.NavPerUnit,
		SalePrice:       chosen.SalePrice,
		RepurchasePrice: chosen.RepurchasePrice,
		LastUpdated:     chosen.Date,
		CollectedAt:     chosen.CollectedAt,
	}
	if chosen.NavTotal != nil {
		bn := chosen.NavTotal.Div(billion)
		snap.NavTotalBn = &bn
	}
	return snap
}

func hasAnyValue(p domain.NavPoint) bool {
	return p.NavTotal != nil || p.NavPerUnit != nil || p.SalePrice != nil || p.RepurchasePrice != nil
}

// Spread is the absolute sale/repurchase gap, with NAV per unit standing in
// for either missing price. When a side cannot be resolved at all the spread
// is unknown (nil).
func Spread(sale, repurchase, navPerUnit *decimal.Decimal) *decimal.Decimal {
	if sale == nil {
		sale = navPerUnit
	}
	if repurchase == nil {
		repurchase = navPerUnit
	}
	if sale == nil || repurchase == nil {
		return nil
	}
	d := sale.Sub(*repurchase).Abs()
	return &d
}

// SpreadRows projects snapshots that publish at least one of the two prices
// onto the sale-vs-repurchase comparison.
func SpreadRows(snapshots []domain.NavSnapshot) []domain.PriceSpreadRow {
	var rows []domain.PriceSpreadRow
	for _, s := range snapshots {
		if s.SalePrice == nil && s.RepurchasePrice == nil {
			continue
		}
		rows = append(rows, domain.PriceSpreadRow{
			Label:           s.Label,
			SalePrice:       s.SalePrice,
			RepurchasePrice: s.RepurchasePrice,
			NavPerUnit:      s.NavPerUnit,
		})
	}
	return rows
}
