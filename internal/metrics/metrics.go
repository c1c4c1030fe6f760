// Package metrics derives per-series statistics from NAV histories.
package metrics

import (
	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

// MetricReady filters a series' points down to those carrying a NAV-per-unit
// value. The input is assumed date-ascending; order is preserved.
func MetricReady(points []domain.NavPoint) []domain.NavPoint {
	return lo.Filter(points, func(p domain.NavPoint, _ int) bool {
		return p.NavPerUnit != nil
	})
}

// Compute derives the 1-day, month-to-date and year-to-date returns plus the
// maximum drawdown of a date-ascending point list. Fewer than two
// metric-ready points yield all-nil metrics; individual returns are nil when
// their reference value is missing or zero.
func Compute(points []domain.NavPoint) domain.SeriesMetrics {
	ready := MetricReady(points)
	if len(ready) < 2 {
		return domain.SeriesMetrics{}
	}

	last := ready[len(ready)-1]
	prev := ready[len(ready)-2]

	return domain.SeriesMetrics{
		OneDay:      domain.Ratio(last.NavPerUnit, prev.NavPerUnit),
		MonthToDate: periodReturn(ready, last, 7),
		YearToDate:  periodReturn(ready, last, 4),
		MaxDrawdown: maxDrawdown(ready),
	}
}

// periodReturn computes the return from the first metric-ready point sharing
// the last point's date prefix (7 chars for year-month, 4 for year).
func periodReturn(ready []domain.NavPoint, last domain.NavPoint, prefixLen int) *decimal.Decimal {
	if len(last.Date) < prefixLen {
		return nil
	}
	prefix := last.Date[:prefixLen]
	start, found := lo.Find(ready, func(p domain.NavPoint) bool {
		return len(p.Date) >= prefixLen && p.Date[:prefixLen] == prefix
	})
	if !found {
		return nil
	}
	return domain.Ratio(last.NavPerUnit, start.NavPerUnit)
}

// maxDrawdown runs a single forward pass tracking the running maximum and
// returns the most negative (value - max) / max seen. A monotonically
// non-decreasing series yields exactly zero; the result is never positive.
func maxDrawdown(ready []domain.NavPoint) *decimal.Decimal {
	worst := decimal.Zero
	var runningMax *decimal.Decimal

	for _, p := range ready {
		nav := *p.NavPerUnit
		if runningMax == nil || nav.GreaterThan(*runningMax) {
			runningMax = &nav
		}
		if runningMax.IsZero() {
			continue
		}
		dd := nav.Sub(*runningMax).Div(*runningMax)
		if dd.LessThan(worst) {
			worst = dd
		}
	}
	return &worst
}
