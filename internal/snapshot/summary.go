package snapshot

import (
	"sort"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

// Summarize reduces the latest-snapshot feed into headline figures: total NAV
// in billions (nil when nothing reports), simple average NAV per unit over
// reporting funds, the count of Fresh uploads, and the median sale/repurchase
// spread.
func Summarize(snapshots []domain.LatestFundSnapshot, now time.Time) domain.SnapshotSummary {
	if len(snapshots) == 0 {
		return domain.SnapshotSummary{}
	}

	var summary domain.SnapshotSummary

	totalNav := lo.Reduce(snapshots, func(acc decimal.Decimal, s domain.LatestFundSnapshot, _ int) decimal.Decimal {
		return acc.Add(domain.ZeroIfNil(s.NavTotal))
	}, decimal.Zero)
	if !totalNav.IsZero() {
		bn := totalNav.Div(billion)
		summary.TotalNavBn = &bn
	}

	navValues := lo.FilterMap(snapshots, func(s domain.LatestFundSnapshot, _ int) (decimal.Decimal, bool) {
		if s.NavPerUnit == nil {
			return decimal.Zero, false
		}
		return *s.NavPerUnit, true
	})
	if len(navValues) > 0 {
		sum := lo.Reduce(navValues, func(acc, v decimal.Decimal, _ int) decimal.Decimal {
			return acc.Add(v)
		}, decimal.Zero)
		avg := sum.Div(decimal.NewFromInt(int64(len(navValues))))
		summary.AverageNavPerUnit = &avg
	}

	for _, s := range snapshots {
		if Classify(s.Date, s.CollectedAt, now).Tier == domain.TierFresh {
			summary.FreshCount++
		}
	}

	summary.MedianSpread = medianSpread(snapshots)
	return summary
}

func medianSpread(snapshots []domain.LatestFundSnapshot) *decimal.Decimal {
	spreads := lo.FilterMap(snapshots, func(s domain.LatestFundSnapshot, _ int) (decimal.Decimal, bool) {
		sp := Spread(s.SalePrice, s.RepurchasePrice, s.NavPerUnit)
		if sp == nil {
			return decimal.Zero, false
		}
		return *sp, true
	})
	if len(spreads) == 0 {
		return nil
	}

	sort.Slice(spreads, func(i, j int) bool { return spreads[i].LessThan(spreads[j]) })

	mid := len(spreads) / 2
	if len(spreads)%2 == 1 {
		return &spreads[mid]
	}
	median := spreads[mid-1].Add(spreads[mid]).Div(decimal.NewFromInt(2))
	return &median
}
