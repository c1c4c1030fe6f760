package fund

import (
	"sort"

	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

type managerAccumulator struct {
	manager     string
	totalAumBn  decimal.Decimal
	fundCount   int
	returnSum   decimal.Decimal
	returnCount int
}

// AggregateByManager reduces fund records into per-manager aggregates in a
// single pass. Records without a manager are excluded entirely. A nil AUM
// counts as zero toward the total but a nil one-year return does not dilute
// the average: the mean is taken over reporting funds only. Output is ordered
// by total AUM descending, ties broken by first appearance.
func AggregateByManager(funds []domain.FundRecord) []domain.ManagerAggregate {
	byManager := make(map[string]*managerAccumulator)
	var order []string

	for _, f := range funds {
		if f.Manager == nil {
			continue
		}
		acc, ok := byManager[*f.Manager]
		if !ok {
			acc = &managerAccumulator{manager: *f.Manager}
			byManager[*f.Manager] = acc
			order = append(order, *f.Manager)
		}

		acc.totalAumBn = acc.totalAumBn.Add(domain.ZeroIfNil(f.CurrentAumBn))
		acc.fundCount++
		if f.OneYearReturn != nil {
			acc.returnSum = acc.returnSum.Add(*f.OneYearReturn)
			acc.returnCount++
		}
	}

	aggregates := make([]domain.ManagerAggregate, 0, len(order))
	for _, manager := range order {
		acc := byManager[manager]
		agg := domain.ManagerAggregate{
			Manager:    acc.manager,
			TotalAumBn: acc.totalAumBn,
			FundCount:  acc.fundCount,
		}
		if acc.returnCount > 0 {
			avg := acc.returnSum.Div(decimal.NewFromInt(int64(acc.returnCount)))
			agg.AverageOneYearReturn = &avg
		}
		aggregates = append(aggregates, agg)
	}

	sort.SliceStable(aggregates, func(i, j int) bool {
		return aggregates[i].TotalAumBn.GreaterThan(aggregates[j].TotalAumBn)
	})
	return aggregates
}
