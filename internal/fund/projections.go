package fund

import (
	"github.com/samber/lo"

	"github.com/tzcis/navstat/internal/domain"
)

// PerformancePoints projects funds that report both a one-year return and a
// three-year CAGR onto the return-landscape scatter. Missing AUM renders as a
// zero-sized bubble rather than excluding the fund.
func PerformancePoints(funds []domain.FundRecord) []domain.PerformancePoint {
	return lo.FilterMap(funds, func(f domain.FundRecord, _ int) (domain.PerformancePoint, bool) {
		if f.OneYearReturn == nil || f.ThreeYearCagr == nil {
			return domain.PerformancePoint{}, false
		}
		return domain.PerformancePoint{
			Fund:          f.Fund,
			Manager:       f.Manager,
			OneYearReturn: *f.OneYearReturn,
			ThreeYearCagr: *f.ThreeYearCagr,
			CurrentAumBn:  domain.ZeroIfNil(f.CurrentAumBn),
		}, true
	})
}
