package fund

import (
	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/feed"
	"github.com/tzcis/navstat/internal/normalize"
)

// mapRowToFund converts one attribute-feed row into a FundRecord. Rows with a
// blank Fund column are dropped (nil), not reported: they are section headers
// or padding in the source sheet.
func mapRowToFund(row feed.Row) *domain.FundRecord {
	name := normalize.Sanitize(row["Fund"])
	if name == nil {
		return nil
	}

	return &domain.FundRecord{
		Fund:             *name,
		FundLink:         normalize.Sanitize(row["Fund Link"]),
		LaunchYear:       normalize.ParseYear(row["Launch Year"]),
		CurrentAumBn:     normalize.ParseNumber(row["Current AUM (TZS bn)"]),
		NavPerUnit:       normalize.ParseNumber(row["NAV/Unit"]),
		OneYearReturn:    normalize.ParsePercent(row["1-yr Total Return"]),
		ThreeYearCagr:    normalize.ParsePercent(row["3-yr CAGR"]),
		Structure:        normalize.Sanitize(row["Structure"]),
		Manager:          normalize.Sanitize(row["Manager"]),
		ManagerLink:      normalize.Sanitize(row["Manager Link"]),
		TrusteeCustodian: normalize.Sanitize(row["Trustee/Custodian"]),
		AssetClassTilt:   normalize.Sanitize(row["Asset Class Tilt"]),
		Benchmark:        normalize.Sanitize(row["Benchmark"]),
		LiquidityWindow:  normalize.Sanitize(row["Liquidity Window"]),
		ManagementFee:    normalize.Sanitize(row["Management Fee"]),
		FrontExitLoad:    normalize.Sanitize(row["Front/Exit Load"]),
		EsgPolicy:        normalize.Sanitize(row["ESG Policy"]),
		Notes:            normalize.Sanitize(row["Notes"]),
	}
}
