package domain

import "github.com/shopspring/decimal"

// FundRecord holds one fund's descriptive attributes from the attribute feed.
// Every numeric field is nil when the source cell is blank or unparseable.
// Records are immutable after mapping.
type FundRecord struct {
	Fund             string           `json:"fund"`
	FundLink         *string          `json:"fundLink,omitempty"`
	LaunchYear       *int             `json:"launchYear,omitempty"`
	CurrentAumBn     *decimal.Decimal `json:"currentAumBn,omitempty"`
	NavPerUnit       *decimal.Decimal `json:"navPerUnit,omitempty"`
	OneYearReturn    *decimal.Decimal `json:"oneYearReturn,omitempty"`
	ThreeYearCagr    *decimal.Decimal `json:"threeYearCagr,omitempty"`
	Structure        *string          `json:"structure,omitempty"`
	Manager          *string          `json:"manager,omitempty"`
	ManagerLink      *string          `json:"managerLink,omitempty"`
	TrusteeCustodian *string          `json:"trusteeCustodian,omitempty"`
	AssetClassTilt   *string          `json:"assetClassTilt,omitempty"`
	Benchmark        *string          `json:"benchmark,omitempty"`
	LiquidityWindow  *string          `json:"liquidityWindow,omitempty"`
	ManagementFee    *string          `json:"managementFee,omitempty"`
	FrontExitLoad    *string          `json:"frontExitLoad,omitempty"`
	EsgPolicy        *string          `json:"esgPolicy,omitempty"`
	Notes            *string          `json:"notes,omitempty"`
}

// ManagerAggregate is the per-manager reduction of a fund set.
// AverageOneYearReturn is nil iff no member fund reports a one-year return.
type ManagerAggregate struct {
	Manager              string           `json:"manager"`
	TotalAumBn           decimal.Decimal  `json:"totalAumBn"`
	AverageOneYearReturn *decimal.Decimal `json:"averageOneYearReturn"`
	FundCount            int              `json:"fundCount"`
}

// PerformancePoint is the scatter projection of a fund that reports both a
// one-year return and a three-year CAGR. AUM defaults to zero when missing.
type PerformancePoint struct {
	Fund          string          `json:"fund"`
	Manager       *string         `json:"manager,omitempty"`
	OneYearReturn decimal.Decimal `json:"oneYearReturn"`
	ThreeYearCagr decimal.Decimal `json:"threeYearCagr"`
	CurrentAumBn  decimal.Decimal `json:"currentAumBn"`
}
