package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// NavPoint is one fund's reported NAV state on one calendar date.
// Date is a canonical ISO YYYY-MM-DD string, so lexicographic order is
// chronological order. Immutable once constructed.
type NavPoint struct {
	FundID           string           `json:"fundId"`
	Date             string           `json:"date"`
	NavTotal         *decimal.Decimal `json:"navTotal"`
	UnitsOutstanding *decimal.Decimal `json:"unitsOutstanding"`
	NavPerUnit       *decimal.Decimal `json:"navPerUnit"`
	SalePrice        *decimal.Decimal `json:"salePrice"`
	RepurchasePrice  *decimal.Decimal `json:"repurchasePrice"`
	SourceURL        *string          `json:"sourceUrl,omitempty"`
	CollectedAt      *time.Time       `json:"collectedAt,omitempty"`
}

// NavSeries is the full ordered NAV history of one catalogue fund.
// Points are sorted by date ascending; duplicate dates from the source are
// kept as-is. Every point carries the series' fund id.
type NavSeries struct {
	FundID string     `json:"fundId"`
	Label  string     `json:"label"`
	Color  string     `json:"color"`
	Points []NavPoint `json:"points"`
}

// NavSnapshot is the most recent usable state derived from a NavSeries:
// the latest point with at least one of nav total, NAV per unit, sale price
// or repurchase price present.
type NavSnapshot struct {
	FundID          string           `json:"fundId"`
	Label           string           `json:"label"`
	NavTotal        *decimal.Decimal `json:"navTotal"`
	NavTotalBn      *decimal.Decimal `json:"navTotalBn"`
	NavPerUnit      *decimal.Decimal `json:"navPerUnit"`
	SalePrice       *decimal.Decimal `json:"salePrice"`
	RepurchasePrice *decimal.Decimal `json:"repurchasePrice"`
	LastUpdated     string           `json:"lastUpdated"`
	CollectedAt     *time.Time       `json:"collectedAt,omitempty"`
}

// LatestFundSnapshot is one row of the independently-sourced latest-state
// feed. It is not derived from a NavSeries.
type LatestFundSnapshot struct {
	FundID           string           `json:"fundId"`
	Date             *string          `json:"date"`
	NavTotal         *decimal.Decimal `json:"navTotal"`
	UnitsOutstanding *decimal.Decimal `json:"unitsOutstanding"`
	NavPerUnit       *decimal.Decimal `json:"navPerUnit"`
	SalePrice        *decimal.Decimal `json:"salePrice"`
	RepurchasePrice  *decimal.Decimal `json:"repurchasePrice"`
	CollectedAt      *time.Time       `json:"collectedAt"`
}

// SeriesMetrics holds the derived statistics of one NAV series.
// All values are fractions (0.01 == 1%); MaxDrawdown is ≤ 0 when present.
type SeriesMetrics struct {
	OneDay      *decimal.Decimal `json:"oneDay"`
	MonthToDate *decimal.Decimal `json:"monthToDate"`
	YearToDate  *decimal.Decimal `json:"yearToDate"`
	MaxDrawdown *decimal.Decimal `json:"maxDrawdown"`
}

// FreshnessTier buckets how recently a snapshot was reported.
type FreshnessTier string

const (
	TierFresh   FreshnessTier = "Fresh"
	TierRecent  FreshnessTier = "Recent"
	TierStale   FreshnessTier = "Needs update"
	TierUnknown FreshnessTier = "Unknown"
)

// Freshness describes the age of a snapshot relative to "now".
// Progress is a 0..100 display value where 100 means ten or more days old.
type Freshness struct {
	Tier     FreshnessTier `json:"tier"`
	Days     float64       `json:"days"`
	Progress float64       `json:"progress"`
}

// PriceSpreadRow is the sale/repurchase projection of a snapshot where at
// least one of the two prices is present.
type PriceSpreadRow struct {
	Label           string           `json:"label"`
	SalePrice       *decimal.Decimal `json:"salePrice"`
	RepurchasePrice *decimal.Decimal `json:"repurchasePrice"`
	NavPerUnit      *decimal.Decimal `json:"navPerUnit"`
}

// SnapshotSummary aggregates the latest-snapshot feed into headline figures.
type SnapshotSummary struct {
	TotalNavBn        *decimal.Decimal `json:"totalNavBn"`
	AverageNavPerUnit *decimal.Decimal `json:"averageNavPerUnit"`
	FreshCount        int              `json:"freshCount"`
	MedianSpread      *decimal.Decimal `json:"medianSpread"`
}

// DashboardData is the complete output of one pipeline run and the only
// contract exposed to consumers. It is never mutated after construction.
type DashboardData struct {
	Funds             []FundRecord             `json:"funds"`
	Managers          []ManagerAggregate       `json:"managers"`
	Series            []NavSeries              `json:"series"`
	Metrics           map[string]SeriesMetrics `json:"metrics"`
	NavSnapshots      []NavSnapshot            `json:"navSnapshots"`
	LatestSnapshots   []LatestFundSnapshot     `json:"latestSnapshots"`
	Summary           SnapshotSummary          `json:"summary"`
	PerformancePoints []PerformancePoint       `json:"performancePoints"`
	SpreadRows        []PriceSpreadRow         `json:"spreadRows"`
	Warnings          []string                 `json:"warnings,omitempty"`
	GeneratedAt       time.Time                `json:"generatedAt"`
}
