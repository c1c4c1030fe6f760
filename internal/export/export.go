// Package export renders a dashboard run into spreadsheet form, either a
// Google Sheets document or a local XLSX workbook.
package export

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
	"github.com/tzcis/navstat/internal/snapshot"
)

// Tab names shared by all writers.
const (
	TabFunds    = "FUNDS"
	TabManagers = "MANAGERS"
	TabLatest   = "NAV_LATEST"
)

// Workbook holds the cell grids for the three export tabs.
type Workbook struct {
	Funds    [][]any
	Managers [][]any
	Latest   [][]any
}

// SheetWriter writes a workbook to a spreadsheet destination.
type SheetWriter interface {
	Write(ctx context.Context, wb Workbook) error
}

// Service renders dashboard data and delegates writing to a SheetWriter.
// Implements worker.AfterRefreshHook.
type Service struct {
	writer SheetWriter
}

// NewService creates an export Service.
func NewService(writer SheetWriter) *Service {
	if writer == nil {
		panic("export.NewService: writer is nil")
	}
	return &Service{writer: writer}
}

// Export renders the run into the three tabs and writes them out.
func (s *Service) Export(ctx context.Context, data domain.DashboardData) error {
	return s.writer.Write(ctx, Workbook{
		Funds:    buildFundsSheet(data.Funds),
		Managers: buildManagersSheet(data.Managers),
		Latest:   buildLatestSheet(data.LatestSnapshots, data.GeneratedAt),
	})
}

// buildFundsSheet builds the FUNDS tab.
// Columns: Fund | Manager | Structure | AUM (bn) | NAV/unit | 1Y % | 3Y CAGR % | Launched
func buildFundsSheet(funds []domain.FundRecord) [][]any {
	data := make([][]any, 0, len(funds)+1)
	data = append(data, []any{
		"Fund", "Manager", "Structure", "AUM (bn)", "NAV/unit", "1Y %", "3Y CAGR %", "Launched",
	})

	for _, f := range funds {
		data = append(data, []any{
			f.Fund,
			ptrString(f.Manager),
			ptrString(f.Structure),
			ptrFloat(f.CurrentAumBn),
			ptrFloat(f.NavPerUnit),
			ptrFloat(f.OneYearReturn),
			ptrFloat(f.ThreeYearCagr),
			ptrInt(f.LaunchYear),
		})
	}

	return data
}

// buildManagersSheet builds the MANAGERS tab.
// Columns: Manager | Funds | Total AUM (bn) | Avg 1Y %
func buildManagersSheet(managers []domain.ManagerAggregate) [][]any {
	data := [][]any{
		{"Manager", "Funds", "Total AUM (bn)", "Avg 1Y %"},
	}

	for _, m := range managers {
		data = append(data, []any{
			m.Manager,
			m.FundCount,
			toFloat(m.TotalAumBn),
			ptrFloat(m.AverageOneYearReturn),
		})
	}

	return data
}

// buildLatestSheet builds the NAV_LATEST tab.
// Columns: Fund | Date | NAV total | NAV/unit | Sale | Repurchase | Spread | Freshness
func buildLatestSheet(snapshots []domain.LatestFundSnapshot, generatedAt time.Time) [][]any {
	data := make([][]any, 0, len(snapshots)+1)
	data = append(data, []any{
		"Fund", "Date", "NAV total", "NAV/unit", "Sale", "Repurchase", "Spread", "Freshness",
	})

	for _, s := range snapshots {
		data = append(data, []any{
			s.FundID,
			ptrString(s.Date),
			ptrFloat(s.NavTotal),
			ptrFloat(s.NavPerUnit),
			ptrFloat(s.SalePrice),
			ptrFloat(s.RepurchasePrice),
			ptrFloat(snapshot.Spread(s.SalePrice, s.RepurchasePrice, s.NavPerUnit)),
			snapshot.Classify(s.Date, s.CollectedAt, generatedAt).Tier,
		})
	}

	return data
}

func toFloat(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

func ptrFloat(d *decimal.Decimal) any {
	if d == nil {
		return nil
	}
	f, _ := d.Float64()
	return f
}

func ptrString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func ptrInt(n *int) any {
	if n == nil {
		return nil
	}
	return *n
}
