package export

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func str(s string) *string { return &s }

func TestBuildFundsSheet(t *testing.T) {
	year := 2016
	funds := []domain.FundRecord{
		{
			Fund:          "Umoja",
			Manager:       str("UTT AMIS"),
			Structure:     str("Open-ended"),
			CurrentAumBn:  dec("30.5"),
			NavPerUnit:    dec("850.12"),
			OneYearReturn: dec("8.2"),
			ThreeYearCagr: dec("6.1"),
			LaunchYear:    &year,
		},
		{Fund: "Sparse"},
	}

	grid := buildFundsSheet(funds)
	if len(grid) != 3 {
		t.Fatalf("rows = %d, want header + 2", len(grid))
	}
	if grid[0][0] != "Fund" || len(grid[0]) != 8 {
		t.Errorf("header = %v", grid[0])
	}
	if grid[1][0] != "Umoja" || grid[1][3] != 30.5 || grid[1][7] != 2016 {
		t.Errorf("row = %v", grid[1])
	}
	// Missing optionals stay nil so spreadsheet cells render blank.
	if grid[2][1] != nil || grid[2][3] != nil {
		t.Errorf("sparse row = %v, want nil cells", grid[2])
	}
}

func TestBuildManagersSheet(t *testing.T) {
	avg := decimal.RequireFromString("7.5")
	managers := []domain.ManagerAggregate{
		{Manager: "UTT AMIS", TotalAumBn: decimal.RequireFromString("40"), AverageOneYearReturn: &avg, FundCount: 3},
	}

	grid := buildManagersSheet(managers)
	if len(grid) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(grid))
	}
	if grid[1][0] != "UTT AMIS" || grid[1][1] != 3 || grid[1][2] != 40.0 || grid[1][3] != 7.5 {
		t.Errorf("row = %v", grid[1])
	}
}

func TestBuildLatestSheet(t *testing.T) {
	now := time.Date(2024, 5, 10, 0, 0, 0, 0, time.UTC)
	fresh := now.AddDate(0, 0, -1)

	snapshots := []domain.LatestFundSnapshot{
		{
			FundID:          "utt.umoja",
			Date:            str("2024-05-09"),
			NavPerUnit:      dec("100"),
			SalePrice:       dec("102"),
			RepurchasePrice: dec("100"),
			CollectedAt:     &fresh,
		},
	}

	grid := buildLatestSheet(snapshots, now)
	if len(grid) != 2 {
		t.Fatalf("rows = %d, want header + 1", len(grid))
	}
	if grid[1][0] != "utt.umoja" {
		t.Errorf("fund = %v", grid[1][0])
	}
	if grid[1][6] != 2.0 {
		t.Errorf("spread = %v, want 2", grid[1][6])
	}
	if grid[1][7] != domain.TierFresh {
		t.Errorf("freshness = %v, want %s", grid[1][7], domain.TierFresh)
	}
}

type captureWriter struct {
	wb Workbook
}

func (c *captureWriter) Write(_ context.Context, wb Workbook) error {
	c.wb = wb
	return nil
}

func TestExportRendersAllTabs(t *testing.T) {
	writer := &captureWriter{}
	svc := NewService(writer)

	data := domain.DashboardData{
		Funds:           []domain.FundRecord{{Fund: "Umoja"}},
		Managers:        []domain.ManagerAggregate{{Manager: "UTT AMIS"}},
		LatestSnapshots: []domain.LatestFundSnapshot{{FundID: "utt.umoja"}},
		GeneratedAt:     time.Now().UTC(),
	}

	if err := svc.Export(context.Background(), data); err != nil {
		t.Fatalf("Export: %v", err)
	}
	if len(writer.wb.Funds) != 2 || len(writer.wb.Managers) != 2 || len(writer.wb.Latest) != 2 {
		t.Errorf("workbook = %d/%d/%d rows, want 2 each",
			len(writer.wb.Funds), len(writer.wb.Managers), len(writer.wb.Latest))
	}
}
