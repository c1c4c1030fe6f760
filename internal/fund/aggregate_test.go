package fund

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

func fundRec(manager string, aum, ret *decimal.Decimal) domain.FundRecord {
	rec := domain.FundRecord{Fund: "f", CurrentAumBn: aum, OneYearReturn: ret}
	if manager != "" {
		rec.Manager = &manager
	}
	return rec
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestAggregateByManager(t *testing.T) {
	funds := []domain.FundRecord{
		fundRec("A", dec("10"), dec("5")),
		fundRec("A", dec("20"), nil),
		fundRec("B", dec("5"), dec("10")),
	}

	got := AggregateByManager(funds)

	if len(got) != 2 {
		t.Fatalf("aggregates = %d, want 2", len(got))
	}
	if got[0].Manager != "A" || got[1].Manager != "B" {
		t.Fatalf("order = [%s, %s], want [A, B]", got[0].Manager, got[1].Manager)
	}

	a := got[0]
	if !a.TotalAumBn.Equal(decimal.RequireFromString("30")) {
		t.Errorf("A.TotalAumBn = %s, want 30", a.TotalAumBn)
	}
	if a.FundCount != 2 {
		t.Errorf("A.FundCount = %d, want 2", a.FundCount)
	}
	if a.AverageOneYearReturn == nil || !a.AverageOneYearReturn.Equal(decimal.RequireFromString("5")) {
		t.Errorf("A.AverageOneYearReturn = %v, want 5 (nil return excluded from mean)", a.AverageOneYearReturn)
	}

	b := got[1]
	if !b.TotalAumBn.Equal(decimal.RequireFromString("5")) || b.FundCount != 1 {
		t.Errorf("B = %+v", b)
	}
	if b.AverageOneYearReturn == nil || !b.AverageOneYearReturn.Equal(decimal.RequireFromString("10")) {
		t.Errorf("B.AverageOneYearReturn = %v, want 10", b.AverageOneYearReturn)
	}
}

func TestAggregateByManagerSkipsUnmanagedFunds(t *testing.T) {
	funds := []domain.FundRecord{
		fundRec("", dec("100"), dec("1")),
		fundRec("A", dec("10"), nil),
	}

	got := AggregateByManager(funds)

	if len(got) != 1 {
		t.Fatalf("aggregates = %d, want 1 (no \"unknown\" group)", len(got))
	}
	if got[0].Manager != "A" {
		t.Errorf("manager = %q", got[0].Manager)
	}
}

func TestAggregateByManagerNoReportedReturns(t *testing.T) {
	funds := []domain.FundRecord{
		fundRec("A", dec("10"), nil),
		fundRec("A", nil, nil),
	}

	got := AggregateByManager(funds)

	if len(got) != 1 {
		t.Fatalf("aggregates = %d, want 1", len(got))
	}
	if got[0].AverageOneYearReturn != nil {
		t.Errorf("AverageOneYearReturn = %v, want nil when no fund reports", got[0].AverageOneYearReturn)
	}
	if !got[0].TotalAumBn.Equal(decimal.RequireFromString("10")) {
		t.Errorf("TotalAumBn = %s, want 10 (nil AUM sums as zero)", got[0].TotalAumBn)
	}
	if got[0].FundCount != 2 {
		t.Errorf("FundCount = %d, want 2", got[0].FundCount)
	}
}

func TestAggregateByManagerStableTieBreak(t *testing.T) {
	funds := []domain.FundRecord{
		fundRec("First", dec("10"), nil),
		fundRec("Second", dec("10"), nil),
		fundRec("Third", dec("20"), nil),
	}

	got := AggregateByManager(funds)

	if len(got) != 3 {
		t.Fatalf("aggregates = %d, want 3", len(got))
	}
	if got[0].Manager != "Third" || got[1].Manager != "First" || got[2].Manager != "Second" {
		t.Errorf("order = [%s, %s, %s], want [Third, First, Second]",
			got[0].Manager, got[1].Manager, got[2].Manager)
	}
}

func TestPerformancePoints(t *testing.T) {
	withBoth := fundRec("A", dec("10"), dec("5"))
	withBoth.ThreeYearCagr = dec("7")
	missingCagr := fundRec("B", nil, dec("3"))

	got := PerformancePoints([]domain.FundRecord{withBoth, missingCagr})

	if len(got) != 1 {
		t.Fatalf("points = %d, want 1", len(got))
	}
	if !got[0].OneYearReturn.Equal(decimal.RequireFromString("5")) ||
		!got[0].ThreeYearCagr.Equal(decimal.RequireFromString("7")) {
		t.Errorf("point = %+v", got[0])
	}
}
