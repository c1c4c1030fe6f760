package metrics

import (
	"testing"

	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

func point(date, nav string) domain.NavPoint {
	p := domain.NavPoint{FundID: "f", Date: date}
	if nav != "" {
		d := decimal.RequireFromString(nav)
		p.NavPerUnit = &d
	}
	return p
}

func wantDec(t *testing.T, name string, got *decimal.Decimal, want string) {
	t.Helper()
	if want == "" {
		if got != nil {
			t.Errorf("%s = %s, want nil", name, got)
		}
		return
	}
	if got == nil {
		t.Fatalf("%s = nil, want %s", name, want)
	}
	if !got.Equal(decimal.RequireFromString(want)) {
		t.Errorf("%s = %s, want %s", name, got, want)
	}
}

func TestComputeOneDayReturn(t *testing.T) {
	points := []domain.NavPoint{
		point("2024-01-01", "100"),
		point("2024-01-02", "101"),
		point("2024-01-03", "102"),
	}

	m := Compute(points)
	// (102 - 101) / 101
	wantDec(t, "OneDay", m.OneDay, "0.0099009900990099")
}

func TestComputeSkipsNilNavPoints(t *testing.T) {
	points := []domain.NavPoint{
		point("2024-01-01", "100"),
		point("2024-01-02", ""),
		point("2024-01-03", "110"),
	}

	m := Compute(points)
	// prev metric-ready point is 2024-01-01, not the nil one
	wantDec(t, "OneDay", m.OneDay, "0.1")
}

func TestComputeTooFewPoints(t *testing.T) {
	m := Compute([]domain.NavPoint{point("2024-01-01", "100")})
	if m.OneDay != nil || m.MonthToDate != nil || m.YearToDate != nil || m.MaxDrawdown != nil {
		t.Errorf("metrics = %+v, want all nil for a single point", m)
	}

	m = Compute(nil)
	if m.OneDay != nil || m.MaxDrawdown != nil {
		t.Errorf("metrics = %+v, want all nil for empty input", m)
	}
}

func TestComputeZeroDenominator(t *testing.T) {
	points := []domain.NavPoint{
		point("2024-01-01", "0"),
		point("2024-01-02", "100"),
	}

	m := Compute(points)
	if m.OneDay != nil {
		t.Errorf("OneDay = %s, want nil for zero previous value", m.OneDay)
	}
}

func TestComputeMonthAndYearToDate(t *testing.T) {
	points := []domain.NavPoint{
		point("2023-12-29", "90"),
		point("2024-01-02", "100"),
		point("2024-02-01", "110"),
		point("2024-02-15", "121"),
	}

	m := Compute(points)
	// MTD anchor: first point in 2024-02 → 110; (121-110)/110 = 0.1
	wantDec(t, "MonthToDate", m.MonthToDate, "0.1")
	// YTD anchor: first point in 2024 → 100; (121-100)/100 = 0.21
	wantDec(t, "YearToDate", m.YearToDate, "0.21")
}

func TestMaxDrawdown(t *testing.T) {
	tests := []struct {
		name string
		navs []string
		want string
	}{
		{"spec example", []string{"100", "80", "120"}, "-0.2"},
		{"strictly increasing", []string{"100", "101", "102"}, "0"},
		{"flat", []string{"100", "100"}, "0"},
		{"deep late drawdown", []string{"100", "120", "60"}, "-0.5"},
		{"recovers after trough", []string{"100", "50", "100"}, "-0.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			points := make([]domain.NavPoint, len(tt.navs))
			for i, nav := range tt.navs {
				points[i] = point("2024-01-0"+string(rune('1'+i)), nav)
			}
			m := Compute(points)
			wantDec(t, "MaxDrawdown", m.MaxDrawdown, tt.want)
			if m.MaxDrawdown != nil && m.MaxDrawdown.GreaterThan(decimal.Zero) {
				t.Errorf("MaxDrawdown = %s, must never be positive", m.MaxDrawdown)
			}
		})
	}
}
