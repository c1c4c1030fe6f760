package dashboard

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/tzcis/navstat/internal/domain"
)

type stubFunds struct {
	funds []domain.FundRecord
	err   error
}

func (s *stubFunds) FetchFunds(context.Context) ([]domain.FundRecord, error) {
	return s.funds, s.err
}

type stubSeries struct {
	series   []domain.NavSeries
	warnings []string
	err      error
}

func (s *stubSeries) BuildSeries(context.Context) ([]domain.NavSeries, []string, error) {
	return s.series, s.warnings, s.err
}

type stubLatest struct {
	snaps []domain.LatestFundSnapshot
	err   error
}

func (s *stubLatest) FetchLatest(context.Context) ([]domain.LatestFundSnapshot, error) {
	return s.snaps, s.err
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func str(s string) *string { return &s }

func TestBuildComposesAllProjections(t *testing.T) {
	now := time.Date(2024, 5, 10, 9, 0, 0, 0, time.UTC)

	funds := &stubFunds{funds: []domain.FundRecord{
		{Fund: "Umoja", Manager: str("UTT AMIS"), CurrentAumBn: dec("30"), OneYearReturn: dec("8"), ThreeYearCagr: dec("20")},
		{Fund: "Wekeza", Manager: str("UTT AMIS"), CurrentAumBn: dec("10"), OneYearReturn: dec("6"), ThreeYearCagr: dec("15")},
	}}
	series := &stubSeries{
		series: []domain.NavSeries{{
			FundID: "utt.umoja",
			Label:  "Umoja",
			Points: []domain.NavPoint{
				{FundID: "utt.umoja", Date: "2024-05-08", NavPerUnit: dec("100")},
				{FundID: "utt.umoja", Date: "2024-05-09", NavPerUnit: dec("102"), SalePrice: dec("103")},
			},
		}},
		warnings: []string{"nav series utt.bond skipped: boom"},
	}
	latest := &stubLatest{snaps: []domain.LatestFundSnapshot{
		{FundID: "utt.umoja", NavTotal: dec("2000000000"), NavPerUnit: dec("102")},
	}}

	data, err := NewBuilder(funds, series, latest).Build(context.Background(), now)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}

	if len(data.Funds) != 2 {
		t.Errorf("Funds = %d, want 2", len(data.Funds))
	}
	if len(data.Managers) != 1 || data.Managers[0].Manager != "UTT AMIS" {
		t.Errorf("Managers = %+v", data.Managers)
	}
	if len(data.Series) != 1 {
		t.Fatalf("Series = %d, want 1", len(data.Series))
	}

	m, ok := data.Metrics["utt.umoja"]
	if !ok {
		t.Fatal("metrics missing for utt.umoja")
	}
	if m.OneDay == nil || !m.OneDay.Equal(decimal.RequireFromString("0.02")) {
		t.Errorf("OneDay = %v, want 0.02", m.OneDay)
	}

	if len(data.NavSnapshots) != 1 || data.NavSnapshots[0].LastUpdated != "2024-05-09" {
		t.Errorf("NavSnapshots = %+v", data.NavSnapshots)
	}
	if len(data.SpreadRows) != 1 {
		t.Errorf("SpreadRows = %d, want 1 (sale price present)", len(data.SpreadRows))
	}
	if len(data.LatestSnapshots) != 1 {
		t.Errorf("LatestSnapshots = %d, want 1", len(data.LatestSnapshots))
	}
	if data.Summary.TotalNavBn == nil || !data.Summary.TotalNavBn.Equal(decimal.RequireFromString("2")) {
		t.Errorf("Summary.TotalNavBn = %v, want 2", data.Summary.TotalNavBn)
	}
	if len(data.PerformancePoints) != 2 {
		t.Errorf("PerformancePoints = %d, want 2", len(data.PerformancePoints))
	}
	if len(data.Warnings) != 1 {
		t.Errorf("Warnings = %v, want the partial-mode warning carried through", data.Warnings)
	}
	if !data.GeneratedAt.Equal(now) {
		t.Errorf("GeneratedAt = %v, want %v", data.GeneratedAt, now)
	}
}

func TestBuildFailsWhenAnySourceFails(t *testing.T) {
	srcErr := errors.New("feed down")

	tests := []struct {
		name    string
		builder *Builder
	}{
		{"funds fail", NewBuilder(&stubFunds{err: srcErr}, &stubSeries{}, &stubLatest{})},
		{"series fail", NewBuilder(&stubFunds{}, &stubSeries{err: srcErr}, &stubLatest{})},
		{"latest fail", NewBuilder(&stubFunds{}, &stubSeries{}, &stubLatest{err: srcErr})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.builder.Build(context.Background(), time.Now())
			if !errors.Is(err, srcErr) {
				t.Fatalf("err = %v, want source error", err)
			}
		})
	}
}

func TestNewBuilderNilSource(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic for nil source")
		}
	}()
	NewBuilder(nil, &stubSeries{}, &stubLatest{})
}
