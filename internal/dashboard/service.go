package dashboard

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/tzcis/navstat/internal/domain"
)

// DataBuilder runs one pipeline pass and assembles the result.
type DataBuilder interface {
	Build(ctx context.Context, now time.Time) (domain.DashboardData, error)
}

// Service manages dashboard generation and retrieval.
type Service struct {
	builder DataBuilder
	repo    Repository
}

// NewService creates a dashboard Service.
func NewService(builder DataBuilder, repo Repository) *Service {
	if builder == nil {
		panic("dashboard.NewService: builder is nil")
	}
	if repo == nil {
		panic("dashboard.NewService: repo is nil")
	}
	return &Service{builder: builder, repo: repo}
}

// Generate runs the pipeline and stores the result under the given date.
func (s *Service) Generate(ctx context.Context, date time.Time) (domain.DashboardData, error) {
	data, err := s.builder.Build(ctx, time.Now())
	if err != nil {
		return domain.DashboardData{}, fmt.Errorf("building dashboard: %w", err)
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return domain.DashboardData{}, fmt.Errorf("marshaling dashboard: %w", err)
	}

	if err := s.repo.Save(ctx, date, payload); err != nil {
		return domain.DashboardData{}, fmt.Errorf("saving dashboard: %w", err)
	}

	return data, nil
}

// GetLatest retrieves the most recent stored run.
func (s *Service) GetLatest(ctx context.Context) (*StoredRun, error) {
	return s.repo.GetLatest(ctx)
}

// GetByDate retrieves the stored run for a specific date.
func (s *Service) GetByDate(ctx context.Context, date time.Time) (*StoredRun, error) {
	return s.repo.GetByDate(ctx, date)
}

// List retrieves recent stored runs, newest first.
func (s *Service) List(ctx context.Context, limit int) ([]StoredRun, error) {
	return s.repo.List(ctx, limit)
}
