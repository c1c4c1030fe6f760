package dashboard

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrNotFound indicates that no stored dashboard run matched the request.
var ErrNotFound = errors.New("dashboard run not found")

// StoredRun is a persisted dashboard pipeline run.
type StoredRun struct {
	ID        int             `json:"id"`
	RunDate   time.Time       `json:"runDate"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
}

// Repository defines persistent storage for dashboard runs.
type Repository interface {
	Save(ctx context.Context, date time.Time, data json.RawMessage) error
	GetLatest(ctx context.Context) (*StoredRun, error)
	GetByDate(ctx context.Context, date time.Time) (*StoredRun, error)
	List(ctx context.Context, limit int) ([]StoredRun, error)
}

// PgRepository implements Repository with PostgreSQL.
type PgRepository struct {
	pool *pgxpool.Pool
}

// NewPgRepository creates a PostgreSQL dashboard-run repository.
func NewPgRepository(pool *pgxpool.Pool) *PgRepository {
	return &PgRepository{pool: pool}
}

// Save upserts the run for a date. Re-running a day overwrites its payload.
func (r *PgRepository) Save(ctx context.Context, date time.Time, data json.RawMessage) error {
	_, err := r.pool.Exec(ctx,
		`INSERT INTO dashboard_runs (run_date, data)
		 VALUES ($1, $2::jsonb)
		 ON CONFLICT (run_date)
		 DO UPDATE SET data = $2::jsonb`,
		date, data)
	if err != nil {
		return fmt.Errorf("saving dashboard run: %w", err)
	}
	return nil
}

func (r *PgRepository) GetLatest(ctx context.Context) (*StoredRun, error) {
	var run StoredRun
	err := r.pool.QueryRow(ctx,
		`SELECT id, run_date, data, created_at
		 FROM dashboard_runs
		 ORDER BY run_date DESC
		 LIMIT 1`).Scan(&run.ID, &run.RunDate, &run.Data, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting latest dashboard run: %w", err)
	}
	return &run, nil
}

func (r *PgRepository) GetByDate(ctx context.Context, date time.Time) (*StoredRun, error) {
	var run StoredRun
	err := r.pool.QueryRow(ctx,
		`SELECT id, run_date, data, created_at
		 FROM dashboard_runs
		 WHERE run_date = $1`, date).Scan(&run.ID, &run.RunDate, &run.Data, &run.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("getting dashboard run by date: %w", err)
	}
	return &run, nil
}

func (r *PgRepository) List(ctx context.Context, limit int) ([]StoredRun, error) {
	if limit <= 0 {
		limit = 30
	}

	rows, err := r.pool.Query(ctx,
		`SELECT id, run_date, data, created_at
		 FROM dashboard_runs
		 ORDER BY run_date DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing dashboard runs: %w", err)
	}
	defer rows.Close()

	var runs []StoredRun
	for rows.Next() {
		var run StoredRun
		if err := rows.Scan(&run.ID, &run.RunDate, &run.Data, &run.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning dashboard run: %w", err)
		}
		runs = append(runs, run)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating dashboard runs: %w", err)
	}
	return runs, nil
}
