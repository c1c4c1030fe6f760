package worker

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/tzcis/navstat/internal/domain"
)

type mockGenerator struct {
	callCount atomic.Int32
	err       error
}

func (m *mockGenerator) Generate(_ context.Context, _ time.Time) (domain.DashboardData, error) {
	m.callCount.Add(1)
	return domain.DashboardData{}, m.err
}

type mockHook struct {
	callCount atomic.Int32
}

func (m *mockHook) Export(_ context.Context, _ domain.DashboardData) error {
	m.callCount.Add(1)
	return nil
}

func TestRefreshWorkerRunsAndShutdown(t *testing.T) {
	mock := &mockGenerator{}
	w := NewRefreshWorker(mock, 50*time.Millisecond, nil)

	ctx, cancel := context.WithTimeout(context.Background(), 200*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if got := mock.callCount.Load(); got < 1 {
		t.Errorf("call count = %d, want >= 1", got)
	}
}

func TestRefreshWorkerRunsHookOnSuccess(t *testing.T) {
	gen := &mockGenerator{}
	hook := &mockHook{}
	w := NewRefreshWorker(gen, time.Hour, hook)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if hook.callCount.Load() < 1 {
		t.Error("hook was not called after successful refresh")
	}
}

func TestRefreshWorkerSkipsHookOnFailure(t *testing.T) {
	gen := &mockGenerator{err: errors.New("feed down")}
	hook := &mockHook{}
	w := NewRefreshWorker(gen, time.Hour, hook)

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	w.Run(ctx)

	if hook.callCount.Load() != 0 {
		t.Error("hook was called despite failed refresh")
	}
}
