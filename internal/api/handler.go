package api

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/tzcis/navstat/internal/dashboard"
)

// Handler provides the dashboard HTTP endpoints.
type Handler struct {
	dashboards *dashboard.Service
}

// NewHandler creates an API handler.
func NewHandler(dashboards *dashboard.Service) *Handler {
	return &Handler{dashboards: dashboards}
}

// GetLatestDashboard handles GET /api/v1/dashboard/latest.
func (h *Handler) GetLatestDashboard(w http.ResponseWriter, r *http.Request) {
	run, err := h.dashboards.GetLatest(r.Context())
	if err != nil {
		if errors.Is(err, dashboard.ErrNotFound) {
			writeError(w, http.StatusNotFound, "no dashboard runs found")
			return
		}
		slog.Error("failed to get latest dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// GetDashboardByDate handles GET /api/v1/dashboard/{date}.
func (h *Handler) GetDashboardByDate(w http.ResponseWriter, r *http.Request) {
	dateStr := r.PathValue("date")
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid date format, expected YYYY-MM-DD")
		return
	}

	run, err := h.dashboards.GetByDate(r.Context(), date)
	if err != nil {
		if errors.Is(err, dashboard.ErrNotFound) {
			writeError(w, http.StatusNotFound, "dashboard run not found for date")
			return
		}
		slog.Error("failed to get dashboard by date", "date", dateStr, "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, run)
}

// ListDashboards handles GET /api/v1/dashboards.
func (h *Handler) ListDashboards(w http.ResponseWriter, r *http.Request) {
	const maxLimit = 365
	limit := 30
	if l := r.URL.Query().Get("limit"); l != "" {
		if n, err := strconv.Atoi(l); err == nil && n > 0 {
			limit = min(n, maxLimit)
		}
	}

	runs, err := h.dashboards.List(r.Context(), limit)
	if err != nil {
		slog.Error("failed to list dashboards", "error", err)
		writeError(w, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(w, http.StatusOK, runs)
}

// Refresh handles POST /api/v1/refresh.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	data, err := h.dashboards.Generate(r.Context(), time.Now().UTC().Truncate(24*time.Hour))
	if err != nil {
		slog.Error("failed to refresh dashboard", "error", err)
		writeError(w, http.StatusInternalServerError, "failed to refresh dashboard")
		return
	}
	writeJSON(w, http.StatusOK, data)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		slog.Error("failed to marshal JSON response", "error", err)
		http.Error(w, `{"error":"internal error"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := w.Write(data); err != nil {
		slog.Warn("failed to write HTTP response body", "error", err)
		return
	}
	_, _ = w.Write([]byte("\n"))
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
