// Package api exposes the stored dashboard runs over HTTP.
package api

import (
	"crypto/subtle"
	"net/http"
	"strings"
	"time"

	"github.com/tzcis/navstat/internal/dashboard"
)

// NewServer creates an HTTP server with all routes configured.
func NewServer(port string, dashboards *dashboard.Service, adminAPIKey string) *http.Server {
	handler := NewHandler(dashboards)

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/v1/dashboard/latest", handler.GetLatestDashboard)
	mux.HandleFunc("GET /api/v1/dashboard/{date}", handler.GetDashboardByDate)
	mux.HandleFunc("GET /api/v1/dashboards", handler.ListDashboards)

	refreshHandler := http.HandlerFunc(handler.Refresh)
	if adminAPIKey != "" {
		mux.Handle("POST /api/v1/refresh", requireAuth(adminAPIKey, refreshHandler))
	} else {
		mux.Handle("POST /api/v1/refresh", refreshHandler)
	}

	return &http.Server{
		Addr:         ":" + port,
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 120 * time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

func requireAuth(apiKey string, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth := r.Header.Get("Authorization")
		token := strings.TrimPrefix(auth, "Bearer ")
		if !strings.HasPrefix(auth, "Bearer ") || subtle.ConstantTimeCompare([]byte(token), []byte(apiKey)) != 1 {
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}
