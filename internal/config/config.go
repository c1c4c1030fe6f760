package config

import (
	"log/slog"
	"os"
	"strconv"
	"time"
)

// Default feed locations: the published sheets the dashboard has always read.
const (
	defaultFundsCSVURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vShsrgZoT3OwRgNwBm9NHLKZ5JnEURvir5A_guJRw07aDlIDRwYLOG0DJZRjZQXEBqkdLCaf7ItjYEO/pub?gid=0&single=true&output=csv"
	defaultNavSheetURL = "https://docs.google.com/spreadsheets/d/e/2PACX-1vQIofEtKwOzMHLpimKZtaiSME-ZttNVEwpP0fuvoV8pQ0s7nKWlZI66LfBVYiR_60g-8rJcEWOP2Foo/pub"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	FundsCSVURL       string
	NavSheetBaseURL   string
	LatestCSVURL      string
	CataloguePath     string
	DatabaseURL       string
	HTTPPort          string
	AdminAPIKey       string
	FetchTimeout      time.Duration
	FetchConcurrency  int
	NavFailFast       bool
	RefreshInterval   time.Duration
	SheetsID          string
	SheetsCredentials string
	XLSXOutputPath    string
}

// Load reads configuration from environment variables with sensible defaults.
// LATEST_FUNDS_CSV_URL deliberately has no default: the latest-snapshot
// pipeline treats an unset address as a configuration error, not an empty feed.
func Load() Config {
	return Config{
		FundsCSVURL:       envOrDefault("FUNDS_CSV_URL", defaultFundsCSVURL),
		NavSheetBaseURL:   envOrDefault("NAV_SHEET_BASE_URL", defaultNavSheetURL),
		LatestCSVURL:      envOrDefault("LATEST_FUNDS_CSV_URL", ""),
		CataloguePath:     envOrDefault("NAV_CATALOGUE_PATH", ""),
		DatabaseURL:       envOrDefaultWarn("DATABASE_URL", ""),
		HTTPPort:          envOrDefault("HTTP_PORT", "8080"),
		AdminAPIKey:       envOrDefault("ADMIN_API_KEY", ""),
		FetchTimeout:      envOrDefaultDuration("FETCH_TIMEOUT", 30*time.Second),
		FetchConcurrency:  envOrDefaultInt("FETCH_CONCURRENCY", 6),
		NavFailFast:       envOrDefaultBool("NAV_FAIL_FAST", true),
		RefreshInterval:   envOrDefaultDuration("REFRESH_INTERVAL", 1*time.Hour),
		SheetsID:          envOrDefault("SHEETS_SPREADSHEET_ID", ""),
		SheetsCredentials: envOrDefault("SHEETS_CREDENTIALS_JSON", ""),
		XLSXOutputPath:    envOrDefault("XLSX_OUTPUT_PATH", "navstat_report.xlsx"),
	}
}

func envOrDefault(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envOrDefaultWarn(key, defaultVal string) string {
	v := envOrDefault(key, defaultVal)
	if v == "" {
		slog.Warn("required env var not set", "key", key)
	}
	return v
}

func envOrDefaultInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			slog.Warn("invalid integer env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return n
	}
	return defaultVal
}

func envOrDefaultBool(key string, defaultVal bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			slog.Warn("invalid boolean env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return b
	}
	return defaultVal
}

func envOrDefaultDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			slog.Warn("invalid duration env var, using default", "key", key, "value", v, "default", defaultVal)
			return defaultVal
		}
		return d
	}
	return defaultVal
}
