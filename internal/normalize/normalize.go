// Package normalize converts raw spreadsheet cell text into typed optional
// values. The source feeds are manually maintained sheets with inconsistent
// formatting, so every function here is total: malformed input degrades to
// nil instead of an error, and one bad cell never aborts a batch.
package normalize

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	isoDateRe    = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	dmyDateRe    = regexp.MustCompile(`^(\d{1,2})[/.\-](\d{1,2})[/.\-](\d{2,4})$`)
	currencyRe   = regexp.MustCompile(`(?i)TZS`)
	parenRe      = regexp.MustCompile(`^\((.*)\)$`)
	numberStrip  = strings.NewReplacer(",", "", " ", "", "\t", "", "\u00a0", "")
	accountStrip = strings.NewReplacer(",", "", "_", "", " ", "", "\t", "", "\u00a0", "")
)

// dateLayouts are tried in order by the general-purpose date fallback.
var dateLayouts = []string{
	"2006-01-02",
	"2006/01/02",
	"2 January 2006",
	"2 Jan 2006",
	"January 2, 2006",
	"Jan 2, 2006",
	time.RFC3339,
}

// timestampLayouts are tried in order by ParseTimestamp.
var timestampLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"02/01/2006 15:04:05",
	"1/2/2006 15:04:05",
	time.RFC1123,
}

// Sanitize trims the cell and returns nil for blank input.
func Sanitize(text string) *string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

// ParseNumber parses a grouped decimal number ("1,234.5", "-7 000") into a
// decimal. Returns nil for blank or unparseable input.
func ParseNumber(text string) *decimal.Decimal {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	cleaned := numberStrip.Replace(trimmed)
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// ParsePercent parses a percentage cell ("7.5%") into its numeric percentage
// value (7.5), not a fraction. Returns nil for blank or unparseable input.
func ParsePercent(text string) *decimal.Decimal {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	return ParseNumber(strings.ReplaceAll(trimmed, "%", ""))
}

// ParseAccountingNumber parses ledger-style cells: a TZS currency marker is
// stripped, grouping separators (comma, underscore, space) are removed, and a
// parenthesized value "(123)" is read as -123.
func ParseAccountingNumber(text string) *decimal.Decimal {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	cleaned := currencyRe.ReplaceAllString(trimmed, "")
	cleaned = accountStrip.Replace(cleaned)
	cleaned = parenRe.ReplaceAllString(cleaned, "-$1")
	if cleaned == "" {
		return nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return nil
	}
	return &d
}

// ParseYear parses a launch-year cell, truncating decimals and accepting only
// plausible years (1900..2100).
func ParseYear(text string) *int {
	d := ParseNumber(text)
	if d == nil {
		return nil
	}
	year := int(d.IntPart())
	if year < 1900 || year > 2100 {
		return nil
	}
	return &year
}

// ParseCalendarDate normalizes a date cell to canonical ISO YYYY-MM-DD.
//
// Already-ISO input passes through unchanged. Slash/dot/dash-delimited d/m/y
// shapes are disambiguated by a simple heuristic: a first component above 12
// (with a second at or below 12) must be the day; otherwise the first
// component is taken as the month. Two-digit years are expanded by prefixing
// "20". Anything else falls through to a set of known layouts. Returns nil
// when nothing parses.
func ParseCalendarDate(text string) *string {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}

	if isoDateRe.MatchString(trimmed) {
		return &trimmed
	}

	if m := dmyDateRe.FindStringSubmatch(trimmed); m != nil {
		first, _ := strconv.Atoi(m[1])
		second, _ := strconv.Atoi(m[2])

		month, day := first, second
		if first > 12 && second <= 12 {
			month, day = second, first
		}

		yearRaw := m[3]
		if len(yearRaw) == 2 {
			yearRaw = "20" + yearRaw
		}
		year, _ := strconv.Atoi(yearRaw)
		iso := fmt.Sprintf("%04d-%02d-%02d", year, month, day)
		return &iso
	}

	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			iso := t.UTC().Format("2006-01-02")
			return &iso
		}
	}
	return nil
}

// ParseTimestamp parses a date-time cell into a UTC instant. Returns nil on
// failure.
func ParseTimestamp(text string) *time.Time {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			utc := t.UTC()
			return &utc
		}
	}
	return nil
}
