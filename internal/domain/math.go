package domain

import "github.com/shopspring/decimal"

// Dec returns a pointer to d. Convenience for building optional values.
func Dec(d decimal.Decimal) *decimal.Decimal {
	return &d
}

// ZeroIfNil resolves an optional decimal to a value, treating nil as zero.
func ZeroIfNil(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}

// Ratio computes (current - previous) / previous. It returns nil when either
// side is missing or the denominator is zero.
func Ratio(current, previous *decimal.Decimal) *decimal.Decimal {
	if current == nil || previous == nil || previous.IsZero() {
		return nil
	}
	r := current.Sub(*previous).Div(*previous)
	return &r
}

// Str returns a pointer to s, or nil if s is empty.
func Str(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
