package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// DefaultCurrency is the label appended to formatted amounts.
const DefaultCurrency = "FCFA"

// ParseAmount accepts "1500", "1500.50", "1500,50" and "1,500.50". A comma
// is the decimal separator only when the input has no dot; otherwise commas
// are thousands separators.
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.Replace(s, ",", ".", 1)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidAmount, s)
	}
	return d, nil
}

// FormatAmount renders an amount with two decimals, e.g. "1500.00 FCFA".
func FormatAmount(d decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	return d.StringFixed(2) + " " + currency
}

// FormatAmountCompact drops the decimals for whole amounts, e.g. "1500 FCFA".
func FormatAmountCompact(d decimal.Decimal, currency string) string {
	if currency == "" {
		currency = DefaultCurrency
	}
	if d.Equal(d.Truncate(0)) {
		return d.StringFixed(0) + " " + currency
	}
	return d.StringFixed(2) + " " + currency
}
