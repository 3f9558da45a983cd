// Package service defines the interfaces shared between application layers.
package service

import (
	"context"
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
)

// KeyValueStore is the durable leaf store. Values are opaque bytes.
type KeyValueStore interface {
	// Save replaces the value stored under key.
	Save(ctx context.Context, key string, value []byte) error
	// Load returns the value under key and whether it exists.
	Load(ctx context.Context, key string) ([]byte, bool, error)
	Close() error
}

// ReportWriter publishes a monthly report to an external destination.
type ReportWriter interface {
	Write(ctx context.Context, report *Report) error
}

// Report is the month-to-date snapshot handed to exporters.
type Report struct {
	GeneratedAt  time.Time
	Period       DateRange
	Currency     string
	Budget       model.Budget
	MonthTotal   decimal.Decimal
	Remaining    decimal.Decimal
	Expenses     []model.Expense
	ByCategory   []CategorySummary
	UsagePercent float64
}

// DateRange represents a span of calendar days, both ends inclusive.
type DateRange struct {
	Start model.Date
	End   model.Date
}

// CategorySummary contains aggregated statistics for a category.
type CategorySummary struct {
	Category model.Category
	Amount   decimal.Decimal
	Count    int
}

// RetryOptions configures retry behavior for operations.
type RetryOptions struct {
	MaxAttempts  int
	InitialDelay time.Duration
	MaxDelay     time.Duration
	Multiplier   float64
}

// WithDefaults fills unset fields.
func (o RetryOptions) WithDefaults() RetryOptions {
	if o.MaxAttempts <= 0 {
		o.MaxAttempts = 3
	}
	if o.InitialDelay <= 0 {
		o.InitialDelay = 100 * time.Millisecond
	}
	if o.MaxDelay <= 0 {
		o.MaxDelay = 30 * time.Second
	}
	if o.Multiplier <= 0 {
		o.Multiplier = 2.0
	}
	return o
}
