package model

import "github.com/shopspring/decimal"

// Default budget written on first run.
const (
	DefaultTotalBudget    = 500000
	DefaultAlertThreshold = 80.0
)

// Budget is the monthly spending ceiling and the usage percentage at which
// a warning is raised.
type Budget struct {
	TotalBudget    decimal.Decimal
	AlertThreshold float64
}

// DefaultBudget returns the budget used when none has been saved.
func DefaultBudget() Budget {
	return Budget{
		TotalBudget:    decimal.NewFromInt(DefaultTotalBudget),
		AlertThreshold: DefaultAlertThreshold,
	}
}

// Valid reports whether the budget satisfies its invariants.
func (b Budget) Valid() bool {
	return validateStruct(b.Input()) == nil
}

// Input returns the budget as an update request.
func (b Budget) Input() BudgetInput {
	return BudgetInput{TotalBudget: b.TotalBudget, AlertThreshold: b.AlertThreshold}
}

// BudgetInput is the unvalidated shape submitted when changing the budget.
type BudgetInput struct {
	TotalBudget    decimal.Decimal `json:"totalBudget" validate:"gt=0"`
	AlertThreshold float64         `json:"alertThreshold" validate:"gte=0,lte=100"`
}

// Validate checks the input, returning a *ValidationError on failure.
func (in BudgetInput) Validate() error {
	return validateStruct(in)
}

// ToBudget converts a validated input.
func (in BudgetInput) ToBudget() Budget {
	return Budget{TotalBudget: in.TotalBudget, AlertThreshold: in.AlertThreshold}
}
