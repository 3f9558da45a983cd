package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Record decoding errors.
var (
	ErrMissingID     = errors.New("missing id")
	ErrMissingTitle  = errors.New("missing title")
	ErrInvalidAmount = errors.New("invalid amount")
	ErrInvalidDate   = errors.New("invalid date")
)

// ExpenseRecord is the persisted and exported JSON shape of an Expense.
// Amounts travel as JSON numbers and dates as YYYY-MM-DD strings.
type ExpenseRecord struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Amount      json.Number `json:"amount"`
	Category    string      `json:"category"`
	Date        string      `json:"date"`
	Description string      `json:"description,omitempty"`
}

// ToRecord converts an expense to its wire shape.
func (e Expense) ToRecord() ExpenseRecord {
	return ExpenseRecord{
		ID:          e.ID,
		Title:       e.Title,
		Amount:      json.Number(e.Amount.String()),
		Category:    string(e.Category),
		Date:        e.Date.String(),
		Description: e.Description,
	}
}

// Expense checks the record's schema and converts it. Unknown categories
// are preserved verbatim.
func (r ExpenseRecord) Expense() (Expense, error) {
	if strings.TrimSpace(r.ID) == "" {
		return Expense{}, ErrMissingID
	}
	if strings.TrimSpace(r.Title) == "" {
		return Expense{}, ErrMissingTitle
	}
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %q", ErrInvalidAmount, r.Amount)
	}
	if !amount.IsPositive() {
		return Expense{}, fmt.Errorf("%w: %s is not positive", ErrInvalidAmount, amount)
	}
	date, err := ParseDate(r.Date)
	if err != nil {
		return Expense{}, fmt.Errorf("%w: %v", ErrInvalidDate, err)
	}

	category := Category(r.Category)
	if parsed, ok := ParseCategory(r.Category); ok {
		category = parsed
	}

	return Expense{
		ID:          r.ID,
		Title:       r.Title,
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: strings.TrimSpace(r.Description),
	}, nil
}

// Input converts the record into an input for re-import, keeping its id.
// Categories outside the enumeration, which storage tolerates, become Other
// so every exported expense can be imported again.
func (r ExpenseRecord) Input() (ExpenseInput, error) {
	amount, err := decimal.NewFromString(r.Amount.String())
	if err != nil {
		return ExpenseInput{}, fmt.Errorf("%w: %q", ErrInvalidAmount, r.Amount)
	}
	category, ok := ParseCategory(r.Category)
	if !ok {
		category = CategoryOther
	}
	return ExpenseInput{
		ID:          r.ID,
		Title:       r.Title,
		Amount:      amount,
		Category:    string(category),
		Date:        r.Date,
		Description: r.Description,
	}, nil
}

// ToRecords converts a slice of expenses, preserving order.
func ToRecords(expenses []Expense) []ExpenseRecord {
	records := make([]ExpenseRecord, len(expenses))
	for i, e := range expenses {
		records[i] = e.ToRecord()
	}
	return records
}

// BudgetRecord is the persisted JSON shape of a Budget.
type BudgetRecord struct {
	TotalBudget    json.Number `json:"totalBudget"`
	AlertThreshold json.Number `json:"alertThreshold"`
}

// ToRecord converts a budget to its wire shape.
func (b Budget) ToRecord() BudgetRecord {
	return BudgetRecord{
		TotalBudget:    json.Number(b.TotalBudget.String()),
		AlertThreshold: json.Number(decimal.NewFromFloat(b.AlertThreshold).String()),
	}
}

// Budget checks the record and converts it.
func (r BudgetRecord) Budget() (Budget, error) {
	total, err := decimal.NewFromString(r.TotalBudget.String())
	if err != nil {
		return Budget{}, fmt.Errorf("invalid totalBudget %q: %w", r.TotalBudget, err)
	}
	threshold, err := r.AlertThreshold.Float64()
	if err != nil {
		return Budget{}, fmt.Errorf("invalid alertThreshold %q: %w", r.AlertThreshold, err)
	}
	in := BudgetInput{TotalBudget: total, AlertThreshold: threshold}
	if err := in.Validate(); err != nil {
		return Budget{}, err
	}
	return in.ToBudget(), nil
}
