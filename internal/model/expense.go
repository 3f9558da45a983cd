// Package model defines the core domain types for expenses and budgets.
package model

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Expense is a single recorded spend. Expenses are immutable once added.
type Expense struct {
	Amount      decimal.Decimal
	Date        Date
	ID          string
	Title       string
	Category    Category
	Description string
}

// HasDescription reports whether the optional description is present.
func (e Expense) HasDescription() bool {
	return e.Description != ""
}

// ExpenseInput is the unvalidated shape submitted when recording an expense.
// ID is normally empty and assigned by the ledger; imports may carry one.
type ExpenseInput struct {
	Amount      decimal.Decimal `json:"amount" validate:"gt=0"`
	ID          string          `json:"id,omitempty"`
	Title       string          `json:"title" validate:"required"`
	Category    string          `json:"category" validate:"required,category"`
	Date        string          `json:"date" validate:"required,datetime=2006-01-02"`
	Description string          `json:"description,omitempty"`
}

// Normalize trims the free-text fields in place.
func (in *ExpenseInput) Normalize() {
	in.ID = strings.TrimSpace(in.ID)
	in.Title = strings.TrimSpace(in.Title)
	in.Category = strings.TrimSpace(in.Category)
	in.Date = strings.TrimSpace(in.Date)
	in.Description = strings.TrimSpace(in.Description)
}

// Validate normalizes and checks the input, returning a *ValidationError
// naming every failing field.
func (in *ExpenseInput) Validate() error {
	in.Normalize()
	return validateStruct(in)
}

// ToExpense converts a validated input into an Expense with the given id.
func (in ExpenseInput) ToExpense(id string) (Expense, error) {
	date, err := ParseDate(in.Date)
	if err != nil {
		return Expense{}, err
	}
	category, _ := ParseCategory(in.Category)
	return Expense{
		ID:          id,
		Title:       in.Title,
		Amount:      in.Amount,
		Category:    category,
		Date:        date,
		Description: in.Description,
	}, nil
}
