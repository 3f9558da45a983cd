package sheets

import (
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/service"
	"github.com/shopspring/decimal"
)

// ExpenseRow is a single row of the expense details section.
type ExpenseRow struct {
	Date        model.Date
	Amount      decimal.Decimal
	Title       string
	Category    string
	Description string
}

// NewExpenseRow converts an expense.
func NewExpenseRow(e model.Expense) ExpenseRow {
	return ExpenseRow{
		Date:        e.Date,
		Amount:      e.Amount,
		Title:       e.Title,
		Category:    string(e.Category),
		Description: e.Description,
	}
}

// Values returns the row as sheet cells.
func (r ExpenseRow) Values() []any {
	return []any{r.Date.String(), r.Title, r.Amount.InexactFloat64(), r.Category, r.Description}
}

// CategoryRow is a single row of the category breakdown section.
type CategoryRow struct {
	Category string
	Amount   decimal.Decimal
	Count    int
	SharePct float64
}

// NewCategoryRow converts a category summary. total is the month total the
// share is computed against.
func NewCategoryRow(cs service.CategorySummary, total decimal.Decimal) CategoryRow {
	row := CategoryRow{
		Category: cs.Category.Icon() + " " + string(cs.Category),
		Amount:   cs.Amount,
		Count:    cs.Count,
	}
	if total.IsPositive() {
		row.SharePct = cs.Amount.Div(total).Mul(decimal.NewFromInt(100)).Round(1).InexactFloat64()
	}
	return row
}

// Values returns the row as sheet cells.
func (r CategoryRow) Values() []any {
	return []any{r.Category, r.Count, r.Amount.InexactFloat64(), r.SharePct}
}
