package testutil

import (
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
)

// ExpenseOption tweaks a generated input.
type ExpenseOption func(*model.ExpenseInput)

// WithAmount fixes the amount.
func WithAmount(amount string) ExpenseOption {
	return func(in *model.ExpenseInput) {
		in.Amount = decimal.RequireFromString(amount)
	}
}

// WithCategory fixes the category.
func WithCategory(c model.Category) ExpenseOption {
	return func(in *model.ExpenseInput) {
		in.Category = string(c)
	}
}

// WithDate fixes the date.
func WithDate(d model.Date) ExpenseOption {
	return func(in *model.ExpenseInput) {
		in.Date = d.String()
	}
}

// WithTitle fixes the title.
func WithTitle(title string) ExpenseOption {
	return func(in *model.ExpenseInput) {
		in.Title = title
	}
}

// WithDescription fixes the description.
func WithDescription(desc string) ExpenseOption {
	return func(in *model.ExpenseInput) {
		in.Description = desc
	}
}

// RandomExpenseInput returns a valid input with random content.
func RandomExpenseInput(opts ...ExpenseOption) model.ExpenseInput {
	cats := model.Categories()
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2024, 12, 31, 0, 0, 0, 0, time.UTC)

	in := model.ExpenseInput{
		Title:    gofakeit.ProductName(),
		Amount:   decimal.NewFromFloat(gofakeit.Price(100, 25000)).Round(2),
		Category: string(cats[gofakeit.IntRange(0, len(cats)-1)]),
		Date:     model.DateOf(gofakeit.DateRange(start, end)).String(),
	}
	if gofakeit.Bool() {
		in.Description = gofakeit.Sentence(5)
	}

	for _, opt := range opts {
		opt(&in)
	}
	return in
}

// RandomExpenseInputs returns n valid inputs.
func RandomExpenseInputs(n int, opts ...ExpenseOption) []model.ExpenseInput {
	inputs := make([]model.ExpenseInput, n)
	for i := range inputs {
		inputs[i] = RandomExpenseInput(opts...)
	}
	return inputs
}

// Expense builds a stored expense directly, for aggregation tests.
func Expense(id string, amount string, category model.Category, date model.Date) model.Expense {
	return model.Expense{
		ID:       id,
		Title:    gofakeit.ProductName(),
		Amount:   decimal.RequireFromString(amount),
		Category: category,
		Date:     date,
	}
}
