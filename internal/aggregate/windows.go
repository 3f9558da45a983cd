// Package aggregate derives totals, budget usage and alerts from expenses.
// Every function is pure; the reference time is always passed in.
package aggregate

import (
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
)

// Windows holds the first day of each aggregation window.
type Windows struct {
	Today      model.Date
	WeekStart  model.Date
	MonthStart model.Date
}

// WindowStarts anchors the windows at ref's calendar day, in ref's location.
// Weeks start on Sunday.
func WindowStarts(ref time.Time) Windows {
	today := model.DateOf(ref)
	return Windows{
		Today:      today,
		WeekStart:  today.AddDays(-int(today.Weekday())),
		MonthStart: model.NewDate(today.Year(), today.Month(), 1),
	}
}

// WindowTotals holds the spend of each window.
type WindowTotals struct {
	Today decimal.Decimal
	Week  decimal.Decimal
	Month decimal.Decimal
}

// ComputeWindowTotals sums the expenses dated on or after each window start.
// There is no upper bound, so future-dated expenses count toward every window.
func ComputeWindowTotals(expenses []model.Expense, ref time.Time) WindowTotals {
	w := WindowStarts(ref)
	totals := WindowTotals{
		Today: decimal.Zero,
		Week:  decimal.Zero,
		Month: decimal.Zero,
	}
	for _, e := range expenses {
		if e.Date.OnOrAfter(w.Today) {
			totals.Today = totals.Today.Add(e.Amount)
		}
		if e.Date.OnOrAfter(w.WeekStart) {
			totals.Week = totals.Week.Add(e.Amount)
		}
		if e.Date.OnOrAfter(w.MonthStart) {
			totals.Month = totals.Month.Add(e.Amount)
		}
	}
	return totals
}

// Since returns the expenses dated on or after start, preserving order.
func Since(expenses []model.Expense, start model.Date) []model.Expense {
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if e.Date.OnOrAfter(start) {
			out = append(out, e)
		}
	}
	return out
}

// Total sums the amounts of expenses.
func Total(expenses []model.Expense) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range expenses {
		sum = sum.Add(e.Amount)
	}
	return sum
}
