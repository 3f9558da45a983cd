package aggregate

import (
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
)

// DashboardSummary is everything the dashboard shows above the fold.
type DashboardSummary struct {
	Alert        Alert
	TodayTotal   decimal.Decimal
	WeekTotal    decimal.Decimal
	MonthTotal   decimal.Decimal
	Remaining    decimal.Decimal
	Tip          string
	UsagePercent float64
}

// Summarize computes the dashboard summary for ref.
func Summarize(expenses []model.Expense, budget model.Budget, ref time.Time) DashboardSummary {
	totals := ComputeWindowTotals(expenses, ref)
	usage := BudgetUsage(totals.Month, budget)

	return DashboardSummary{
		TodayTotal:   totals.Today,
		WeekTotal:    totals.Week,
		MonthTotal:   totals.Month,
		Remaining:    usage.Remaining,
		UsagePercent: usage.Percent,
		Alert:        ClassifyAlert(usage.Percent, budget.AlertThreshold),
		Tip:          BudgetTip(usage.Percent, budget.AlertThreshold),
	}
}
