package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteExpenseTable(t *testing.T) {
	expenses := []model.Expense{
		testutil.Expense("2", "1500", model.CategoryFood, model.NewDate(2024, 6, 2)),
		testutil.Expense("1", "300", model.CategoryTransport, model.NewDate(2024, 6, 1)),
	}
	expenses[0].Description = "lunch"

	var buf bytes.Buffer
	require.NoError(t, WriteExpenseTable(&buf, expenses, "FCFA"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Contains(t, lines[0], "Amount")
	assert.Contains(t, lines[1], "2024-06-02")
	assert.Contains(t, lines[1], "1500.00 FCFA")
	assert.Contains(t, lines[1], "lunch")
	assert.Contains(t, lines[2], "🚗 Transport")
	assert.Contains(t, lines[2], "300.00 FCFA")
}

func TestWriteExpenseTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteExpenseTable(&buf, nil, "FCFA"))
	assert.Contains(t, buf.String(), "No expenses recorded.")
}

func TestRenderSummary(t *testing.T) {
	budget := model.Budget{TotalBudget: decimal.NewFromInt(100), AlertThreshold: 80}

	t.Run("healthy", func(t *testing.T) {
		s := aggregate.Summarize([]model.Expense{
			testutil.Expense("1", "30", model.CategoryFood, model.NewDate(2024, 6, 15)),
		}, budget, promptNow)

		out := RenderSummary(s, budget, "FCFA")
		assert.Contains(t, out, "30.00 FCFA")
		assert.Contains(t, out, "70.00 FCFA")
		assert.Contains(t, out, "30.0%")
		assert.Contains(t, out, aggregate.TipHealthy)
		assert.NotContains(t, out, "Budget exceeded")
	})

	t.Run("exceeded", func(t *testing.T) {
		s := aggregate.Summarize([]model.Expense{
			testutil.Expense("1", "120", model.CategoryFood, model.NewDate(2024, 6, 15)),
		}, budget, promptNow)

		out := RenderSummary(s, budget, "FCFA")
		assert.Contains(t, out, "-20.00 FCFA")
		assert.Contains(t, out, "Budget exceeded")
		assert.Contains(t, out, aggregate.TipExceeded)
	})
}

func TestUsageBar(t *testing.T) {
	tests := []struct {
		name    string
		percent float64
		filled  int
	}{
		{name: "empty", percent: 0, filled: 0},
		{name: "half", percent: 50, filled: 5},
		{name: "full", percent: 100, filled: 10},
		{name: "over budget is capped", percent: 250, filled: 10},
		{name: "negative is floored", percent: -10, filled: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			bar := UsageBar(tt.percent, 10)
			assert.Equal(t, tt.filled, strings.Count(bar, "█"))
			assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"))
		})
	}
}

func TestWriteBreakdown(t *testing.T) {
	totals := aggregate.CategoryTotals([]model.Expense{
		testutil.Expense("1", "75", model.CategoryFood, model.NewDate(2024, 6, 1)),
		testutil.Expense("2", "25", model.CategoryLeisure, model.NewDate(2024, 6, 1)),
	}, model.Categories())

	var buf bytes.Buffer
	require.NoError(t, WriteBreakdown(&buf, totals, "FCFA"))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "Food")
	assert.Contains(t, lines[0], "75.0%")
	assert.Contains(t, lines[1], "Leisure")
	assert.Contains(t, lines[1], "25.0%")
}

func TestWriteBreakdown_NothingToChart(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteBreakdown(&buf, aggregate.CategoryTotals(nil, model.Categories()), "FCFA"))
	assert.Contains(t, buf.String(), "No spending to chart yet.")
}
