package cli

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

const barWidth = 24

// WriteExpenseTable prints expenses as an aligned table.
func WriteExpenseTable(w io.Writer, expenses []model.Expense, currency string) error {
	if len(expenses) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No expenses recorded."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "%s\t%s\t%s\t%s\t%s\n",
		TableHeaderStyle.Render("Date"),
		TableHeaderStyle.Render("Title"),
		TableHeaderStyle.Render("Category"),
		TableHeaderStyle.Render("Amount"),
		TableHeaderStyle.Render("Description"))

	for _, e := range expenses {
		desc := e.Description
		if !e.HasDescription() {
			desc = SubtleStyle.Render("-")
		}
		fmt.Fprintf(tw, "%s\t%s\t%s %s\t%s\t%s\n",
			e.Date, e.Title, e.Category.Icon(), e.Category,
			model.FormatAmount(e.Amount, currency), desc)
	}

	return tw.Flush()
}

// RenderSummary renders the dashboard summary as a box.
func RenderSummary(s aggregate.DashboardSummary, budget model.Budget, currency string) string {
	lines := []string{
		fmt.Sprintf("Today        %s", model.FormatAmount(s.TodayTotal, currency)),
		fmt.Sprintf("This week    %s", model.FormatAmount(s.WeekTotal, currency)),
		fmt.Sprintf("This month   %s", model.FormatAmount(s.MonthTotal, currency)),
		fmt.Sprintf("Remaining    %s", RemainingStyle(s.Remaining).Render(model.FormatAmount(s.Remaining, currency))),
		"",
		fmt.Sprintf("Budget       %s (alert at %g%%)", model.FormatAmount(budget.TotalBudget, currency), budget.AlertThreshold),
		fmt.Sprintf("Used         %s %.1f%%", UsageBar(s.UsagePercent, barWidth), s.UsagePercent),
	}

	if s.Alert.Visible() {
		lines = append(lines, "", SeverityStyle(s.Alert.Level.Severity()).Render(s.Alert.Message))
	}
	lines = append(lines, "", SubtleStyle.Render(TipIcon+" "+s.Tip))

	return RenderBox(ChartIcon+" Dashboard", strings.Join(lines, "\n"))
}

// RemainingStyle colors a negative remaining amount as an error.
func RemainingStyle(remaining decimal.Decimal) lipgloss.Style {
	if remaining.IsNegative() {
		return dangerStyle
	}
	return successStyle
}

// UsageBar draws a fixed-width bar; usage above 100% fills the bar.
func UsageBar(percent float64, width int) string {
	filled := min(max(int(percent/100*float64(width)+0.5), 0), width)
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + "]"
}

// WriteBreakdown prints category shares with proportional bars.
func WriteBreakdown(w io.Writer, totals aggregate.Totals, currency string) error {
	shares := aggregate.Shares(totals)
	if len(shares) == 0 {
		_, err := fmt.Fprintln(w, SubtleStyle.Render("No spending to chart yet."))
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range shares {
		fmt.Fprintf(tw, "%s %s\t%s\t%s\t%5.1f%%\t%d\n",
			s.Category.Icon(), s.Category,
			UsageBar(s.Percent, barWidth),
			model.FormatAmount(s.Amount, currency),
			s.Percent, s.Count)
	}
	return tw.Flush()
}
