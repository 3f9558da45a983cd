package export

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/service"
	"github.com/shopspring/decimal"
)

// ErrNoReport is returned when WriteReport is given a nil report.
var ErrNoReport = errors.New("no report to write")

// ReportFilename is the default name of a text report made at ref.
func ReportFilename(ref time.Time) string {
	return fmt.Sprintf("studmoney-report-%s.txt", model.DateOf(ref))
}

// WriteReport renders a plain-text monthly report.
func WriteReport(w io.Writer, report *service.Report) error {
	if report == nil {
		return ErrNoReport
	}
	money := func(d decimal.Decimal) string {
		return model.FormatAmount(d, report.Currency)
	}

	var b strings.Builder
	b.WriteString("STUDMONEY - BUDGET REPORT\n")
	fmt.Fprintf(&b, "Date: %s\n", model.DateOf(report.GeneratedAt))
	fmt.Fprintf(&b, "Period: %s to %s\n\n", report.Period.Start, report.Period.End)

	b.WriteString("BUDGET\n")
	fmt.Fprintf(&b, "Total budget: %s\n", money(report.Budget.TotalBudget))
	fmt.Fprintf(&b, "Spent this month: %s\n", money(report.MonthTotal))
	fmt.Fprintf(&b, "Remaining: %s\n", money(report.Remaining))
	fmt.Fprintf(&b, "Percent used: %.1f%%\n", report.UsagePercent)

	if len(report.ByCategory) > 0 {
		b.WriteString("\nBY CATEGORY\n")
		for _, cs := range report.ByCategory {
			fmt.Fprintf(&b, "%s %-10s %s (%d)\n", cs.Category.Icon(), cs.Category, money(cs.Amount), cs.Count)
		}
	}

	fmt.Fprintf(&b, "\nEXPENSES THIS MONTH (%d transactions)\n", len(report.Expenses))
	for i, e := range report.Expenses {
		fmt.Fprintf(&b, "\n%d. %s\n", i+1, e.Title)
		fmt.Fprintf(&b, "   Amount: %s\n", money(e.Amount))
		fmt.Fprintf(&b, "   Category: %s\n", e.Category)
		fmt.Fprintf(&b, "   Date: %s\n", e.Date)
		if e.HasDescription() {
			fmt.Fprintf(&b, "   Description: %s\n", e.Description)
		}
	}

	b.WriteString("\n---\nGenerated by StudMoney\n")

	if _, err := io.WriteString(w, b.String()); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
