package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/tui/themes"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
)

// BudgetPanelModel displays the dashboard summary and budget usage.
type BudgetPanelModel struct {
	theme       themes.Theme
	summary     aggregate.DashboardSummary
	budget      model.Budget
	currency    string
	progressBar progress.Model
	width       int
	compact     bool
	loaded      bool
}

// NewBudgetPanelModel creates a new budget panel.
func NewBudgetPanelModel(theme themes.Theme, currency string) BudgetPanelModel {
	prog := progress.New(progress.WithSolidFill(string(theme.Primary)))
	prog.ShowPercentage = false
	prog.Width = 40

	return BudgetPanelModel{
		theme:       theme,
		currency:    currency,
		progressBar: prog,
	}
}

// Update handles messages.
func (m BudgetPanelModel) Update(msg tea.Msg) (BudgetPanelModel, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.Resize(msg.Width)
	}
	return m, nil
}

// SetSummary replaces the displayed figures.
func (m *BudgetPanelModel) SetSummary(summary aggregate.DashboardSummary, budget model.Budget) {
	m.summary = summary
	m.budget = budget
	m.loaded = true
}

// SetCompact sets compact mode.
func (m *BudgetPanelModel) SetCompact(compact bool) {
	m.compact = compact
}

// Resize updates the component size.
func (m *BudgetPanelModel) Resize(width int) {
	m.width = width
	m.progressBar.Width = max(10, min(width-4, 40))
}

// View renders the budget panel.
func (m BudgetPanelModel) View() string {
	if !m.loaded {
		return m.theme.Subtitle.Render("Loading budget...")
	}
	if m.compact {
		return m.renderCompact()
	}

	sections := []string{
		m.renderTotals(),
		"",
		m.renderUsage(),
	}
	if m.summary.Alert.Visible() {
		sections = append(sections, "", m.theme.Severity(m.summary.Alert.Level.Severity()).Render(m.summary.Alert.Message))
	}
	sections = append(sections, "", lipgloss.NewStyle().Foreground(m.theme.Muted).Render("💡 "+m.summary.Tip))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m BudgetPanelModel) renderCompact() string {
	return fmt.Sprintf("Month: %s | Remaining: %s | Used: %.1f%%",
		model.FormatAmountCompact(m.summary.MonthTotal, m.currency),
		model.FormatAmountCompact(m.summary.Remaining, m.currency),
		m.summary.UsagePercent,
	)
}

func (m BudgetPanelModel) renderTotals() string {
	remainingStyle := m.theme.StatusSuccess
	if m.summary.Remaining.IsNegative() {
		remainingStyle = m.theme.StatusError
	}

	lines := []string{
		fmt.Sprintf("%-12s %s", "Today:", m.money(m.summary.TodayTotal)),
		fmt.Sprintf("%-12s %s", "This week:", m.money(m.summary.WeekTotal)),
		fmt.Sprintf("%-12s %s", "This month:", m.money(m.summary.MonthTotal)),
		fmt.Sprintf("%-12s %s", "Remaining:", remainingStyle.Render(m.money(m.summary.Remaining))),
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render("Spending"),
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	)
}

func (m BudgetPanelModel) renderUsage() string {
	title := fmt.Sprintf("Budget %s (alert at %g%%)", m.money(m.budget.TotalBudget), m.budget.AlertThreshold)

	// The bar saturates once the budget is spent
	bar := m.progressBar.ViewAs(min(m.summary.UsagePercent/100, 1))

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Subtitle.Render(title),
		bar,
		m.theme.Normal.Render(fmt.Sprintf("%.1f%% used", m.summary.UsagePercent)),
	)
}

func (m BudgetPanelModel) money(d decimal.Decimal) string {
	return model.FormatAmount(d, m.currency)
}
