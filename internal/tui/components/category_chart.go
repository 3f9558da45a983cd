package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/tui/themes"
	"github.com/charmbracelet/lipgloss"
)

const chartBarWidth = 15

// CategoryChartModel renders the spending share of each category.
type CategoryChartModel struct {
	theme    themes.Theme
	currency string
	shares   []aggregate.Share
}

// NewCategoryChartModel creates an empty chart.
func NewCategoryChartModel(theme themes.Theme, currency string) CategoryChartModel {
	return CategoryChartModel{theme: theme, currency: currency}
}

// SetTotals replaces the charted totals. Zero totals are not shown.
func (m *CategoryChartModel) SetTotals(totals aggregate.Totals) {
	m.shares = aggregate.Shares(totals)
}

// View renders the chart.
func (m CategoryChartModel) View() string {
	title := m.theme.Subtitle.Render("By Category")
	if len(m.shares) == 0 {
		return lipgloss.JoinVertical(
			lipgloss.Left,
			title,
			lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No spending yet"),
		)
	}

	barStyle := lipgloss.NewStyle().Foreground(m.theme.Primary)
	lines := make([]string, 0, len(m.shares))
	for _, s := range m.shares {
		barLen := int(s.Percent / 100 * chartBarWidth)
		lines = append(lines, fmt.Sprintf("%s %-10s %s %5.1f%%  %s",
			s.Category.Icon(),
			truncate(s.Category.String(), 10),
			barStyle.Render(strings.Repeat("█", barLen)+strings.Repeat(" ", chartBarWidth-barLen)),
			s.Percent,
			model.FormatAmount(s.Amount, m.currency),
		))
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		title,
		m.theme.Normal.Render(strings.Join(lines, "\n")),
	)
}
