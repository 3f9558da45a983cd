package tui

import (
	"fmt"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderLoading() string {
	content := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.Title.Render("💰 StudMoney"),
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("Loading your budget..."),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.UnsetMargins().Render("💰 StudMoney Dashboard")
	stamp := lipgloss.NewStyle().Foreground(m.theme.Muted).Render(m.loadedAt.Format("Mon Jan 2 15:04"))
	gap := max(1, m.width-lipgloss.Width(title)-lipgloss.Width(stamp)-2)

	return title + lipgloss.NewStyle().Width(gap).Render("") + stamp
}

// renderCompactView stacks a one-line summary over the list.
func (m Model) renderCompactView() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		m.panel.View(),
		"",
		m.list.View(),
		m.help.View(m.keymap),
	)
}

// renderFullView puts the budget and chart side by side above the list.
func (m Model) renderFullView() string {
	half := m.width/2 - 2
	top := m.theme.RoundedBox.Width(half).Render(m.panel.View())
	if m.config.ShowChart {
		top = lipgloss.JoinHorizontal(
			lipgloss.Top,
			top,
			m.theme.RoundedBox.Width(half).Render(m.chart.View()),
		)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderHeader(),
		top,
		m.list.View(),
		m.help.View(m.keymap),
	)
}

func (m Model) renderDetail(e model.Expense) string {
	currency := m.source.Currency()
	rows := []string{
		fmt.Sprintf("%-12s %s", "Title:", e.Title),
		fmt.Sprintf("%-12s %s", "Amount:", model.FormatAmount(e.Amount, currency)),
		fmt.Sprintf("%-12s %s %s", "Category:", e.Category.Icon(), e.Category),
		fmt.Sprintf("%-12s %s", "Date:", e.Date),
	}
	if e.HasDescription() {
		rows = append(rows, fmt.Sprintf("%-12s %s", "Description:", e.Description))
	}

	body := lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Expense"),
		m.theme.Normal.Render(lipgloss.JoinVertical(lipgloss.Left, rows...)),
		"",
		lipgloss.NewStyle().Foreground(m.theme.Muted).Render("[Esc] Back"),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, m.theme.RoundedBox.Render(body))
}
