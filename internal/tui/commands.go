package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// loadData snapshots the source at its current time.
func loadData(src DataSource) tea.Cmd {
	return func() tea.Msg {
		now := src.Now()
		return dataLoadedMsg{
			loadedAt:  now,
			expenses:  src.GetExpenses(),
			budget:    src.GetBudget(),
			summary:   src.ComputeDashboardSummary(now),
			breakdown: src.ComputeCategoryBreakdown(),
		}
	}
}

// tick schedules the next periodic reload.
func tick(interval time.Duration) tea.Cmd {
	if interval <= 0 {
		return nil
	}
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}
