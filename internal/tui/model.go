// Package tui implements the interactive budget dashboard.
package tui

import (
	"time"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/tui/components"
	"github.com/Veraticus/studmoney/internal/tui/themes"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

// DataSource is the read side of the tracker the dashboard renders.
type DataSource interface {
	Now() time.Time
	Currency() string
	GetExpenses() []model.Expense
	GetBudget() model.Budget
	ComputeDashboardSummary(ref time.Time) aggregate.DashboardSummary
	ComputeCategoryBreakdown() aggregate.Totals
}

// Model holds the dashboard state.
type Model struct {
	theme    themes.Theme
	loadedAt time.Time
	source   DataSource
	selected *model.Expense
	config   Config
	keymap   KeyMap
	help     help.Model
	panel    components.BudgetPanelModel
	chart    components.CategoryChartModel
	list     components.ExpenseListModel
	width    int
	height   int
	quitting bool
	ready    bool
}

// New creates a dashboard over src.
func New(src DataSource, opts ...Option) Model {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	currency := src.Currency()
	m := Model{
		theme:  cfg.Theme,
		source: src,
		config: cfg,
		keymap: DefaultKeyMap(),
		help:   help.New(),
		panel:  components.NewBudgetPanelModel(cfg.Theme, currency),
		chart:  components.NewCategoryChartModel(cfg.Theme, currency),
		list:   components.NewExpenseList(cfg.Theme, currency),
		width:  cfg.Width,
		height: cfg.Height,
	}
	m.handleResize()
	return m
}

// Init loads the first snapshot and starts the refresh timer.
func (m Model) Init() tea.Cmd {
	return tea.Batch(loadData(m.source), tick(m.config.RefreshInterval))
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := m.handleGlobalKeys(msg); handled {
			return m, cmd
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.handleResize()
		return m, nil

	case dataLoadedMsg:
		m.handleDataLoaded(msg)
		return m, nil

	case tickMsg:
		return m, tea.Batch(loadData(m.source), tick(m.config.RefreshInterval))

	case components.ExpenseSelectedMsg:
		expense := msg.Expense
		m.selected = &expense
		return m, nil
	}

	newList, cmd := m.list.Update(msg)
	m.list = newList
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleGlobalKeys handles keys that apply outside the search input.
func (m *Model) handleGlobalKeys(msg tea.KeyMsg) (bool, tea.Cmd) {
	if key.Matches(msg, m.keymap.ForceQuit) {
		m.quitting = true
		return true, tea.Quit
	}
	if m.list.Searching() {
		return false, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		if m.selected != nil {
			m.selected = nil
			return true, nil
		}
		m.quitting = true
		return true, tea.Quit
	case key.Matches(msg, m.keymap.ToggleHelp):
		m.config.ShowHelp = !m.config.ShowHelp
		m.help.ShowAll = m.config.ShowHelp
		return true, nil
	case key.Matches(msg, m.keymap.ToggleChart):
		m.config.ShowChart = !m.config.ShowChart
		m.handleResize()
		return true, nil
	case key.Matches(msg, m.keymap.Refresh):
		return true, loadData(m.source)
	}
	return false, nil
}

func (m *Model) handleDataLoaded(msg dataLoadedMsg) {
	m.loadedAt = msg.loadedAt
	m.panel.SetSummary(msg.summary, msg.budget)
	m.chart.SetTotals(msg.breakdown)
	m.list.SetExpenses(msg.expenses)
	m.ready = true
}

// handleResize adjusts component sizes when the terminal resizes.
func (m *Model) handleResize() {
	compact := m.width < 80
	m.panel.SetCompact(compact)

	if compact {
		m.panel.Resize(m.width - 2)
		m.list.Resize(m.width-2, max(5, m.height-6))
		return
	}

	m.panel.Resize(m.width/2 - 4)
	// The summary row is about 14 lines tall
	m.list.Resize(m.width-2, max(5, m.height-18))
}

// View renders the UI.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return m.renderLoading()
	}
	if m.selected != nil {
		return m.renderDetail(*m.selected)
	}
	if m.width < 80 {
		return m.renderCompactView()
	}
	return m.renderFullView()
}
