package components

import (
	"fmt"
	"strings"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/tui/themes"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ExpenseListModel manages the searchable expense table.
type ExpenseListModel struct {
	theme       themes.Theme
	currency    string
	search      string
	category    model.Category
	expenses    []model.Expense
	filtered    []model.Expense
	searchInput textinput.Model
	table       table.Model
	mode        ListMode
	width       int
	height      int
}

// ListMode represents the current mode of the list.
type ListMode int

// List modes.
const (
	ModeNormal ListMode = iota
	ModeSearch
)

// ExpenseSelectedMsg is sent when an expense is selected.
type ExpenseSelectedMsg struct {
	Expense model.Expense
	Index   int
}

// NewExpenseList creates a new expense list.
func NewExpenseList(theme themes.Theme, currency string) ExpenseListModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(theme.Border).
		BorderBottom(true).
		Bold(false)
	s.Selected = theme.Selected
	t.SetStyles(s)

	searchInput := textinput.New()
	searchInput.Placeholder = "Search title or description..."
	searchInput.CharLimit = 50

	m := ExpenseListModel{
		theme:       theme,
		currency:    currency,
		table:       t,
		searchInput: searchInput,
		mode:        ModeNormal,
		width:       80,
		height:      16,
	}
	m.updateColumnWidths()

	return m
}

// SetExpenses replaces the listed expenses, keeping the active filters.
func (m *ExpenseListModel) SetExpenses(expenses []model.Expense) {
	m.expenses = expenses
	m.applyFilters()
}

// Searching reports whether the search input has focus.
func (m ExpenseListModel) Searching() bool {
	return m.mode == ModeSearch
}

// Filtered returns the expenses currently shown.
func (m ExpenseListModel) Filtered() []model.Expense {
	return m.filtered
}

// Category returns the active category filter, empty for all.
func (m ExpenseListModel) Category() model.Category {
	return m.category
}

// Update handles messages.
func (m ExpenseListModel) Update(msg tea.Msg) (ExpenseListModel, tea.Cmd) {
	var cmds []tea.Cmd

	if msg, ok := msg.(tea.KeyMsg); ok {
		if m.mode == ModeSearch {
			return m, m.handleSearchMode(msg)
		}
		cmds = append(cmds, m.handleNormalMode(msg))
	}

	newTable, cmd := m.table.Update(msg)
	m.table = newTable
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

func (m *ExpenseListModel) handleNormalMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "/":
		m.mode = ModeSearch
		m.searchInput.SetValue(m.search)
		return m.searchInput.Focus()

	case "c":
		m.category = nextCategory(m.category)
		m.applyFilters()

	case "x":
		m.search = ""
		m.category = ""
		m.applyFilters()

	case "enter":
		cursor := m.table.Cursor()
		if cursor >= 0 && cursor < len(m.filtered) {
			selected := ExpenseSelectedMsg{Expense: m.filtered[cursor], Index: cursor}
			return func() tea.Msg { return selected }
		}
	}

	return nil
}

func (m *ExpenseListModel) handleSearchMode(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "enter":
		m.search = strings.TrimSpace(m.searchInput.Value())
		m.applyFilters()
		m.mode = ModeNormal
		m.searchInput.Blur()

	case "esc":
		m.mode = ModeNormal
		m.searchInput.Blur()
		m.searchInput.SetValue("")

	default:
		var cmd tea.Cmd
		m.searchInput, cmd = m.searchInput.Update(msg)
		return cmd
	}

	return nil
}

// nextCategory cycles through "all" and then each category in order.
func nextCategory(current model.Category) model.Category {
	cats := model.Categories()
	if current == "" {
		return cats[0]
	}
	for i, c := range cats {
		if c == current && i+1 < len(cats) {
			return cats[i+1]
		}
	}
	return ""
}

// View renders the expense list.
func (m ExpenseListModel) View() string {
	sections := []string{m.renderHeader()}
	if m.mode == ModeSearch {
		sections = append(sections, m.searchInput.View())
	}

	if len(m.filtered) == 0 {
		sections = append(sections, lipgloss.NewStyle().Foreground(m.theme.Muted).Render("No matching expenses"))
	} else {
		sections = append(sections, m.table.View())
	}

	sections = append(sections, m.renderFooter())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m ExpenseListModel) renderHeader() string {
	status := fmt.Sprintf("%d of %d expenses", len(m.filtered), len(m.expenses))
	if m.search != "" {
		status += fmt.Sprintf(" | Search: %q", m.search)
	}
	if m.category != "" {
		status += fmt.Sprintf(" | %s %s", m.category.Icon(), m.category)
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Bold.Render("Expenses"),
		m.theme.Subtitle.Render(status),
	)
}

func (m ExpenseListModel) renderFooter() string {
	var hints []string
	switch m.mode {
	case ModeSearch:
		hints = []string{"[Enter] Apply", "[Esc] Cancel"}
	default:
		hints = []string{"[↑↓] Navigate", "[/] Search", "[c] Category", "[x] Clear"}
	}
	return lipgloss.NewStyle().Foreground(m.theme.Muted).Render(strings.Join(hints, "  "))
}

func (m *ExpenseListModel) applyFilters() {
	m.filtered = aggregate.FilterExpenses(m.expenses, m.search, m.category)
	m.table.SetRows(m.buildTableRows())

	if m.table.Cursor() >= len(m.filtered) {
		m.table.SetCursor(max(0, len(m.filtered)-1))
	}
}

func (m ExpenseListModel) buildTableRows() []table.Row {
	rows := make([]table.Row, 0, len(m.filtered))
	for _, e := range m.filtered {
		rows = append(rows, table.Row{
			e.Date.String(),
			truncate(e.Title, 24),
			e.Category.Icon() + " " + e.Category.String(),
			model.FormatAmount(e.Amount, m.currency),
		})
	}
	return rows
}

// Resize updates the component size.
func (m *ExpenseListModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Header takes two lines, the footer one
	m.table.SetHeight(max(3, height-3))
	m.updateColumnWidths()
}

func (m *ExpenseListModel) updateColumnWidths() {
	availableWidth := max(m.width-4, 56)

	m.table.SetColumns([]table.Column{
		{Title: "Date", Width: 10},
		{Title: "Title", Width: max(16, int(float64(availableWidth)*0.38))},
		{Title: "Category", Width: max(12, int(float64(availableWidth)*0.22))},
		{Title: "Amount", Width: max(14, int(float64(availableWidth)*0.22))},
	})
}

func truncate(s string, maxLen int) string {
	r := []rune(s)
	if len(r) <= maxLen {
		return s
	}
	return string(r[:maxLen-3]) + "..."
}
