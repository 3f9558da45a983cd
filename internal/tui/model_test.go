package tui

import (
	"context"
	"testing"
	"time"

	"github.com/Veraticus/studmoney/internal/engine"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/testutil"
	"github.com/Veraticus/studmoney/internal/tui/components"
	"github.com/Veraticus/studmoney/internal/tui/themes"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dashboardNow = time.Date(2024, 6, 15, 18, 45, 0, 0, time.UTC)

func newTestSource(t *testing.T) *engine.Tracker {
	t.Helper()
	db := testutil.SetupTestStore(t)
	tr := engine.New(db.Adapter, engine.WithClock(func() time.Time { return dashboardNow }))
	ctx := context.Background()
	require.NoError(t, tr.Open(ctx))

	_, err := tr.UpdateBudget(ctx, model.BudgetInput{TotalBudget: decimal.NewFromInt(10000), AlertThreshold: 80})
	require.NoError(t, err)

	for _, in := range []model.ExpenseInput{
		testutil.RandomExpenseInput(testutil.WithTitle("Rent share"), testutil.WithAmount("6000"),
			testutil.WithCategory(model.CategoryHousing), testutil.WithDate(model.NewDate(2024, 6, 1)), testutil.WithDescription("")),
		testutil.RandomExpenseInput(testutil.WithTitle("Lunch"), testutil.WithAmount("2500"),
			testutil.WithCategory(model.CategoryFood), testutil.WithDate(model.NewDate(2024, 6, 15)), testutil.WithDescription("")),
	} {
		_, err := tr.AddExpense(ctx, in)
		require.NoError(t, err)
	}
	return tr
}

func loaded(t *testing.T, m Model) Model {
	t.Helper()
	msg := loadData(m.source)()
	updated, _ := m.Update(msg)
	return updated.(Model)
}

func press(t *testing.T, m Model, msg tea.KeyMsg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestModel_LoadingThenReady(t *testing.T) {
	m := New(newTestSource(t), WithSize(120, 40))
	assert.Contains(t, m.View(), "Loading your budget")

	m = loaded(t, m)
	view := m.View()
	assert.Contains(t, view, "StudMoney Dashboard")
	assert.Contains(t, view, "8500.00 FCFA")
	assert.Contains(t, view, "85.0% used")
	assert.Contains(t, view, "Heads up")
	assert.Contains(t, view, "By Category")
	assert.Contains(t, view, "Rent share")
	assert.Contains(t, view, "2 of 2 expenses")
}

func TestModel_CompactLayout(t *testing.T) {
	m := loaded(t, New(newTestSource(t), WithSize(60, 30)))

	view := m.View()
	assert.Contains(t, view, "Month: 8500 FCFA")
	assert.NotContains(t, view, "By Category")
}

func TestModel_ToggleChart(t *testing.T) {
	m := loaded(t, New(newTestSource(t), WithSize(120, 40)))

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.NotContains(t, m.View(), "By Category")

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyTab})
	assert.Contains(t, m.View(), "By Category")
}

func TestModel_SearchDoesNotQuit(t *testing.T) {
	m := loaded(t, New(newTestSource(t), WithSize(120, 40)))

	m, _ = press(t, m, runes("/"))
	m, cmd := press(t, m, runes("q"))
	assert.False(t, m.quitting, "q is typed into the search box")
	if cmd != nil {
		_, isQuit := cmd().(tea.QuitMsg)
		assert.False(t, isQuit)
	}

	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyBackspace})
	m, _ = press(t, m, runes("lunch"))
	m, _ = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	assert.Contains(t, m.View(), "1 of 2 expenses")
}

func TestModel_Quit(t *testing.T) {
	m := loaded(t, New(newTestSource(t)))

	m, cmd := press(t, m, runes("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
	assert.Empty(t, m.View())
}

func TestModel_ForceQuitWhileSearching(t *testing.T) {
	m := loaded(t, New(newTestSource(t)))
	m, _ = press(t, m, runes("/"))

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.True(t, m.quitting)
}

func TestModel_SelectedExpenseDetail(t *testing.T) {
	src := newTestSource(t)
	m := loaded(t, New(src, WithSize(120, 40)))

	expense := src.GetExpenses()[0]
	updated, _ := m.Update(components.ExpenseSelectedMsg{Expense: expense})
	m = updated.(Model)

	view := m.View()
	assert.Contains(t, view, "Lunch")
	assert.Contains(t, view, "2500.00 FCFA")
	assert.Contains(t, view, "[Esc] Back")

	m, cmd := press(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	assert.Nil(t, cmd)
	assert.False(t, m.quitting)
	assert.Contains(t, m.View(), "StudMoney Dashboard")
}

func TestModel_RefreshPicksUpNewExpenses(t *testing.T) {
	src := newTestSource(t)
	m := loaded(t, New(src, WithSize(120, 40)))

	_, err := src.AddExpense(context.Background(), testutil.RandomExpenseInput(
		testutil.WithTitle("Bus pass"), testutil.WithDate(model.NewDate(2024, 6, 14))))
	require.NoError(t, err)

	m, cmd := press(t, m, runes("r"))
	require.NotNil(t, cmd)
	updated, _ := m.Update(cmd())
	m = updated.(Model)
	assert.Contains(t, m.View(), "3 of 3 expenses")
}

func TestModel_TickReloads(t *testing.T) {
	m := loaded(t, New(newTestSource(t), WithRefreshInterval(time.Hour)))

	_, cmd := m.Update(tickMsg(dashboardNow))
	assert.NotNil(t, cmd)
}

func TestModel_ToggleHelp(t *testing.T) {
	m := loaded(t, New(newTestSource(t), WithSize(120, 40)))
	assert.NotContains(t, m.View(), "clear filters")

	m, _ = press(t, m, runes("?"))
	assert.Contains(t, m.View(), "clear filters")
}

func TestTick_Disabled(t *testing.T) {
	assert.Nil(t, tick(0))
	assert.NotNil(t, tick(time.Second))
}

func TestGetTheme(t *testing.T) {
	assert.Equal(t, themes.CatppuccinMocha.Primary, themes.GetTheme("catppuccin").Primary)
	assert.Equal(t, themes.Default.Primary, themes.GetTheme("unknown").Primary)
	assert.Equal(t, themes.Default.StatusError.GetForeground(), themes.Default.Severity("danger").GetForeground())
}
