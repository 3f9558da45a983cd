// Package engine wires the ledger, budget state and aggregation into the
// Tracker that presentation layers talk to.
package engine

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/budget"
	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/ledger"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/service"
	"github.com/Veraticus/studmoney/internal/storage"
)

// DefaultRecentLimit is how many expenses the "recent" view shows.
const DefaultRecentLimit = 5

// Tracker is the single entry point for recording expenses, managing the
// budget and computing summaries.
type Tracker struct {
	adapter  *storage.Adapter
	expenses *ledger.Repository
	budget   *budget.State
	now      func() time.Time
	currency string
}

// Option configures a Tracker.
type Option func(*trackerConfig)

type trackerConfig struct {
	now        func() time.Time
	currency   string
	ledgerOpts []ledger.Option
}

// WithClock replaces time.Now, mainly for tests.
func WithClock(now func() time.Time) Option {
	return func(c *trackerConfig) {
		c.now = now
	}
}

// WithCurrency sets the label used in reports.
func WithCurrency(currency string) Option {
	return func(c *trackerConfig) {
		if currency != "" {
			c.currency = currency
		}
	}
}

// WithLedgerOptions passes options through to the expense repository.
func WithLedgerOptions(opts ...ledger.Option) Option {
	return func(c *trackerConfig) {
		c.ledgerOpts = append(c.ledgerOpts, opts...)
	}
}

// New builds a Tracker over adapter. Call Open before use.
func New(adapter *storage.Adapter, opts ...Option) *Tracker {
	cfg := trackerConfig{
		now:      time.Now,
		currency: model.DefaultCurrency,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Tracker{
		adapter:  adapter,
		expenses: ledger.NewRepository(adapter, cfg.ledgerOpts...),
		budget:   budget.NewState(adapter),
		now:      cfg.now,
		currency: cfg.currency,
	}
}

// Open loads persisted expenses and the budget, writing the default budget
// on first run.
func (t *Tracker) Open(ctx context.Context) error {
	if err := t.expenses.LoadFromStorage(ctx); err != nil {
		return err
	}
	if err := t.budget.Load(ctx); err != nil {
		return err
	}
	common.LogDebug("Tracker opened", common.Fields{"expenses": t.expenses.Len()})
	return nil
}

// Close releases the underlying storage.
func (t *Tracker) Close() error {
	return t.adapter.Close()
}

// Now returns the tracker's current time.
func (t *Tracker) Now() time.Time {
	return t.now()
}

// Currency returns the configured currency label.
func (t *Tracker) Currency() string {
	return t.currency
}

// AddExpense records a new expense.
func (t *Tracker) AddExpense(ctx context.Context, in model.ExpenseInput) (model.Expense, error) {
	return t.expenses.Add(ctx, in)
}

// GetExpenses returns every expense, newest first.
func (t *Tracker) GetExpenses() []model.Expense {
	return t.expenses.List()
}

// HasExpense reports whether an expense with id is recorded.
func (t *Tracker) HasExpense(id string) bool {
	return t.expenses.Contains(id)
}

// RecentExpenses returns the n most recently added expenses.
func (t *Tracker) RecentExpenses(n int) []model.Expense {
	return t.expenses.Recent(n)
}

// SearchExpenses filters by search term and optional category, preserving order.
func (t *Tracker) SearchExpenses(term string, category model.Category) []model.Expense {
	return slices.Collect(t.expenses.Query(aggregate.SearchPredicate(term, category)))
}

// GetBudget returns the current budget.
func (t *Tracker) GetBudget() model.Budget {
	return t.budget.Get()
}

// UpdateBudget validates and stores a new budget.
func (t *Tracker) UpdateBudget(ctx context.Context, in model.BudgetInput) (model.Budget, error) {
	return t.budget.Set(ctx, in)
}

// ComputeDashboardSummary derives the window totals, usage, alert and tip at ref.
func (t *Tracker) ComputeDashboardSummary(ref time.Time) aggregate.DashboardSummary {
	return aggregate.Summarize(t.expenses.List(), t.budget.Get(), ref)
}

// ComputeCategoryBreakdown returns the strictly positive category totals
// across all expenses, in category order.
func (t *Tracker) ComputeCategoryBreakdown() aggregate.Totals {
	return aggregate.ChartableCategories(aggregate.CategoryTotals(t.expenses.List(), model.Categories()))
}

// BuildReport snapshots the month containing ref for exporters.
func (t *Tracker) BuildReport(ref time.Time) *service.Report {
	windows := aggregate.WindowStarts(ref)
	monthExpenses := aggregate.Since(t.expenses.List(), windows.MonthStart)
	monthTotal := aggregate.Total(monthExpenses)
	b := t.budget.Get()
	usage := aggregate.BudgetUsage(monthTotal, b)

	totals := aggregate.ChartableCategories(aggregate.CategoryTotals(monthExpenses, model.Categories()))
	byCategory := make([]service.CategorySummary, 0, len(totals))
	for _, ct := range totals {
		byCategory = append(byCategory, service.CategorySummary{
			Category: ct.Category,
			Amount:   ct.Amount,
			Count:    ct.Count,
		})
	}

	return &service.Report{
		GeneratedAt:  ref,
		Period:       service.DateRange{Start: windows.MonthStart, End: windows.Today},
		Currency:     t.currency,
		Budget:       b,
		MonthTotal:   monthTotal,
		Remaining:    usage.Remaining,
		UsagePercent: usage.Percent,
		Expenses:     monthExpenses,
		ByCategory:   byCategory,
	}
}

// ImportResult counts what happened to each imported input.
type ImportResult struct {
	Failures   []ImportFailure
	Added      int
	Duplicates int
}

// ImportFailure records an input rejected during import.
type ImportFailure struct {
	Err   error
	Title string
	Index int
}

// ImportExpenses adds each input in order, so the last input ends up
// newest. Inputs whose id already exists are counted as duplicates and
// invalid inputs are collected rather than aborting the import. Storage
// errors stop the import. progress, if set, is called after every input.
func (t *Tracker) ImportExpenses(ctx context.Context, inputs []model.ExpenseInput, progress func(done int)) (ImportResult, error) {
	var result ImportResult
	for i, in := range inputs {
		if err := ctx.Err(); err != nil {
			return result, err
		}

		in.Normalize()
		if in.ID != "" && t.HasExpense(in.ID) {
			result.Duplicates++
		} else if _, err := t.expenses.Add(ctx, in); err != nil {
			if !errors.Is(err, model.ErrValidation) {
				return result, fmt.Errorf("import stopped at item %d: %w", i+1, err)
			}
			result.Failures = append(result.Failures, ImportFailure{Index: i, Title: in.Title, Err: err})
		} else {
			result.Added++
		}

		if progress != nil {
			progress(i + 1)
		}
	}

	common.LogInfo("Import finished", common.Fields{
		"added":      result.Added,
		"duplicates": result.Duplicates,
		"failed":     len(result.Failures),
	})
	return result, nil
}
