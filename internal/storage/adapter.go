package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/Veraticus/studmoney/internal/service"
)

// Keys under which the two records are persisted.
const (
	ExpensesKey = "studmoney_expenses"
	BudgetKey   = "studmoney_budget"
)

// Adapter persists expenses and the budget as JSON records in a
// KeyValueStore. Corrupted records are logged and treated as absent;
// only I/O failures of the underlying store are returned.
type Adapter struct {
	store service.KeyValueStore
}

// NewAdapter wraps store.
func NewAdapter(store service.KeyValueStore) (*Adapter, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	return &Adapter{store: store}, nil
}

// Store returns the underlying key-value store.
func (a *Adapter) Store() service.KeyValueStore {
	return a.store
}

// Close closes the underlying store.
func (a *Adapter) Close() error {
	return a.store.Close()
}

// SaveExpenses replaces the persisted expense collection, preserving order.
func (a *Adapter) SaveExpenses(ctx context.Context, expenses []model.Expense) error {
	data, err := json.Marshal(model.ToRecords(expenses))
	if err != nil {
		return fmt.Errorf("failed to encode expenses: %w", err)
	}
	if err := a.store.Save(ctx, ExpensesKey, data); err != nil {
		return fmt.Errorf("failed to save expenses: %w", err)
	}
	return nil
}

// LoadExpenses returns the persisted collection in stored order. A missing
// or malformed record yields an empty collection; entries that fail schema
// checks are dropped individually.
func (a *Adapter) LoadExpenses(ctx context.Context) ([]model.Expense, error) {
	data, ok, err := a.store.Load(ctx, ExpensesKey)
	if err != nil {
		return nil, fmt.Errorf("failed to load expenses: %w", err)
	}
	if !ok {
		return []model.Expense{}, nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		common.LogWarn("Discarding unreadable expense record", common.Fields{
			"key":   ExpensesKey,
			"error": fmt.Errorf("%w: %v", common.ErrStorageCorrupted, err),
		})
		return []model.Expense{}, nil
	}

	expenses := make([]model.Expense, 0, len(raw))
	seen := make(map[string]bool, len(raw))
	for i, entry := range raw {
		var rec model.ExpenseRecord
		if err := json.Unmarshal(entry, &rec); err != nil {
			logSkipped(i, err)
			continue
		}
		exp, err := rec.Expense()
		if err != nil {
			logSkipped(i, err)
			continue
		}
		if seen[exp.ID] {
			logSkipped(i, fmt.Errorf("duplicate id %s", exp.ID))
			continue
		}
		seen[exp.ID] = true
		expenses = append(expenses, exp)
	}

	return expenses, nil
}

func logSkipped(index int, err error) {
	common.LogWarn("Skipping corrupted expense entry", common.Fields{
		"key":   ExpensesKey,
		"index": index,
		"error": fmt.Errorf("%w: %v", common.ErrStorageCorrupted, err),
	})
}

// SaveBudget replaces the persisted budget.
func (a *Adapter) SaveBudget(ctx context.Context, budget model.Budget) error {
	data, err := json.Marshal(budget.ToRecord())
	if err != nil {
		return fmt.Errorf("failed to encode budget: %w", err)
	}
	if err := a.store.Save(ctx, BudgetKey, data); err != nil {
		return fmt.Errorf("failed to save budget: %w", err)
	}
	return nil
}

// LoadBudget returns the persisted budget. The boolean is false when no
// valid budget is stored.
func (a *Adapter) LoadBudget(ctx context.Context) (model.Budget, bool, error) {
	data, ok, err := a.store.Load(ctx, BudgetKey)
	if err != nil {
		return model.Budget{}, false, fmt.Errorf("failed to load budget: %w", err)
	}
	if !ok {
		return model.Budget{}, false, nil
	}

	var rec model.BudgetRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		common.LogWarn("Discarding unreadable budget record", common.Fields{
			"key":   BudgetKey,
			"error": fmt.Errorf("%w: %v", common.ErrStorageCorrupted, err),
		})
		return model.Budget{}, false, nil
	}

	budget, err := rec.Budget()
	if err != nil {
		common.LogWarn("Discarding invalid budget record", common.Fields{
			"key":   BudgetKey,
			"error": fmt.Errorf("%w: %v", common.ErrStorageCorrupted, err),
		})
		return model.Budget{}, false, nil
	}

	return budget, true, nil
}
