// Package ledger holds the append-only, newest-first expense collection.
package ledger

import (
	"context"
	"fmt"
	"iter"
	"slices"
	"sync"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/google/uuid"
)

// Store persists the whole expense collection.
type Store interface {
	SaveExpenses(ctx context.Context, expenses []model.Expense) error
	LoadExpenses(ctx context.Context) ([]model.Expense, error)
}

// IDGenerator returns a new unique expense id.
type IDGenerator func() (string, error)

// Option configures a Repository.
type Option func(*Repository)

// WithIDGenerator overrides the UUIDv7 id source.
func WithIDGenerator(gen IDGenerator) Option {
	return func(r *Repository) {
		r.newID = gen
	}
}

// Repository is the in-memory expense collection backed by a Store.
// Index 0 is always the most recently added expense.
type Repository struct {
	store    Store
	newID    IDGenerator
	expenses []model.Expense
	mu       sync.RWMutex
}

// NewRepository creates an empty repository. Call LoadFromStorage to
// rehydrate persisted expenses.
func NewRepository(store Store, opts ...Option) *Repository {
	r := &Repository{
		store:    store,
		newID:    uuidV7,
		expenses: []model.Expense{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func uuidV7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

// Add validates the input, assigns an id when none is given, prepends the
// expense and persists the collection. On any error the collection is
// left unchanged.
func (r *Repository) Add(ctx context.Context, in model.ExpenseInput) (model.Expense, error) {
	if err := in.Validate(); err != nil {
		return model.Expense{}, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	id := in.ID
	if id == "" {
		generated, err := r.newID()
		if err != nil {
			return model.Expense{}, fmt.Errorf("failed to generate expense id: %w", err)
		}
		id = generated
	}
	if r.indexOf(id) >= 0 {
		return model.Expense{}, model.NewValidationError("id", "already exists")
	}

	exp, err := in.ToExpense(id)
	if err != nil {
		return model.Expense{}, err
	}

	next := make([]model.Expense, 0, len(r.expenses)+1)
	next = append(next, exp)
	next = append(next, r.expenses...)

	if err := r.store.SaveExpenses(ctx, next); err != nil {
		return model.Expense{}, fmt.Errorf("failed to persist expense: %w", err)
	}
	r.expenses = next

	common.LogDebug("Recorded expense", common.Fields{
		"id":       exp.ID,
		"category": string(exp.Category),
		"count":    len(next),
	})

	return exp, nil
}

func (r *Repository) indexOf(id string) int {
	return slices.IndexFunc(r.expenses, func(e model.Expense) bool { return e.ID == id })
}

// Contains reports whether an expense with id exists.
func (r *Repository) Contains(id string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.indexOf(id) >= 0
}

// List returns a copy of the collection, newest first.
func (r *Repository) List() []model.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.expenses)
}

// Len returns the number of expenses.
func (r *Repository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.expenses)
}

// Recent returns up to n of the most recently added expenses.
func (r *Repository) Recent(n int) []model.Expense {
	r.mu.RLock()
	defer r.mu.RUnlock()
	if n < 0 {
		n = 0
	}
	return slices.Clone(r.expenses[:min(n, len(r.expenses))])
}

// Query lazily yields the expenses matching pred, in collection order.
// It iterates over a snapshot taken when iteration starts.
func (r *Repository) Query(pred func(model.Expense) bool) iter.Seq[model.Expense] {
	return func(yield func(model.Expense) bool) {
		r.mu.RLock()
		snapshot := r.expenses
		r.mu.RUnlock()

		for _, e := range snapshot {
			if pred != nil && !pred(e) {
				continue
			}
			if !yield(e) {
				return
			}
		}
	}
}

// LoadFromStorage replaces the in-memory collection with the persisted one.
func (r *Repository) LoadFromStorage(ctx context.Context) error {
	expenses, err := r.store.LoadExpenses(ctx)
	if err != nil {
		return fmt.Errorf("failed to load expenses: %w", err)
	}
	if expenses == nil {
		expenses = []model.Expense{}
	}

	r.mu.Lock()
	r.expenses = expenses
	r.mu.Unlock()

	common.LogDebug("Loaded expenses", common.Fields{"count": len(expenses)})
	return nil
}
