// Package budget holds the single monthly budget record.
package budget

import (
	"context"
	"fmt"
	"sync"

	"github.com/Veraticus/studmoney/internal/common"
	"github.com/Veraticus/studmoney/internal/model"
)

// Store persists the budget record.
type Store interface {
	SaveBudget(ctx context.Context, budget model.Budget) error
	LoadBudget(ctx context.Context) (model.Budget, bool, error)
}

// State owns the current budget. Until Load or Set succeeds it reports
// the default budget.
type State struct {
	store   Store
	current model.Budget
	mu      sync.RWMutex
}

// NewState creates a State holding the default budget.
func NewState(store Store) *State {
	return &State{
		store:   store,
		current: model.DefaultBudget(),
	}
}

// Get returns the current budget.
func (s *State) Get() model.Budget {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current
}

// Set validates and persists a new budget, replacing the current one.
// The current budget is unchanged if validation or persistence fails.
func (s *State) Set(ctx context.Context, in model.BudgetInput) (model.Budget, error) {
	if err := in.Validate(); err != nil {
		return model.Budget{}, err
	}
	next := in.ToBudget()

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SaveBudget(ctx, next); err != nil {
		return model.Budget{}, fmt.Errorf("failed to persist budget: %w", err)
	}
	s.current = next

	common.LogDebug("Updated budget", common.Fields{
		"total":     next.TotalBudget.String(),
		"threshold": next.AlertThreshold,
	})
	return next, nil
}

// InitializeDefault persists the default budget.
func (s *State) InitializeDefault(ctx context.Context) error {
	if _, err := s.Set(ctx, model.DefaultBudget().Input()); err != nil {
		return fmt.Errorf("failed to initialize default budget: %w", err)
	}
	return nil
}

// Load reads the persisted budget, writing the default when none is
// stored or the stored one is unusable.
func (s *State) Load(ctx context.Context) error {
	b, ok, err := s.store.LoadBudget(ctx)
	if err != nil {
		return fmt.Errorf("failed to load budget: %w", err)
	}
	if !ok {
		common.LogInfo("No budget found, writing default", common.Fields{
			"total":     model.DefaultTotalBudget,
			"threshold": model.DefaultAlertThreshold,
		})
		return s.InitializeDefault(ctx)
	}

	s.mu.Lock()
	s.current = b
	s.mu.Unlock()
	return nil
}
