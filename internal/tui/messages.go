package tui

import (
	"time"

	"github.com/Veraticus/studmoney/internal/aggregate"
	"github.com/Veraticus/studmoney/internal/model"
)

// dataLoadedMsg carries a fresh snapshot of the tracker.
type dataLoadedMsg struct {
	loadedAt  time.Time
	budget    model.Budget
	summary   aggregate.DashboardSummary
	breakdown aggregate.Totals
	expenses  []model.Expense
}

// tickMsg triggers a periodic reload.
type tickMsg time.Time
