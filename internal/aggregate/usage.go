package aggregate

import (
	"fmt"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// Usage is how much of the monthly budget has been consumed.
type Usage struct {
	Remaining decimal.Decimal
	Percent   float64
}

// BudgetUsage compares the month's spend with the budget. The budget must
// satisfy its invariants, so TotalBudget is positive.
func BudgetUsage(monthTotal decimal.Decimal, budget model.Budget) Usage {
	return Usage{
		Remaining: budget.TotalBudget.Sub(monthTotal),
		Percent:   monthTotal.Div(budget.TotalBudget).Mul(hundred).InexactFloat64(),
	}
}

// AlertLevel is the tier of a budget alert.
type AlertLevel int

const (
	AlertOK AlertLevel = iota
	AlertWarning
	AlertExceeded
)

func (l AlertLevel) String() string {
	switch l {
	case AlertWarning:
		return "warning"
	case AlertExceeded:
		return "exceeded"
	default:
		return "ok"
	}
}

// Severity maps the level onto a banner style: "danger", "warning" or "".
func (l AlertLevel) Severity() string {
	switch l {
	case AlertWarning:
		return "warning"
	case AlertExceeded:
		return "danger"
	default:
		return ""
	}
}

// Alert is the banner shown for the current usage. Ok alerts have no message.
type Alert struct {
	Message string
	Level   AlertLevel
}

// Visible reports whether the alert should be surfaced.
func (a Alert) Visible() bool {
	return a.Level != AlertOK
}

// Fixed advisory texts.
const (
	MessageExceeded = "⚠️ Budget exceeded! You have spent more than planned this month."
	messageWarning  = "⚠️ Heads up: you have used %.1f%% of your budget this month."

	TipExceeded    = "Try to cut back on non-essential spending this month."
	TipApproaching = "You are approaching your limit. Keep an eye on your spending."
	TipMidpoint    = "You are halfway there. Keep managing your budget well!"
	TipHealthy     = "Excellent! You are managing your budget well. Keep it up!"
)

// ClassifyAlert tiers the usage: at or above 100 is exceeded, at or above
// the threshold is a warning, anything else is ok.
func ClassifyAlert(percent, threshold float64) Alert {
	switch {
	case percent >= 100:
		return Alert{Level: AlertExceeded, Message: MessageExceeded}
	case percent >= threshold:
		return Alert{Level: AlertWarning, Message: fmt.Sprintf(messageWarning, percent)}
	default:
		return Alert{Level: AlertOK}
	}
}

// BudgetTip picks the advisory line shown under the budget.
func BudgetTip(percent, threshold float64) string {
	switch {
	case percent >= 100:
		return TipExceeded
	case percent >= threshold:
		return TipApproaching
	case percent >= 50:
		return TipMidpoint
	default:
		return TipHealthy
	}
}
