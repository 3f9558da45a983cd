package aggregate

import (
	"strings"

	"github.com/Veraticus/studmoney/internal/model"
)

// SearchPredicate matches expenses whose title or description contains
// term (case-insensitive) and, when category is non-empty, whose category
// equals it exactly. A missing description never matches.
func SearchPredicate(term string, category model.Category) func(model.Expense) bool {
	needle := strings.ToLower(term)
	return func(e model.Expense) bool {
		if category != "" && e.Category != category {
			return false
		}
		if strings.Contains(strings.ToLower(e.Title), needle) {
			return true
		}
		return e.HasDescription() && strings.Contains(strings.ToLower(e.Description), needle)
	}
}

// FilterExpenses returns the matching subsequence, preserving order.
func FilterExpenses(expenses []model.Expense, term string, category model.Category) []model.Expense {
	match := SearchPredicate(term, category)
	out := make([]model.Expense, 0, len(expenses))
	for _, e := range expenses {
		if match(e) {
			out = append(out, e)
		}
	}
	return out
}
