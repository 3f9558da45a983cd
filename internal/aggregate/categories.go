package aggregate

import (
	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
)

// CategoryTotal is the spend recorded against one category.
type CategoryTotal struct {
	Category model.Category
	Amount   decimal.Decimal
	Count    int
}

// Totals lists category totals in enumeration order.
type Totals []CategoryTotal

// Amount returns the total for c, or zero when c is absent.
func (t Totals) Amount(c model.Category) decimal.Decimal {
	for _, ct := range t {
		if ct.Category == c {
			return ct.Amount
		}
	}
	return decimal.Zero
}

// Sum adds up every bucket.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, ct := range t {
		sum = sum.Add(ct.Amount)
	}
	return sum
}

// Map returns the totals keyed by category.
func (t Totals) Map() map[model.Category]decimal.Decimal {
	m := make(map[model.Category]decimal.Decimal, len(t))
	for _, ct := range t {
		m[ct.Category] = ct.Amount
	}
	return m
}

// CategoryTotals starts every listed category at zero and accumulates each
// expense into its bucket. Expenses whose category is not listed are dropped.
func CategoryTotals(expenses []model.Expense, categories []model.Category) Totals {
	totals := make(Totals, len(categories))
	index := make(map[model.Category]int, len(categories))
	for i, c := range categories {
		totals[i] = CategoryTotal{Category: c, Amount: decimal.Zero}
		index[c] = i
	}

	for _, e := range expenses {
		i, ok := index[e.Category]
		if !ok {
			continue
		}
		totals[i].Amount = totals[i].Amount.Add(e.Amount)
		totals[i].Count++
	}
	return totals
}

// ChartableCategories keeps only strictly positive totals.
func ChartableCategories(totals Totals) Totals {
	out := make(Totals, 0, len(totals))
	for _, ct := range totals {
		if ct.Amount.IsPositive() {
			out = append(out, ct)
		}
	}
	return out
}

// Share is one slice of the category chart.
type Share struct {
	CategoryTotal
	Percent float64
}

// Shares expresses each chartable total as a percentage of their sum.
func Shares(totals Totals) []Share {
	chartable := ChartableCategories(totals)
	sum := chartable.Sum()

	shares := make([]Share, 0, len(chartable))
	for _, ct := range chartable {
		shares = append(shares, Share{
			CategoryTotal: ct,
			Percent:       ct.Amount.Div(sum).Mul(hundred).InexactFloat64(),
		})
	}
	return shares
}
