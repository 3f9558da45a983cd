package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/Veraticus/studmoney/internal/model"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingStore struct {
	err error
}

func (f failingStore) Save(context.Context, string, []byte) error { return f.err }
func (f failingStore) Load(context.Context, string) ([]byte, bool, error) {
	return nil, false, f.err
}
func (f failingStore) Close() error { return nil }

func newTestAdapter(t *testing.T) (*Adapter, *MemoryStorage) {
	t.Helper()
	mem := NewMemoryStorage()
	a, err := NewAdapter(mem)
	require.NoError(t, err)
	return a, mem
}

func sampleExpenses() []model.Expense {
	return []model.Expense{
		{ID: "3", Title: "Cinema", Amount: decimal.NewFromInt(2500), Category: model.CategoryLeisure, Date: model.NewDate(2024, 6, 14)},
		{ID: "2", Title: "Bus", Amount: decimal.RequireFromString("350.50"), Category: model.CategoryTransport, Date: model.NewDate(2024, 6, 12), Description: "to campus"},
		{ID: "1", Title: "Lunch", Amount: decimal.NewFromInt(1500), Category: model.CategoryFood, Date: model.NewDate(2024, 6, 10)},
	}
}

func TestAdapter_ExpensesRoundTrip(t *testing.T) {
	a, _ := newTestAdapter(t)
	ctx := context.Background()

	want := sampleExpenses()
	require.NoError(t, a.SaveExpenses(ctx, want))

	got, err := a.LoadExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, got, len(want))
	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID, "order must be preserved")
		assert.True(t, want[i].Amount.Equal(got[i].Amount))
		assert.Equal(t, want[i].Date, got[i].Date)
		assert.Equal(t, want[i].Description, got[i].Description)
	}
}

func TestAdapter_SQLiteRoundTrip(t *testing.T) {
	a, err := NewAdapter(createTestStorage(t))
	require.NoError(t, err)
	ctx := context.Background()

	require.NoError(t, a.SaveExpenses(ctx, sampleExpenses()))
	got, err := a.LoadExpenses(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestAdapter_LoadExpensesMissing(t *testing.T) {
	a, _ := newTestAdapter(t)
	got, err := a.LoadExpenses(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAdapter_LoadExpensesCorrupted(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		wantIDs []string
	}{
		{name: "not json", payload: `{{{`, wantIDs: []string{}},
		{name: "wrong top-level shape", payload: `{"id":"1"}`, wantIDs: []string{}},
		{name: "null", payload: `null`, wantIDs: []string{}},
		{
			name: "bad entries dropped individually",
			payload: `[
				{"id":"a","title":"Lunch","amount":10,"category":"Food","date":"2024-06-15"},
				{"id":"b","title":"","amount":10,"category":"Food","date":"2024-06-15"},
				{"id":"c","title":"Bus","amount":-4,"category":"Transport","date":"2024-06-15"},
				{"id":"d","title":"Book","amount":"oops","category":"Education","date":"2024-06-15"},
				"garbage",
				{"id":"e","title":"Snack","amount":3,"category":"Snacks","date":"2024-06-15"},
				{"id":"a","title":"Dup","amount":1,"category":"Food","date":"2024-06-15"}
			]`,
			wantIDs: []string{"a", "e"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, mem := newTestAdapter(t)
			ctx := context.Background()
			require.NoError(t, mem.Save(ctx, ExpensesKey, []byte(tt.payload)))

			got, err := a.LoadExpenses(ctx)
			require.NoError(t, err)

			ids := make([]string, 0, len(got))
			for _, e := range got {
				ids = append(ids, e.ID)
			}
			assert.Equal(t, tt.wantIDs, ids)
		})
	}
}

func TestAdapter_UnknownCategoryPreserved(t *testing.T) {
	a, mem := newTestAdapter(t)
	ctx := context.Background()
	require.NoError(t, mem.Save(ctx, ExpensesKey,
		[]byte(`[{"id":"x","title":"Gum","amount":1,"category":"Snacks","date":"2024-06-15"}]`)))

	got, err := a.LoadExpenses(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, model.Category("Snacks"), got[0].Category)

	require.NoError(t, a.SaveExpenses(ctx, got))
	raw, _, err := mem.Load(ctx, ExpensesKey)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"category":"Snacks"`)
}

func TestAdapter_Budget(t *testing.T) {
	a, mem := newTestAdapter(t)
	ctx := context.Background()

	_, ok, err := a.LoadBudget(ctx)
	require.NoError(t, err)
	assert.False(t, ok)

	want := model.Budget{TotalBudget: decimal.NewFromInt(300000), AlertThreshold: 65}
	require.NoError(t, a.SaveBudget(ctx, want))

	raw, _, err := mem.Load(ctx, BudgetKey)
	require.NoError(t, err)
	assert.JSONEq(t, `{"totalBudget":300000,"alertThreshold":65}`, string(raw))

	got, ok, err := a.LoadBudget(ctx)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.True(t, want.TotalBudget.Equal(got.TotalBudget))
	assert.Equal(t, want.AlertThreshold, got.AlertThreshold)
}

func TestAdapter_BudgetCorrupted(t *testing.T) {
	for _, payload := range []string{`nope`, `{}`, `{"totalBudget":-5,"alertThreshold":80}`, `{"totalBudget":100,"alertThreshold":120}`} {
		a, mem := newTestAdapter(t)
		ctx := context.Background()
		require.NoError(t, mem.Save(ctx, BudgetKey, []byte(payload)))

		_, ok, err := a.LoadBudget(ctx)
		require.NoError(t, err, payload)
		assert.False(t, ok, payload)
	}
}

func TestAdapter_IOErrorsReturned(t *testing.T) {
	boom := errors.New("disk unplugged")
	a, err := NewAdapter(failingStore{err: boom})
	require.NoError(t, err)
	ctx := context.Background()

	assert.ErrorIs(t, a.SaveExpenses(ctx, sampleExpenses()), boom)
	_, err = a.LoadExpenses(ctx)
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, a.SaveBudget(ctx, model.DefaultBudget()), boom)
	_, _, err = a.LoadBudget(ctx)
	assert.ErrorIs(t, err, boom)
}

func TestNewAdapter_NilStore(t *testing.T) {
	_, err := NewAdapter(nil)
	assert.ErrorIs(t, err, ErrNilStore)
}
