package ledger

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"weeklybudget/internal/core"
	"weeklybudget/internal/kv"
)

// loadList reads a JSON array document. A missing or empty value is an
// empty list.
func loadList[T any](ctx context.Context, store kv.Store, key string) ([]T, error) {
	raw, ok, err := store.Get(ctx, key)
	if err != nil {
		return nil, err
	}
	out := []T{}
	if !ok || raw == "" {
		return out, nil
	}
	if err := json.Unmarshal([]byte(raw), &out); err != nil {
		return nil, fmt.Errorf("decode %s: %w", key, err)
	}
	if out == nil {
		out = []T{}
	}
	return out, nil
}

func saveList[T any](ctx context.Context, store kv.Store, key string, list []T) error {
	if list == nil {
		list = []T{}
	}
	raw, err := json.Marshal(list)
	if err != nil {
		return fmt.Errorf("encode %s: %w", key, err)
	}
	return store.Set(ctx, key, string(raw))
}

// Stored timestamps are UTC; everything handed to callers is in the
// ledger's zone.

func localizeExpenses(list []core.Expense, loc *time.Location) []core.Expense {
	out := make([]core.Expense, len(list))
	for i, e := range list {
		e.Date = e.Date.In(loc)
		out[i] = e
	}
	return out
}

func localizeIncome(list []core.Income, loc *time.Location) []core.Income {
	out := make([]core.Income, len(list))
	for i, in := range list {
		in.Date = in.Date.In(loc)
		out[i] = in
	}
	return out
}

func localizeWeek(w core.WeekRecord, loc *time.Location) core.WeekRecord {
	w.WeekStart = w.WeekStart.In(loc)
	w.Expenses = localizeExpenses(w.Expenses, loc)
	w.Income = localizeIncome(w.Income, loc)
	return w
}
