package ledger

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"weeklybudget/internal/core"
	"weeklybudget/internal/kv/memory"
)

func TestAllWeeksFreshInstall(t *testing.T) {
	l := newTestLedger(t, memory.New(), newTestClock(wednesday))

	weeks := l.AllWeeks(context.Background())
	require.Len(t, weeks, 1)
	assert.True(t, weeks[0].IsCurrent)
	assert.True(t, weeks[0].WeekStart.Equal(thisMonday))
	assert.Empty(t, weeks[0].Expenses)
	assert.Empty(t, weeks[0].Income)
	assert.Equal(t, core.Money{}, weeks[0].Total)
}

func TestAllWeeksHidesEmptyCurrentWeekOnceArchived(t *testing.T) {
	ctx := context.Background()
	clock := newTestClock(wednesday)
	l := newTestLedger(t, memory.New(), clock)

	_, err := l.AddExpense(ctx, core.ExpenseDraft{Amount: core.Money{Cents: 1234}, Category: core.Shopping})
	require.NoError(t, err)

	clock.Set(thisMonday.AddDate(0, 0, 7).Add(8 * time.Hour))
	weeks := l.AllWeeks(ctx)
	require.Len(t, weeks, 1)
	assert.False(t, weeks[0].IsCurrent)
	assert.True(t, weeks[0].WeekStart.Equal(thisMonday))
	assert.Equal(t, int64(1234), weeks[0].Total.Cents)
}

func TestAllWeeksNewestFirst(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seed(t, store, KeyLastReset, core.FormatTimestamp(thisMonday))
	seed(t, store, KeyArchivedWeeks, []core.WeekRecord{
		core.NewWeekRecord(lastMonday, []core.Expense{expense("a", 500, core.Food, lastMonday)}, nil, false),
		core.NewWeekRecord(mondayBefore, nil, []core.Income{income("b", 700, mondayBefore)}, false),
	})
	l := newTestLedger(t, store, newTestClock(wednesday))

	_, err := l.AddIncome(ctx, core.Money{Cents: 300})
	require.NoError(t, err)

	weeks := l.AllWeeks(ctx)
	require.Len(t, weeks, 3)
	assert.True(t, weeks[0].WeekStart.Equal(thisMonday))
	assert.True(t, weeks[0].IsCurrent)
	assert.Equal(t, int64(-300), weeks[0].Total.Cents)
	assert.True(t, weeks[1].WeekStart.Equal(lastMonday))
	assert.True(t, weeks[2].WeekStart.Equal(mondayBefore))
	assert.False(t, weeks[1].IsCurrent || weeks[2].IsCurrent)
	assert.Equal(t, int64(-700), weeks[2].Total.Cents)
}

func TestGetArchivedWeeksDoesNotRollOver(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedPreviousWeek(t, store, lastMonday)
	l := newTestLedger(t, store, newTestClock(wednesday))

	assert.Empty(t, l.GetArchivedWeeks(ctx))
	assert.Len(t, stored[core.Expense](t, store, KeyExpenses), 2)
}

func TestCurrentWeekView(t *testing.T) {
	ctx := context.Background()
	l := newTestLedger(t, memory.New(), newTestClock(wednesday))

	require.NoError(t, l.SetWeeklyLimit(ctx, core.Money{Cents: 10000}))
	_, err := l.AddExpense(ctx, core.ExpenseDraft{Amount: core.Money{Cents: 3000}, Category: core.Food})
	require.NoError(t, err)
	_, err = l.AddIncome(ctx, core.Money{Cents: 1000})
	require.NoError(t, err)

	view := l.CurrentWeekView(ctx)
	assert.Equal(t, "Mar 11 - Mar 17, 2024", view.Range)
	assert.True(t, view.WeekStart.Equal(thisMonday))
	assert.True(t, view.WeekEnd.Equal(time.Date(2024, 3, 17, 23, 59, 59, 999e6, time.UTC)))
	assert.Len(t, view.Expenses, 1)
	assert.Len(t, view.Income, 1)
	assert.Equal(t, int64(8000), view.Summary.Remaining.Cents)
	assert.InDelta(t, 30.0, view.Summary.PercentageUsed, 1e-9)
}

func TestWeekDetail(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	seedPreviousWeek(t, store, lastMonday)
	l := newTestLedger(t, store, newTestClock(wednesday))
	require.NoError(t, l.SetWeeklyLimit(ctx, core.Money{Cents: 3500}))

	detail, ok := l.WeekDetail(ctx, lastMonday.Add(50*time.Hour))
	require.True(t, ok)
	assert.Equal(t, "Mar 4 - Mar 10, 2024", detail.Range)
	require.Len(t, detail.Breakdown, 2)
	assert.Equal(t, core.Food, detail.Breakdown[0].Category)
	assert.InDelta(t, 75.0, detail.Breakdown[0].PercentageOfTotal, 1e-9)
	assert.Equal(t, "e2", detail.Expenses[0].ID, "newest first")
	assert.Equal(t, int64(-500), detail.Remaining.Cents)
	assert.True(t, detail.OverLimit)

	_, ok = l.WeekDetail(ctx, mondayBefore)
	assert.False(t, ok)
}
