package ledger

import (
	"context"
	"sort"
	"time"

	"golang.org/x/sync/errgroup"

	"weeklybudget/internal/core"
	applog "weeklybudget/internal/log"
)

// CurrentWeek is the open week as the home view shows it.
type CurrentWeek struct {
	WeekStart time.Time
	WeekEnd   time.Time
	Range     string
	Expenses  []core.Expense
	Income    []core.Income
	Summary   core.Summary
}

// GetArchivedWeeks returns the archive in stored (oldest first) order. It
// does not run the rollover check.
func (l *Ledger) GetArchivedWeeks(ctx context.Context) []core.WeekRecord {
	archived := l.readArchive(ctx)
	for i := range archived {
		archived[i] = localizeWeek(archived[i], l.loc)
	}
	return archived
}

func (l *Ledger) readArchive(ctx context.Context) []core.WeekRecord {
	list, err := loadList[core.WeekRecord](ctx, l.store, KeyArchivedWeeks)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpList, KeyArchivedWeeks, err))
		return []core.WeekRecord{}
	}
	return list
}

// AllWeeks returns the current week followed by every archived week, most
// recent first.
//
// The current week is included when it has transactions, or when the
// archive is empty so a fresh install still shows one (empty) week.
func (l *Ledger) AllWeeks(ctx context.Context) []core.WeekRecord {
	l.CheckRollover(ctx)

	release, err := l.locks.acquire(ctx, KeyExpenses, KeyIncome, KeyArchivedWeeks)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpList, "", err))
		return []core.WeekRecord{}
	}
	defer release()

	var (
		expenses []core.Expense
		income   []core.Income
		archived []core.WeekRecord
		g        errgroup.Group
	)
	g.Go(func() error { expenses = l.readExpenses(ctx); return nil })
	g.Go(func() error { income = l.readIncome(ctx); return nil })
	g.Go(func() error { archived = l.readArchive(ctx); return nil })
	_ = g.Wait()

	weeks := make([]core.WeekRecord, 0, len(archived)+1)
	if len(expenses) > 0 || len(income) > 0 || len(archived) == 0 {
		weeks = append(weeks, core.NewWeekRecord(
			l.CurrentWeekStart(),
			localizeExpenses(expenses, l.loc),
			localizeIncome(income, l.loc),
			true,
		))
	}
	for _, w := range archived {
		w.IsCurrent = false
		weeks = append(weeks, localizeWeek(w, l.loc))
	}

	sort.SliceStable(weeks, func(a, b int) bool {
		return weeks[a].WeekStart.After(weeks[b].WeekStart)
	})
	return weeks
}

// CurrentWeekView loads the open week together with its summary against the
// weekly limit.
func (l *Ledger) CurrentWeekView(ctx context.Context) CurrentWeek {
	l.CheckRollover(ctx)

	var (
		expenses []core.Expense
		income   []core.Income
		limit    core.Money
		g        errgroup.Group
	)
	g.Go(func() error { expenses = l.readExpenses(ctx); return nil })
	g.Go(func() error { income = l.readIncome(ctx); return nil })
	g.Go(func() error { limit = l.GetWeeklyLimit(ctx); return nil })
	_ = g.Wait()

	start := l.CurrentWeekStart()
	return CurrentWeek{
		WeekStart: start,
		WeekEnd:   core.WeekEnd(start),
		Range:     core.FormatWeekRange(start),
		Expenses:  localizeExpenses(expenses, l.loc),
		Income:    localizeIncome(income, l.loc),
		Summary:   core.CurrentWeekSummary(expenses, income, limit),
	}
}

// WeekDetail finds the week starting at weekStart among AllWeeks and builds
// its detail view against the current weekly limit.
func (l *Ledger) WeekDetail(ctx context.Context, weekStart time.Time) (core.WeekDetail, bool) {
	target := core.WeekStart(weekStart.In(l.loc))
	for _, w := range l.AllWeeks(ctx) {
		if w.WeekStart.Equal(target) {
			return core.NewWeekDetail(w, l.GetWeeklyLimit(ctx)), true
		}
	}
	return core.WeekDetail{}, false
}
