package ledger

import (
	"context"
	"fmt"
	"time"

	"weeklybudget/internal/core"
	applog "weeklybudget/internal/log"
)

// RolloverState is the outcome of comparing the recorded week with now.
type RolloverState int

const (
	NoResetRecorded RolloverState = iota
	SameWeek
	NewWeek
)

func (s RolloverState) String() string {
	switch s {
	case NoResetRecorded:
		return "no_reset_recorded"
	case SameWeek:
		return "same_week"
	case NewWeek:
		return "new_week"
	default:
		return "unknown"
	}
}

// CheckRollover detects a week boundary crossing and, if there was one,
// archives the outgoing week and clears the current lists. It reports
// whether a rollover happened.
//
// Only the week recorded in lastReset is archived. If several weeks passed
// without any access, the weeks in between were never open and produce no
// archive entry; the transactions still pending all land in the recorded
// week.
//
// CheckRollover never fails. A failed archive is logged and the rollover
// still counts as done; the lists are left in place, so their transactions
// roll into the new week and are archived with it.
func (l *Ledger) CheckRollover(ctx context.Context) bool {
	release, err := l.locks.acquire(ctx, rolloverKeys...)
	if err != nil {
		_ = l.handle(ctx, newError(KindRollover, applog.OpRollover, "", err))
		return false
	}
	defer release()

	now := l.now()
	currentWeek := core.WeekStart(now)

	state, lastResetWeek, err := l.rolloverState(ctx, currentWeek)
	if err != nil {
		_ = l.handle(ctx, newError(KindRollover, applog.OpRollover, KeyLastReset, err))
		return false
	}

	switch state {
	case SameWeek:
		return false
	case NoResetRecorded:
		if err := l.store.Set(ctx, KeyLastReset, core.FormatTimestamp(currentWeek)); err != nil {
			_ = l.handle(ctx, newError(KindRollover, applog.OpRollover, KeyLastReset, err))
		}
		return false
	}

	if err := l.store.Set(ctx, KeyLastReset, core.FormatTimestamp(currentWeek)); err != nil {
		_ = l.handle(ctx, newError(KindRollover, applog.OpRollover, KeyLastReset, err))
		return false
	}

	if err := l.archive(ctx, lastResetWeek); err != nil {
		_ = l.handle(ctx, newError(KindRollover, applog.OpArchive, KeyArchivedWeeks, err))
	}
	return true
}

// rolloverState reads lastReset and classifies it against currentWeek. An
// unparsable value is treated as never recorded.
func (l *Ledger) rolloverState(ctx context.Context, currentWeek time.Time) (RolloverState, time.Time, error) {
	raw, ok, err := l.store.Get(ctx, KeyLastReset)
	if err != nil {
		return 0, time.Time{}, err
	}
	if !ok || raw == "" {
		return NoResetRecorded, time.Time{}, nil
	}

	lastReset, err := core.ParseTimestamp(raw)
	if err != nil {
		l.logger.WarnContext(ctx, "Unreadable lastReset, starting over",
			applog.FieldKey, KeyLastReset, applog.FieldError, err)
		return NoResetRecorded, time.Time{}, nil
	}

	lastResetWeek := core.WeekStart(lastReset.In(l.loc))
	if lastResetWeek.Equal(currentWeek) {
		return SameWeek, lastResetWeek, nil
	}
	return NewWeek, lastResetWeek, nil
}

// archive moves the current lists into the archive under weekStart and
// empties them. Caller holds rolloverKeys.
func (l *Ledger) archive(ctx context.Context, weekStart time.Time) error {
	expenses, err := loadList[core.Expense](ctx, l.store, KeyExpenses)
	if err != nil {
		return fmt.Errorf("read expenses: %w", err)
	}
	income, err := loadList[core.Income](ctx, l.store, KeyIncome)
	if err != nil {
		return fmt.Errorf("read income: %w", err)
	}
	archived, err := loadList[core.WeekRecord](ctx, l.store, KeyArchivedWeeks)
	if err != nil {
		return fmt.Errorf("read archive: %w", err)
	}

	for _, w := range archived {
		if w.WeekStart.Equal(weekStart) {
			return fmt.Errorf("%w: %s", ErrWeekAlreadyArchived, core.FormatTimestamp(weekStart))
		}
	}

	week := core.NewWeekRecord(weekStart.UTC(), expenses, income, false)
	previous := archived
	archived = append(archived, week)

	if err := saveList(ctx, l.store, KeyArchivedWeeks, archived); err != nil {
		return fmt.Errorf("write archive: %w", err)
	}
	if err := saveList(ctx, l.store, KeyExpenses, []core.Expense{}); err != nil {
		return l.undoArchive(ctx, previous, nil, fmt.Errorf("clear expenses: %w", err))
	}
	if err := saveList(ctx, l.store, KeyIncome, []core.Income{}); err != nil {
		return l.undoArchive(ctx, previous, expenses, fmt.Errorf("clear income: %w", err))
	}

	l.logger.WithComponent(applog.ComponentRollover).InfoContext(ctx, "Week archived",
		applog.FieldWeekStart, core.FormatTimestamp(weekStart),
		applog.FieldAmountCents, week.Total.Cents,
		applog.FieldCount, len(expenses)+len(income))

	if l.notifier != nil {
		if err := l.notifier.WeekArchived(ctx, localizeWeek(week, l.loc)); err != nil {
			l.logger.WarnContext(ctx, "Failed to publish week archived notification",
				applog.FieldWeekStart, core.FormatTimestamp(weekStart), applog.FieldError, err)
		}
	}
	return nil
}

// undoArchive puts the archive back to previous after a list could not be
// cleared, so no transaction ends up both archived and still open. A non-nil
// clearedExpenses is restored too. Caller holds rolloverKeys.
func (l *Ledger) undoArchive(ctx context.Context, previous []core.WeekRecord, clearedExpenses []core.Expense, cause error) error {
	if clearedExpenses != nil {
		if err := saveList(ctx, l.store, KeyExpenses, clearedExpenses); err != nil {
			return fmt.Errorf("%w; restore expenses: %v", cause, err)
		}
	}
	if err := saveList(ctx, l.store, KeyArchivedWeeks, previous); err != nil {
		return fmt.Errorf("%w; undo archive: %v", cause, err)
	}
	return cause
}
