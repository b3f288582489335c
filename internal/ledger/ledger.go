// Package ledger owns the current week's transactions, the weekly limit and
// the archive of past weeks, all persisted through a kv.Store.
//
// Every entry point that touches the current week first runs the rollover
// check, so a week boundary is noticed lazily on the first access after it.
// Reads never fail: storage errors are logged and answered with a default.
// Mutations propagate storage errors. See RecoveryFor for the full policy.
package ledger

import (
	"context"
	"errors"
	"slices"
	"strings"
	"time"

	"github.com/google/uuid"

	"weeklybudget/internal/core"
	"weeklybudget/internal/kv"
	applog "weeklybudget/internal/log"
)

// Notifier is told about every week the rollover archives.
type Notifier interface {
	WeekArchived(ctx context.Context, week core.WeekRecord) error
}

type Options struct {
	Logger *applog.Logger
	// Location decides where weeks start. Defaults to time.Local.
	Location *time.Location
	// Now defaults to time.Now.
	Now func() time.Time
	// NewID mints transaction ids. Defaults to time-ordered UUIDv7.
	NewID func() (string, error)
	// Notifier is optional.
	Notifier Notifier
}

// Ledger is the weekly ledger. It is safe for concurrent use: each stored
// document has its own lock, so concurrent adds and deletes never lose
// updates.
type Ledger struct {
	store    kv.Store
	logger   *applog.Logger
	loc      *time.Location
	clock    func() time.Time
	newID    func() (string, error)
	notifier Notifier
	locks    *keyLocks
}

func New(store kv.Store, opts Options) *Ledger {
	l := &Ledger{
		store:    store,
		logger:   opts.Logger,
		loc:      opts.Location,
		clock:    opts.Now,
		newID:    opts.NewID,
		notifier: opts.Notifier,
		locks:    newKeyLocks(),
	}
	if l.logger == nil {
		l.logger = applog.Discard()
	}
	l.logger = l.logger.WithComponent(applog.ComponentLedger)
	if l.loc == nil {
		l.loc = time.Local
	}
	if l.clock == nil {
		l.clock = time.Now
	}
	if l.newID == nil {
		l.newID = newUUIDv7
	}
	return l
}

func newUUIDv7() (string, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return "", err
	}
	return id.String(), nil
}

func (l *Ledger) now() time.Time {
	return l.clock().In(l.loc)
}

// Location returns the zone weeks are computed in.
func (l *Ledger) Location() *time.Location {
	return l.loc
}

// CurrentWeekStart returns the Monday starting the week that contains now.
func (l *Ledger) CurrentWeekStart() time.Time {
	return core.WeekStart(l.now())
}

// handle applies the declared recovery for e. It returns e when the
// failure must reach the caller and nil when it has been absorbed.
func (l *Ledger) handle(ctx context.Context, e *Error) error {
	fields := applog.NewFields().
		WithOperation(e.Op).
		WithKey(e.Key).
		WithErrorKind(e.Kind.String()).
		WithError(e.Err).
		ToSlice()

	switch RecoveryFor(e.Kind) {
	case UseDefault:
		l.logger.WarnContext(ctx, "Storage read failed, using default", fields...)
		return nil
	case LogAndContinue:
		l.logger.ErrorContext(ctx, "Rollover step failed", fields...)
		return nil
	default:
		if e.Kind == KindValidation {
			l.logger.DebugContext(ctx, "Rejected invalid input", fields...)
		} else {
			l.logger.ErrorContext(ctx, "Ledger operation failed", fields...)
		}
		return e
	}
}

// GetWeeklyLimit returns the configured limit, or zero when it is unset or
// unreadable.
func (l *Ledger) GetWeeklyLimit(ctx context.Context) core.Money {
	raw, ok, err := l.store.Get(ctx, KeyWeeklyLimit)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpRead, KeyWeeklyLimit, err))
		return core.Money{}
	}
	if !ok || strings.TrimSpace(raw) == "" {
		return core.Money{}
	}
	d, err := core.ParseDecimal(raw)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpRead, KeyWeeklyLimit, err))
		return core.Money{}
	}
	limit, err := core.MoneyFromDecimal(d)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpRead, KeyWeeklyLimit, err))
		return core.Money{}
	}
	return limit
}

// SetWeeklyLimit stores a new limit. It must be positive; zero is reserved
// for "not configured".
func (l *Ledger) SetWeeklyLimit(ctx context.Context, limit core.Money) error {
	if limit.Cents <= 0 {
		return l.handle(ctx, newError(KindValidation, applog.OpUpdate, KeyWeeklyLimit, core.ErrInvalidLimit))
	}

	release, err := l.locks.acquire(ctx, KeyWeeklyLimit)
	if err != nil {
		return l.handle(ctx, newError(KindMutation, applog.OpUpdate, KeyWeeklyLimit, err))
	}
	defer release()

	if err := l.store.Set(ctx, KeyWeeklyLimit, limit.Decimal().String()); err != nil {
		return l.handle(ctx, newError(KindMutation, applog.OpUpdate, KeyWeeklyLimit, err))
	}
	l.logger.InfoContext(ctx, "Weekly limit updated", applog.FieldAmountCents, limit.Cents)
	return nil
}

// IsOnboarded reports whether a weekly limit has ever been stored.
func (l *Ledger) IsOnboarded(ctx context.Context) bool {
	_, ok, err := l.store.Get(ctx, KeyWeeklyLimit)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpRead, KeyWeeklyLimit, err))
		return false
	}
	return ok
}

// GetExpenses returns the current week's expenses in insertion order.
func (l *Ledger) GetExpenses(ctx context.Context) []core.Expense {
	l.CheckRollover(ctx)
	return localizeExpenses(l.readExpenses(ctx), l.loc)
}

// GetIncome returns the current week's income in insertion order.
func (l *Ledger) GetIncome(ctx context.Context) []core.Income {
	l.CheckRollover(ctx)
	return localizeIncome(l.readIncome(ctx), l.loc)
}

func (l *Ledger) readExpenses(ctx context.Context) []core.Expense {
	list, err := loadList[core.Expense](ctx, l.store, KeyExpenses)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpList, KeyExpenses, err))
		return []core.Expense{}
	}
	return list
}

func (l *Ledger) readIncome(ctx context.Context) []core.Income {
	list, err := loadList[core.Income](ctx, l.store, KeyIncome)
	if err != nil {
		_ = l.handle(ctx, newError(KindRead, applog.OpList, KeyIncome, err))
		return []core.Income{}
	}
	return list
}

// AddExpense validates draft, appends it to the current week and returns
// the stored record.
func (l *Ledger) AddExpense(ctx context.Context, draft core.ExpenseDraft) (core.Expense, error) {
	draft.Description = strings.TrimSpace(draft.Description)
	if err := draft.Validate(); err != nil {
		return core.Expense{}, l.handle(ctx, newError(KindValidation, applog.OpCreate, KeyExpenses, err))
	}

	l.CheckRollover(ctx)

	var created core.Expense
	err := updateList(ctx, l, KeyExpenses, applog.OpCreate, func(list []core.Expense) ([]core.Expense, error) {
		id, err := l.mintID(func(id string) bool {
			return slices.ContainsFunc(list, func(e core.Expense) bool { return e.ID == id })
		})
		if err != nil {
			return nil, err
		}
		created = core.Expense{
			ID:          id,
			Amount:      draft.Amount,
			Category:    draft.Category,
			Description: draft.Description,
			Date:        l.stamp(),
		}
		return append(list, created), nil
	})
	if err != nil {
		return core.Expense{}, err
	}

	l.logger.InfoContext(ctx, "Expense added",
		applog.NewFields().WithTransaction(created.ID, created.Amount.Cents).ToSlice()...)
	created.Date = created.Date.In(l.loc)
	return created, nil
}

// DeleteExpense removes the expense with id from the current week. Unknown
// ids are ignored.
func (l *Ledger) DeleteExpense(ctx context.Context, id string) error {
	l.CheckRollover(ctx)
	return updateList(ctx, l, KeyExpenses, applog.OpDelete, func(list []core.Expense) ([]core.Expense, error) {
		filtered := slices.DeleteFunc(slices.Clone(list), func(e core.Expense) bool { return e.ID == id })
		if len(filtered) == len(list) {
			return nil, errNoChange
		}
		return filtered, nil
	})
}

// AddIncome records income for the current week and returns the stored
// record.
func (l *Ledger) AddIncome(ctx context.Context, amount core.Money) (core.Income, error) {
	if err := amount.Validate(); err != nil {
		return core.Income{}, l.handle(ctx, newError(KindValidation, applog.OpCreate, KeyIncome, err))
	}

	l.CheckRollover(ctx)

	var created core.Income
	err := updateList(ctx, l, KeyIncome, applog.OpCreate, func(list []core.Income) ([]core.Income, error) {
		id, err := l.mintID(func(id string) bool {
			return slices.ContainsFunc(list, func(in core.Income) bool { return in.ID == id })
		})
		if err != nil {
			return nil, err
		}
		created = core.Income{ID: id, Amount: amount, Date: l.stamp()}
		return append(list, created), nil
	})
	if err != nil {
		return core.Income{}, err
	}

	l.logger.InfoContext(ctx, "Income added",
		applog.NewFields().WithTransaction(created.ID, created.Amount.Cents).ToSlice()...)
	created.Date = created.Date.In(l.loc)
	return created, nil
}

// DeleteIncome removes the income with id from the current week. Unknown
// ids are ignored.
func (l *Ledger) DeleteIncome(ctx context.Context, id string) error {
	l.CheckRollover(ctx)
	return updateList(ctx, l, KeyIncome, applog.OpDelete, func(list []core.Income) ([]core.Income, error) {
		filtered := slices.DeleteFunc(slices.Clone(list), func(in core.Income) bool { return in.ID == id })
		if len(filtered) == len(list) {
			return nil, errNoChange
		}
		return filtered, nil
	})
}

// updateList runs one locked read-modify-write cycle on a list document.
// fn may return errNoChange to skip the write.
func updateList[T any](ctx context.Context, l *Ledger, key, op string, fn func([]T) ([]T, error)) error {
	release, err := l.locks.acquire(ctx, key)
	if err != nil {
		return l.handle(ctx, newError(KindMutation, op, key, err))
	}
	defer release()

	list, err := loadList[T](ctx, l.store, key)
	if err != nil {
		return l.handle(ctx, newError(KindMutation, op, key, err))
	}

	updated, err := fn(list)
	if errors.Is(err, errNoChange) {
		return nil
	}
	if err != nil {
		return l.handle(ctx, newError(KindMutation, op, key, err))
	}

	if err := saveList(ctx, l.store, key, updated); err != nil {
		return l.handle(ctx, newError(KindMutation, op, key, err))
	}
	return nil
}

func (l *Ledger) mintID(taken func(string) bool) (string, error) {
	for attempt := 0; attempt < 3; attempt++ {
		id, err := l.newID()
		if err != nil {
			return "", err
		}
		if !taken(id) {
			return id, nil
		}
	}
	return "", ErrIDCollision
}

// stamp is the creation time of a new transaction, at the precision it is
// persisted with.
func (l *Ledger) stamp() time.Time {
	return l.clock().UTC().Truncate(time.Millisecond)
}
