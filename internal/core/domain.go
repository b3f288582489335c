package core

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"
)

const (
	Food          Category = "Food"
	Transport     Category = "Transport"
	Shopping      Category = "Shopping"
	Entertainment Category = "Entertainment"
	Bills         Category = "Bills"
	Health        Category = "Health"
	Other         Category = "Other"
)

const maxDescriptionLen = 200

type (
	Category string

	// Expense is a single spending record. Once created it is only ever
	// deleted, never edited.
	Expense struct {
		ID          string    `json:"id"`
		Amount      Money     `json:"amount"`
		Category    Category  `json:"category"`
		Description string    `json:"description"`
		Date        time.Time `json:"date"`
	}

	// ExpenseDraft is the user input for a new expense. ID and Date are
	// assigned by the ledger.
	ExpenseDraft struct {
		Amount      Money
		Category    Category
		Description string
	}

	Income struct {
		ID     string    `json:"id"`
		Amount Money     `json:"amount"`
		Date   time.Time `json:"date"`
	}

	// WeekRecord groups the transactions of one Monday-start week.
	// WeekStart is the natural key. IsCurrent is never persisted.
	WeekRecord struct {
		WeekStart time.Time `json:"weekStart"`
		Expenses  []Expense `json:"expenses"`
		Income    []Income  `json:"income"`
		Total     Money     `json:"total"`
		IsCurrent bool      `json:"-"`
	}
)

var (
	ErrInvalidCategory    = errors.New("invalid category")
	ErrDescriptionTooLong = errors.New("description too long (max 200 characters)")
	ErrInvalidLimit       = errors.New("weekly limit must be greater than 0")
)

// Categories returns the fixed set of expense categories in display order.
func Categories() []Category {
	return []Category{Food, Transport, Shopping, Entertainment, Bills, Health, Other}
}

// ParseCategory matches s case-insensitively against Categories.
func ParseCategory(s string) (Category, error) {
	s = strings.TrimSpace(s)
	for _, c := range Categories() {
		if strings.EqualFold(s, string(c)) {
			return c, nil
		}
	}
	return "", ErrInvalidCategory
}

func (c Category) Validate() error {
	for _, known := range Categories() {
		if c == known {
			return nil
		}
	}
	return ErrInvalidCategory
}

func (d ExpenseDraft) Validate() error {
	if err := d.Amount.Validate(); err != nil {
		return err
	}
	if err := d.Category.Validate(); err != nil {
		return err
	}
	if utf8.RuneCountInString(strings.TrimSpace(d.Description)) > maxDescriptionLen {
		return ErrDescriptionTooLong
	}
	return nil
}

// HasTransactions reports whether the week holds any expense or income.
func (w WeekRecord) HasTransactions() bool {
	return len(w.Expenses) > 0 || len(w.Income) > 0
}
