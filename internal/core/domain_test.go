package core

import (
	"errors"
	"strings"
	"testing"
)

func TestParseCategory(t *testing.T) {
	for _, c := range Categories() {
		got, err := ParseCategory(strings.ToLower(string(c)))
		if err != nil || got != c {
			t.Fatalf("ParseCategory(%q) = %q, %v", strings.ToLower(string(c)), got, err)
		}
	}
	if _, err := ParseCategory("Groceries"); !errors.Is(err, ErrInvalidCategory) {
		t.Fatalf("expected ErrInvalidCategory, got %v", err)
	}
}

func TestExpenseDraftValidate(t *testing.T) {
	tests := []struct {
		name  string
		draft ExpenseDraft
		want  error
	}{
		{"valid", ExpenseDraft{Amount: Money{Cents: 2500}, Category: Food}, nil},
		{"valid with description", ExpenseDraft{Amount: Money{Cents: 1}, Category: Other, Description: "coffee"}, nil},
		{"zero amount", ExpenseDraft{Amount: Money{}, Category: Food}, ErrInvalidAmount},
		{"negative amount", ExpenseDraft{Amount: Money{Cents: -1}, Category: Food}, ErrInvalidAmount},
		{"unknown category", ExpenseDraft{Amount: Money{Cents: 100}, Category: "food"}, ErrInvalidCategory},
		{"empty category", ExpenseDraft{Amount: Money{Cents: 100}}, ErrInvalidCategory},
		{"long description", ExpenseDraft{Amount: Money{Cents: 100}, Category: Food, Description: strings.Repeat("x", 201)}, ErrDescriptionTooLong},
		{"200 multibyte characters", ExpenseDraft{Amount: Money{Cents: 100}, Category: Food, Description: strings.Repeat("è", 200)}, nil},
		{"201 multibyte characters", ExpenseDraft{Amount: Money{Cents: 100}, Category: Food, Description: strings.Repeat("€", 201)}, ErrDescriptionTooLong},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.draft.Validate(); !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}

func TestWeekRecordHasTransactions(t *testing.T) {
	if (WeekRecord{}).HasTransactions() {
		t.Fatal("empty week reported transactions")
	}
	if !(WeekRecord{Income: []Income{{ID: "1"}}}).HasTransactions() {
		t.Fatal("income-only week reported no transactions")
	}
}
