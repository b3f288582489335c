package ledger

import (
	"errors"
	"fmt"
	"testing"

	"weeklybudget/internal/core"
)

func TestRecoveryFor(t *testing.T) {
	tests := []struct {
		kind Kind
		want Recovery
	}{
		{KindValidation, Propagate},
		{KindRead, UseDefault},
		{KindMutation, Propagate},
		{KindRollover, LogAndContinue},
		{Kind(99), Propagate},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			if got := RecoveryFor(tt.kind); got != tt.want {
				t.Errorf("RecoveryFor(%v) = %v, want %v", tt.kind, got, tt.want)
			}
		})
	}
}

func TestUserMessage(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want string
	}{
		{"nil", nil, ""},
		{"invalid amount", newError(KindValidation, "create", KeyExpenses, core.ErrInvalidAmount), "Please enter a valid amount greater than 0."},
		{"invalid category", newError(KindValidation, "create", KeyExpenses, core.ErrInvalidCategory), "Please select a category."},
		{"invalid limit", newError(KindValidation, "update", KeyWeeklyLimit, core.ErrInvalidLimit), "Please enter a valid weekly limit greater than 0."},
		{"long description", newError(KindValidation, "create", KeyExpenses, core.ErrDescriptionTooLong), "Description is too long (max 200 characters)."},
		{"storage failure", newError(KindMutation, "create", KeyExpenses, errors.New("SQLITE_BUSY")), genericUserMessage},
		{"wrapped storage failure", fmt.Errorf("add: %w", newError(KindMutation, "create", KeyExpenses, errors.New("disk"))), genericUserMessage},
		{"bare parse error", core.ErrInvalidAmount, "Please enter a valid amount greater than 0."},
		{"storage error wrapping a sentinel", newError(KindRead, "read", KeyWeeklyLimit, core.ErrInvalidAmount), genericUserMessage},
		{"unclassified", errors.New("boom"), genericUserMessage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := UserMessage(tt.err); got != tt.want {
				t.Errorf("UserMessage() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestErrorFormatting(t *testing.T) {
	err := newError(KindMutation, "create", KeyExpenses, errors.New("disk full"))
	if got, want := err.Error(), "ledger create expenses: disk full"; got != want {
		t.Errorf("Error() = %q, want %q", got, want)
	}

	kind, ok := KindOf(fmt.Errorf("wrapped: %w", err))
	if !ok || kind != KindMutation {
		t.Errorf("KindOf() = %v, %v; want %v, true", kind, ok, KindMutation)
	}
	if _, ok := KindOf(errors.New("plain")); ok {
		t.Error("KindOf() on a plain error should report false")
	}
}
