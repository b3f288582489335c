package ledger

import (
	"errors"
	"fmt"

	"weeklybudget/internal/core"
)

// Kind classifies a ledger failure. Each kind has exactly one Recovery.
type Kind int

const (
	// KindValidation is bad user input, rejected before anything is stored.
	KindValidation Kind = iota + 1
	// KindRead is a failed read on a read-only path.
	KindRead
	// KindMutation is any storage failure inside add, delete or set,
	// including the read of its read-modify-write.
	KindMutation
	// KindRollover is a failure while recording the week or archiving it.
	KindRollover
)

func (k Kind) String() string {
	switch k {
	case KindValidation:
		return "validation"
	case KindRead:
		return "storage_read"
	case KindMutation:
		return "storage_write"
	case KindRollover:
		return "rollover"
	default:
		return "unknown"
	}
}

// Recovery is what the ledger does when an error of a given Kind occurs.
type Recovery int

const (
	// Propagate returns the error to the caller.
	Propagate Recovery = iota + 1
	// UseDefault logs and answers with the zero value (0, empty list, false).
	UseDefault
	// LogAndContinue logs and carries on as if the step had succeeded.
	LogAndContinue
)

var recoveryPolicy = map[Kind]Recovery{
	KindValidation: Propagate,
	KindRead:       UseDefault,
	KindMutation:   Propagate,
	KindRollover:   LogAndContinue,
}

// RecoveryFor returns the declared recovery for k. Unknown kinds propagate.
func RecoveryFor(k Kind) Recovery {
	if r, ok := recoveryPolicy[k]; ok {
		return r
	}
	return Propagate
}

var (
	ErrWeekAlreadyArchived = errors.New("week already archived")
	ErrIDCollision         = errors.New("could not mint a unique id")

	errNoChange = errors.New("no change")
)

// Error is a classified ledger failure.
type Error struct {
	Kind Kind
	Op   string
	Key  string
	Err  error
}

func newError(kind Kind, op, key string, err error) *Error {
	return &Error{Kind: kind, Op: op, Key: key, Err: err}
}

func (e *Error) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("ledger %s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("ledger %s %s: %v", e.Op, e.Key, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// KindOf reports the Kind of a ledger error anywhere in err's chain.
func KindOf(err error) (Kind, bool) {
	var le *Error
	if errors.As(err, &le) {
		return le.Kind, true
	}
	return 0, false
}

const genericUserMessage = "Operation failed. Please try again."

// UserMessage turns any error into text fit for the end user. Storage
// details never leak; only validation problems, raised by the ledger or by
// the core parsers directly, get a specific hint.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}
	if kind, ok := KindOf(err); ok && kind != KindValidation {
		return genericUserMessage
	}
	switch {
	case errors.Is(err, core.ErrInvalidAmount):
		return "Please enter a valid amount greater than 0."
	case errors.Is(err, core.ErrInvalidCategory):
		return "Please select a category."
	case errors.Is(err, core.ErrInvalidLimit):
		return "Please enter a valid weekly limit greater than 0."
	case errors.Is(err, core.ErrDescriptionTooLong):
		return "Description is too long (max 200 characters)."
	default:
		return genericUserMessage
	}
}
