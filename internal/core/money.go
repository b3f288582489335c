// Package core holds the weekly ledger's data model and the pure functions
// around it: amount parsing, week boundaries and aggregation.
//
// This file contains the decimal parser and the Money type. Amounts are kept
// as integer cents so sums never drift; shopspring/decimal is used only at the
// edges (parsing user input and the JSON representation).
package core

import (
	"errors"
	"math"
	"regexp"
	"strings"

	"github.com/shopspring/decimal"
)

var ErrInvalidAmount = errors.New("invalid amount")

// leadingNumber matches the longest numeric prefix of a normalized input,
// the same prefix a lenient float parser would consume.
var leadingNumber = regexp.MustCompile(`^[+-]?(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?`)

// ParseDecimal normalizes a user-entered number into a decimal.
//
// Whitespace is trimmed and the first comma is treated as the decimal
// separator, so "10,50" and "10.50" are equivalent. Only the leading numeric
// part of the input is used ("12.5kg" -> 12.5). Thousands separators are not
// understood: "1,000,50" parses as 1.000.
//
// Returns ErrInvalidAmount when no number can be read. Callers must treat that
// as a validation failure, never as zero.
func ParseDecimal(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" || s == "." || s == "," {
		return decimal.Zero, ErrInvalidAmount
	}
	s = strings.Replace(s, ",", ".", 1)

	m := leadingNumber.FindString(s)
	if m == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	d, err := decimal.NewFromString(m)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// ParseAmount parses s with ParseDecimal and converts it to cents, rounding
// half-up on the third decimal. The result must be strictly positive.
//
// Examples:
//
//	ParseAmount("25")    -> 2500
//	ParseAmount("10,50") -> 1050
//	ParseAmount("0.004") -> ErrInvalidAmount (rounds to zero)
func ParseAmount(s string) (Money, error) {
	d, err := ParseDecimal(s)
	if err != nil {
		return Money{}, err
	}
	m, err := MoneyFromDecimal(d)
	if err != nil {
		return Money{}, err
	}
	if err := m.Validate(); err != nil {
		return Money{}, err
	}
	return m, nil
}

// Money is an amount in cents. Transaction amounts are always positive; a
// week's net total may be negative when income exceeds spending.
type Money struct {
	Cents int64
}

var (
	maxCents = decimal.NewFromInt(math.MaxInt64)
	minCents = decimal.NewFromInt(math.MinInt64)
)

// MoneyFromDecimal rounds d to whole cents. Amounts that do not fit in int64
// cents return ErrInvalidAmount.
func MoneyFromDecimal(d decimal.Decimal) (Money, error) {
	cents := d.Shift(2).Round(0)
	if cents.GreaterThan(maxCents) || cents.LessThan(minCents) {
		return Money{}, ErrInvalidAmount
	}
	return Money{Cents: cents.IntPart()}, nil
}

func (m Money) Validate() error {
	if m.Cents <= 0 {
		return ErrInvalidAmount
	}
	return nil
}

func (m Money) Add(o Money) Money { return Money{Cents: m.Cents + o.Cents} }
func (m Money) Sub(o Money) Money { return Money{Cents: m.Cents - o.Cents} }

// Decimal returns the amount in currency units.
func (m Money) Decimal() decimal.Decimal {
	return decimal.New(m.Cents, -2)
}

// Float returns the amount in currency units as a float64, for display and
// percentage math only.
func (m Money) Float() float64 {
	return float64(m.Cents) / 100.0
}

// String formats the amount with two decimals, e.g. "12.50".
func (m Money) String() string {
	return m.Decimal().StringFixed(2)
}

// MarshalJSON writes the amount as a bare JSON number in currency units.
func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.Decimal().String()), nil
}

// UnmarshalJSON accepts a JSON number or a numeric string.
func (m *Money) UnmarshalJSON(data []byte) error {
	var d decimal.Decimal
	if err := d.UnmarshalJSON(data); err != nil {
		return err
	}
	parsed, err := MoneyFromDecimal(d)
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}
