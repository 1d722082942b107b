// Package money holds the fixed-point rules shared by account balances and
// transaction amounts.
//
// Every monetary value in the ledger is an exact decimal with at most two
// fractional digits and an absolute value no greater than MaxMagnitude, which
// mirrors the NUMERIC(8,2) columns the store uses. Binary floating point is
// never used for money.
package money

import (
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
)

// Scale is the number of fractional digits kept for every monetary value.
const Scale int32 = 2

var (
	// MaxMagnitude is the largest absolute value a NUMERIC(8,2) column can hold.
	MaxMagnitude = decimal.RequireFromString("999999.99")

	// Zero is the canonical zero balance.
	Zero = decimal.Zero
)

var (
	// ErrNotPositive is returned when an amount is zero or negative.
	ErrNotPositive = errors.New("amount must be greater than zero")
	// ErrNegative is returned when a balance would be negative.
	ErrNegative = errors.New("value must not be negative")
	// ErrPrecision is returned when a value has more than Scale fractional digits.
	ErrPrecision = errors.New("value must have at most 2 fractional digits")
	// ErrOutOfRange is returned when a value exceeds MaxMagnitude.
	ErrOutOfRange = errors.New("value exceeds the representable range")
)

// HasScale reports whether d carries no more than Scale fractional digits.
func HasScale(d decimal.Decimal) bool {
	return d.Equal(d.Truncate(Scale))
}

// InRange reports whether |d| <= MaxMagnitude.
func InRange(d decimal.Decimal) bool {
	return d.Abs().LessThanOrEqual(MaxMagnitude)
}

// ValidateAmount checks that d is usable as a deposit or transfer amount.
func ValidateAmount(d decimal.Decimal) error {
	if !d.IsPositive() {
		return ErrNotPositive
	}
	if !HasScale(d) {
		return ErrPrecision
	}
	if !InRange(d) {
		return ErrOutOfRange
	}
	return nil
}

// ValidateBalance checks that d is usable as a stored account balance.
func ValidateBalance(d decimal.Decimal) error {
	if d.IsNegative() {
		return ErrNegative
	}
	if !HasScale(d) {
		return ErrPrecision
	}
	if !InRange(d) {
		return ErrOutOfRange
	}
	return nil
}

// Parse reads a decimal string and validates it as an amount.
func Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("parse amount %q: %w", s, err)
	}
	if err := ValidateAmount(d); err != nil {
		return decimal.Decimal{}, err
	}
	return d, nil
}

// Normalize rounds d to Scale digits. Values read back from the store are
// normalised so that representation noise never leaks into comparisons.
func Normalize(d decimal.Decimal) decimal.Decimal {
	return d.Round(Scale)
}

// Format renders d with exactly Scale fractional digits, e.g. "10.00".
func Format(d decimal.Decimal) string {
	return d.StringFixed(Scale)
}
