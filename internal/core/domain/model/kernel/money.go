package kernel

import (
	"fmt"

	"fulfillment/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// Money is a fixed-point monetary amount. It wraps shopspring/decimal so that
// order totals and ledger balances never go through floating point.
//
// Money is a value object: arithmetic returns new values and never mutates.
// The zero value is a valid zero amount.
type Money struct {
	amount decimal.Decimal
}

// ZeroMoney returns a zero amount.
func ZeroMoney() Money {
	return Money{amount: decimal.Zero}
}

// NewMoneyFromString parses a decimal string such as "12.50".
// Returns an error for malformed input.
func NewMoneyFromString(s string) (Money, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Money{}, errs.NewValueIsInvalidErrorWithCause("money amount", err)
	}
	return Money{amount: d}, nil
}

// NewMoneyFromDecimal wraps an existing decimal value, typically when
// reconstructing amounts from persistence.
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{amount: d}
}

// MustMoney parses a decimal string and panics on malformed input.
// Intended for constants and tests only.
func MustMoney(s string) Money {
	m, err := NewMoneyFromString(s)
	if err != nil {
		panic(fmt.Sprintf("MustMoney(%q): %v", s, err))
	}
	return m
}

// Add returns m + other.
func (m Money) Add(other Money) Money {
	return Money{amount: m.amount.Add(other.amount)}
}

// Sub returns m - other.
func (m Money) Sub(other Money) Money {
	return Money{amount: m.amount.Sub(other.amount)}
}

// Neg returns -m.
func (m Money) Neg() Money {
	return Money{amount: m.amount.Neg()}
}

// IsNegative reports whether the amount is below zero.
func (m Money) IsNegative() bool {
	return m.amount.IsNegative()
}

// IsPositive reports whether the amount is above zero.
func (m Money) IsPositive() bool {
	return m.amount.IsPositive()
}

// IsZero reports whether the amount equals zero.
func (m Money) IsZero() bool {
	return m.amount.IsZero()
}

// IsEqual compares two amounts numerically, ignoring exponent representation.
func (m Money) IsEqual(other Money) bool {
	return m.amount.Equal(other.amount)
}

// String returns the amount with two decimal places, e.g. "12.50".
func (m Money) String() string {
	return m.amount.StringFixed(2)
}

// Decimal returns the underlying decimal value for persistence adapters.
func (m Money) Decimal() decimal.Decimal {
	return m.amount
}
