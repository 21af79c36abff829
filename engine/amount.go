/*
Package engine provides the host-contract primitives that tax rules are
written against.

PURPOSE:
  This package contains the small, domain-agnostic building blocks a rule
  formula needs: exact decimal amounts, month/year periods, marginal-scale
  evaluation, a time-versioned parameter tree, and variable metadata.
  Rule definitions themselves live in the tax package.

KEY CONCEPTS IN THIS FILE (amount.go):
  - Amount: A real-valued quantity (income, tax, rate, floor area)

DESIGN PRINCIPLES:
  1. Precision: Uses decimal.Decimal to avoid floating-point errors
  2. Purity: Every operation returns a new Amount; nothing mutates
  3. No validation: Amounts accept any sign and magnitude - rules do not
     clamp or reject inputs

SEE ALSO:
  - period.go: Month/year period algebra
  - scale.go: Marginal (progressive bracket) scale evaluation
  - parameters.go: Time-versioned parameter tree
*/
package engine

import (
	"github.com/shopspring/decimal"
)

// =============================================================================
// AMOUNT - Real-valued quantity
// =============================================================================

type Amount struct {
	Value decimal.Decimal
}

func NewAmount(value float64) Amount {
	return Amount{Value: decimal.NewFromFloat(value)}
}

func NewAmountFromInt(value int) Amount {
	return Amount{Value: decimal.NewFromInt(int64(value))}
}

func ZeroAmount() Amount {
	return Amount{Value: decimal.Zero}
}

func MustParseAmount(s string) Amount {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return Amount{Value: decimal.Zero}
	}
	return Amount{Value: d}
}

func (a Amount) Add(b Amount) Amount          { return Amount{Value: a.Value.Add(b.Value)} }
func (a Amount) Sub(b Amount) Amount          { return Amount{Value: a.Value.Sub(b.Value)} }
func (a Amount) Mul(b Amount) Amount          { return Amount{Value: a.Value.Mul(b.Value)} }
func (a Amount) Neg() Amount                  { return Amount{Value: a.Value.Neg()} }
func (a Amount) IsZero() bool                 { return a.Value.IsZero() }
func (a Amount) IsNegative() bool             { return a.Value.IsNegative() }
func (a Amount) IsPositive() bool             { return a.Value.IsPositive() }
func (a Amount) Equal(b Amount) bool          { return a.Value.Equal(b.Value) }
func (a Amount) GreaterThan(b Amount) bool    { return a.Value.GreaterThan(b.Value) }
func (a Amount) LessThan(b Amount) bool       { return a.Value.LessThan(b.Value) }
func (a Amount) GreaterOrEqual(b Amount) bool { return a.Value.GreaterThanOrEqual(b.Value) }
func (a Amount) LessOrEqual(b Amount) bool    { return a.Value.LessThanOrEqual(b.Value) }

func (a Amount) Max(b Amount) Amount {
	if a.GreaterThan(b) {
		return a
	}
	return b
}

func (a Amount) Min(b Amount) Amount {
	if a.LessThan(b) {
		return a
	}
	return b
}

func (a Amount) Float64() float64 {
	f, _ := a.Value.Float64()
	return f
}

func (a Amount) String() string { return a.Value.String() }
