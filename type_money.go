package wager

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money represents a USD monetary value.
//
// Arithmetic is exact (arbitrary-precision decimal); rendering goes through
// the go-money USD formatter.
type Money struct {
	value decimal.Decimal // as major unit value
}

// USD returns a Money from a decimal amount of dollars.
func USD(value decimal.Decimal) Money { return Money{value: value} }

// USDFloat returns a Money from a float amount of dollars.
func USDFloat(value float64) Money { return Money{value: decimal.NewFromFloat(value)} }

// usd is the full go-money USD currency, used for formatting only.
var usd = *money.New(0, money.USD).Currency()

// String returns the string representation of the money value, e.g. "$12.34".
func (m Money) String() string {
	dec := m.value.Shift(int32(usd.Fraction))
	return usd.Formatter().Format(dec.Round(0).IntPart())
}

func (m Money) Equal(n Money) bool              { return m.value.Equal(n.value) }
func (m Money) IsZero() bool                    { return m.value.IsZero() }
func (m Money) IsPositive() bool                { return m.value.IsPositive() }
func (m Money) IsNegative() bool                { return m.value.IsNegative() }
func (m Money) LessThan(n Money) bool           { return m.value.LessThan(n.value) }
func (m Money) LessThanOrEqual(n Money) bool    { return m.value.LessThanOrEqual(n.value) }
func (m Money) GreaterThan(n Money) bool        { return m.value.GreaterThan(n.value) }
func (m Money) GreaterThanOrEqual(n Money) bool { return m.value.GreaterThanOrEqual(n.value) }
func (m Money) Neg() Money                      { return Money{value: m.value.Neg()} }
func (m Money) Abs() Money                      { return Money{value: m.value.Abs()} }

// binary operators.
func (m Money) Add(n Money) Money { return Money{value: m.value.Add(n.value)} }
func (m Money) Sub(n Money) Money { return Money{value: m.value.Sub(n.value)} }

// Div divides the amount by a (non-zero) number of periods.
func (m Money) Div(periods float64) Money {
	return Money{value: m.value.Div(decimal.NewFromFloat(periods))}
}

// AsFloat returns the amount as a float64, for chart-grade series only, the
// purpose everywhere else is to keep the calculation exact.
func (m Money) AsFloat() float64 { return m.value.InexactFloat64() }
