// Package money centralizes the fixed-point currency arithmetic used by
// every fee calculation. Amounts are decimal rupees rounded to paise;
// float64 never touches a balance.
package money

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// Zero is the additive identity for rupee amounts.
var Zero = decimal.Zero

// Rupees builds an amount from whole rupees.
func Rupees(r int64) decimal.Decimal {
	return decimal.NewFromInt(r)
}

// FromString parses an amount, rounding to paise.
func FromString(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	return Round2(d), nil
}

// Round2 rounds half-up to two decimal places (paise).
func Round2(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}

// Percent returns pct percent of amount, rounded to paise. pct is
// expressed 0-100.
func Percent(amount, pct decimal.Decimal) decimal.Decimal {
	return Round2(amount.Mul(pct).Div(hundred))
}

// MaxZero floors a value at zero. Balances are never negative.
func MaxZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}

// MinOf returns the smaller of two amounts.
func MinOf(a, b decimal.Decimal) decimal.Decimal {
	if a.LessThan(b) {
		return a
	}
	return b
}
