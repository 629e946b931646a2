package service

import "github.com/shopspring/decimal"

var hundred = decimal.NewFromInt(100)

// CalculateBonus returns amount * percent / 100 rounded half-up to two decimals.
// A percent outside [0, 100] or a non-positive amount yields zero.
func CalculateBonus(amount, percent decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() || percent.IsNegative() || percent.GreaterThan(hundred) {
		return decimal.Zero
	}
	return amount.Mul(percent).Div(hundred).Round(2)
}
