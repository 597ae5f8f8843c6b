package utils

import (
	"github.com/shopspring/decimal"
)

const (
	// MoneyPlaces is the precision of every monetary output.
	MoneyPlaces int32 = 2
	// RatePlaces keeps small rate-like figures such as the money factor readable.
	RatePlaces int32 = 6
)

var hundred = decimal.NewFromInt(100)

// RoundMoney rounds to 2 decimal places for currency
func RoundMoney(d decimal.Decimal) decimal.Decimal {
	return d.Round(MoneyPlaces)
}

// RoundRate rounds to 6 decimal places for ratios
func RoundRate(d decimal.Decimal) decimal.Decimal {
	return d.Round(RatePlaces)
}

// Percent converts a percentage (e.g. 2.5) into its fraction (0.025).
func Percent(p decimal.Decimal) decimal.Decimal {
	return p.Div(hundred)
}

// PercentOf applies a percentage to a value
// Formula: value * (percentage / 100)
func PercentOf(value, percentage decimal.Decimal) decimal.Decimal {
	return value.Mul(percentage).Div(hundred)
}

// ShareOf returns part / total * 100, or zero when total is zero.
func ShareOf(part, total decimal.Decimal) decimal.Decimal {
	if total.IsZero() {
		return decimal.Zero
	}
	return part.Div(total).Mul(hundred)
}

// CeilDiv divides two positive integers rounding up.
func CeilDiv(numerator, denominator int) int {
	if denominator <= 0 {
		return 0
	}
	return (numerator + denominator - 1) / denominator
}

// SplitEvenly divides an amount into count equal installments
func SplitEvenly(amount decimal.Decimal, count int) decimal.Decimal {
	if count <= 0 {
		return amount
	}
	return amount.Div(decimal.NewFromInt(int64(count)))
}
