package model

import "github.com/shopspring/decimal"

// CurrencyScale is the number of fractional digits of the currency.
const CurrencyScale = 2

// SumAmounts adds amounts exactly.
func SumAmounts(amounts ...decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}

// NarrowRevenue rounds an exact sum to the currency scale, half away from zero.
// Fractions of a cent are the only thing it may discard.
func NarrowRevenue(sum decimal.Decimal) decimal.Decimal {
	return sum.Round(CurrencyScale)
}
