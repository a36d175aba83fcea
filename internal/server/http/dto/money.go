package dto

import "github.com/shopspring/decimal"

// Money is an exact decimal amount encoded as a bare JSON number.
// Both numbers and quoted strings are accepted on input.
type Money struct {
	decimal.Decimal
}

// NewMoney wraps a decimal amount.
func NewMoney(d decimal.Decimal) Money {
	return Money{Decimal: d}
}

func (m Money) MarshalJSON() ([]byte, error) {
	return []byte(m.String()), nil
}
