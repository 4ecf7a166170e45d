package handler

import "github.com/shopspring/decimal"

// decimalAmount converts a JSON amount into the decimal type used by the
// accounting domain. Monetary values arrive as plain numbers on the wire.
func decimalAmount(f float64) decimal.Decimal {
	return decimal.NewFromFloat(f)
}
