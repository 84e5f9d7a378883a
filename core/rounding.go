package core

import "github.com/shopspring/decimal"

const monetaryPrecision int32 = 2 // 2 decimal places for report values

// round2 rounds a monetary value to 2 decimal places, half away from
// zero. Uses decimal arithmetic to avoid floating-point errors.
func round2(value float64) float64 {
	rounded, _ := decimal.NewFromFloat(value).Round(monetaryPrecision).Float64()
	return rounded
}
