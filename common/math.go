package common

import "github.com/shopspring/decimal"

// DecimalToFixed rounds num to precision decimal places, half away from zero.
// Rounding happens on the shortest decimal representation of num,
// so 0.25 rounds to 0.3 even though its float64 is slightly below.
func DecimalToFixed(num float64, precision int) float64 {
	return decimal.NewFromFloat(num).Round(int32(precision)).InexactFloat64()
}
