package utils

import "github.com/shopspring/decimal"

// RoundCurrency rounds v to the given number of decimal places using
// half-away-from-zero rounding, the convention used for all currency amounts
// in this codebase. Going through decimal avoids the usual float64
// round-at-the-edge surprises (e.g. 2.675 rounding to 2.67).
func RoundCurrency(v float64, places int) float64 {
	return decimal.NewFromFloat(v).Round(int32(places)).InexactFloat64()
}
