/*
rounding.go - Numeric helpers for money amounts

PURPOSE:
  Pure helpers used by the engine to normalize totals and snap amounts to a
  rounding granularity. No engine state is touched here.

HELPERS:
  Truncate:       Cut a value to N decimal places, toward zero, no rounding
  RoundToNearest: Snap a value to the nearest multiple of a unit (0.25, 0.01)
  Money:          Decimal view of a float amount (for exact comparisons)

TRUNCATION:
  Truncate works on the shortest decimal form of the float, so 100.6 stays
  100.6 (100.6 * 100 in binary is 10059.999...).

SEE ALSO:
  - engine.go: Uses Truncate for the total, RoundToNearest for amounts
*/
package generic

import (
	"math"

	"github.com/shopspring/decimal"
)

// CentPlaces is the precision of a total.
const CentPlaces = 2

// Cent is the unit the residue correction snaps to.
const Cent = 0.01

// statusPlaces is the precision used when classifying over/under/even.
const statusPlaces = 4

// Truncate truncates value to the given number of decimal places.
// Non-finite values are returned unchanged.
//
// It cuts the shortest decimal form of value, not value*10^places in binary,
// so it deliberately differs from the multiply/trunc/divide form:
// Truncate(100.6, 2) is 100.6, where the multiply form gives 100.59.
func Truncate(value float64, places int) float64 {
	if !isFinite(value) {
		return value
	}
	f, _ := decimal.NewFromFloat(value).Truncate(int32(places)).Float64()
	return f
}

// RoundToNearest rounds value to the nearest multiple of unit.
// A unit <= 0 disables rounding.
//
//	RoundToNearest(2.68, 0.25) // 2.75
func RoundToNearest(value, unit float64) float64 {
	if unit > 0 {
		return math.Round(value/unit) * unit
	}
	return value
}

// Money returns the decimal representation of a float amount.
func Money(value float64) decimal.Decimal {
	if !isFinite(value) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(value)
}

// Sum adds values left to right.
func Sum(values ...float64) float64 {
	var total float64
	for _, v := range values {
		total += v
	}
	return total
}

// divideOrZero returns numerator/denominator, or 0 when denominator is zero.
func divideOrZero(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	return numerator / denominator
}

func finiteOrZero(v float64) float64 {
	if !isFinite(v) {
		return 0
	}
	return v
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
