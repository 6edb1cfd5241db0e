// Package analytics holds the pure numerical rules applied to rate series:
// trend and volatility classification, spread anomaly detection, rounding
// and summary statistics. Nothing in this package performs I/O.
package analytics

import (
	"math"

	"github.com/shopspring/decimal"
)

// Output precision. Rates are quoted with 4 decimals, money and percentages with 2.
const (
	RatePlaces  int32 = 4
	MoneyPlaces int32 = 2
	PctPlaces   int32 = 2
)

// RoundRate rounds a rate to RatePlaces.
func RoundRate(v float64) float64 { return round(v, RatePlaces) }

// RoundMoney rounds a money amount to MoneyPlaces.
func RoundMoney(v float64) float64 { return round(v, MoneyPlaces) }

// RoundPct rounds a percentage to PctPlaces.
func RoundPct(v float64) float64 { return round(v, PctPlaces) }

// round goes through decimal so that identical inputs always render identically
// (half away from zero on the shortest decimal representation of v).
func round(v float64, places int32) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return decimal.NewFromFloat(v).Round(places).InexactFloat64()
}

// Mean returns the arithmetic mean of values computed in decimal arithmetic.
// The result never leaves [min, max] of the inputs. Empty input yields 0.
func Mean(values []float64) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := decimal.Zero
	for _, v := range values {
		sum = sum.Add(decimal.NewFromFloat(v))
	}
	return sum.Div(decimal.NewFromInt(int64(len(values)))).InexactFloat64()
}
