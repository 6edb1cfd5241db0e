package analytics

import (
	"math"

	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

const (
	spreadMinPoints = 10
	spreadWindow    = 30
)

var two = decimal.NewFromInt(2)

// AnalyzeSpread checks whether the latest spread (sell - buy) lies more than
// two population standard deviations away from the mean of the last 30 spreads.
//
// Spreads are computed in decimal so a constant spread has exactly zero deviation.
func AnalyzeSpread(series []models.RateQuote) models.SpreadStatus {
	if len(series) < spreadMinPoints {
		return models.SpreadInsufficientData
	}

	window := series[max(0, len(series)-spreadWindow):]

	spreads := make([]decimal.Decimal, len(window))
	sum := decimal.Zero
	for i, q := range window {
		s := decimal.NewFromFloat(q.SellRate).Sub(decimal.NewFromFloat(q.BuyRate))
		spreads[i] = s
		sum = sum.Add(s)
	}
	n := decimal.NewFromInt(int64(len(spreads)))
	mean := sum.Div(n)

	variance := decimal.Zero
	for _, s := range spreads {
		d := s.Sub(mean)
		variance = variance.Add(d.Mul(d))
	}
	variance = variance.Div(n)
	if variance.IsZero() {
		return models.SpreadStable
	}
	stdDev := decimal.NewFromFloat(math.Sqrt(variance.InexactFloat64()))
	if stdDev.IsZero() {
		return models.SpreadStable
	}

	current := spreads[len(spreads)-1]
	band := stdDev.Mul(two)
	switch {
	case current.GreaterThan(mean.Add(band)):
		return models.SpreadAboveAverage
	case current.LessThan(mean.Sub(band)):
		return models.SpreadBelowAverage
	default:
		return models.SpreadNormal
	}
}
