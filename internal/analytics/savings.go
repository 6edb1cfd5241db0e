package analytics

import (
	"github.com/shopspring/decimal"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// ProjectSavings estimates the monthly money difference of trading volume at
// the best rates instead of the baseline. Positive values are savings.
// A side whose baseline is zero (no data) yields 0.
func ProjectSavings(baseline models.Baseline, bestBuy, bestSell models.BestRate, volume float64) models.Savings {
	vol := decimal.NewFromFloat(volume)
	var out models.Savings
	if baseline.Buy > 0 {
		out.IfBuyAtBest = decimal.NewFromFloat(baseline.Buy).
			Sub(decimal.NewFromFloat(bestBuy.Rate)).
			Mul(vol).
			Round(MoneyPlaces).
			InexactFloat64()
	}
	if baseline.Sell > 0 {
		out.IfSellAtBest = decimal.NewFromFloat(bestSell.Rate).
			Sub(decimal.NewFromFloat(baseline.Sell)).
			Mul(vol).
			Round(MoneyPlaces).
			InexactFloat64()
	}
	return out
}
