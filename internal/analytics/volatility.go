package analytics

import (
	"math"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

const (
	volatilityWindow     = 6
	volatilityMinSamples = 3
	volatilityHighPct    = 1.0
	volatilityMediumPct  = 0.5
)

// ClassifyVolatility averages the absolute percentage changes between the last
// six points. Pairs whose previous value is zero are left out of the sample.
func ClassifyVolatility(series []models.RateQuote, field models.Field) models.Volatility {
	if len(series) < volatilityMinSamples {
		return models.VolatilityNotAvailable
	}

	window := series[max(0, len(series)-volatilityWindow):]

	changes := make([]float64, 0, len(window)-1)
	for i := 1; i < len(window); i++ {
		prev := window[i-1].Value(field)
		if prev == 0 {
			continue
		}
		curr := window[i].Value(field)
		changes = append(changes, math.Abs((curr-prev)/prev)*100)
	}
	if len(changes) < volatilityMinSamples {
		return models.VolatilityNotAvailable
	}

	var sum float64
	for _, c := range changes {
		sum += c
	}
	mean := sum / float64(len(changes))

	switch {
	case mean > volatilityHighPct:
		return models.VolatilityHigh
	case mean >= volatilityMediumPct:
		return models.VolatilityMedium
	default:
		return models.VolatilityLow
	}
}
