package analytics

import (
	"math"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// Direction labels used by Summarize.
const (
	DirectionUp     = "up"
	DirectionDown   = "down"
	DirectionStable = "stable"
)

// stableBandRatio is the fraction of the average within which the first and
// last values are considered unchanged.
const stableBandRatio = 0.001

// Summarize computes range statistics over chronologically ordered values.
// Volatility is the population standard deviation. Returns false for empty input.
func Summarize(source models.Source, values []float64) (models.SourceStats, bool) {
	if len(values) == 0 {
		return models.SourceStats{}, false
	}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}

	avg := Mean(values)
	var sq float64
	for _, v := range values {
		sq += (v - avg) * (v - avg)
	}
	stdDev := math.Sqrt(sq / float64(len(values)))

	first, last := values[0], values[len(values)-1]
	band := avg * stableBandRatio
	direction := DirectionStable
	switch {
	case last > first+band:
		direction = DirectionUp
	case last < first-band:
		direction = DirectionDown
	}

	return models.SourceStats{
		Source:     source,
		Average:    RoundRate(avg),
		Max:        RoundRate(hi),
		Min:        RoundRate(lo),
		Volatility: RoundRate(stdDev),
		Trend:      direction,
		Count:      len(values),
	}, true
}
