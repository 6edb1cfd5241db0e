package analytics

import (
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

const (
	trendLookbackDays = 7
	trendThresholdPct = 0.5
)

// ClassifyTrend compares the latest point of series with the point nearest to
// seven days before it.
//
// The reference point is the one whose timestamp has the smallest absolute
// distance to t0-7d; the first of equally distant points wins. There is no
// minimum age: with a short history the nearest point may be only a day or two
// old and the result is still reported.
func ClassifyTrend(series []models.RateQuote, field models.Field) models.TrendResult {
	na := models.TrendResult{Trend: models.TrendNotAvailable}
	if len(series) < 2 {
		return na
	}

	last := len(series) - 1
	t0 := series[last]
	target := t0.Timestamp.AddDate(0, 0, -trendLookbackDays)

	nearest := -1
	var nearestDist time.Duration
	for i, p := range series {
		d := absDuration(p.Timestamp.Sub(target))
		if nearest < 0 || d < nearestDist {
			nearest = i
			nearestDist = d
		}
	}
	if nearest == last {
		return na
	}

	base := series[nearest].Value(field)
	if base == 0 {
		return na
	}
	pct := (t0.Value(field) - base) / base * 100

	switch {
	case pct >= trendThresholdPct:
		return models.TrendResult{Trend: models.TrendBullish, Pct: pct}
	case pct <= -trendThresholdPct:
		return models.TrendResult{Trend: models.TrendBearish, Pct: pct}
	default:
		return models.TrendResult{Trend: models.TrendStable, Pct: pct}
	}
}

func absDuration(d time.Duration) time.Duration {
	if d >= 0 {
		return d
	}
	if d == time.Duration(-1<<63) {
		return time.Duration(1<<63 - 1)
	}
	return -d
}
