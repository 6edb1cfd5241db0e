package service

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/guttosm/fxpulse/internal/analytics"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
	"github.com/guttosm/fxpulse/internal/storage"
)

// Lookback bounds accepted by every series-based operation.
const (
	MinLookbackDays = 1
	MaxLookbackDays = 365
)

const dateLayout = "2006-01-02"

// SeriesLoader fetches one source's quotes for a lookback window.
type SeriesLoader struct {
	repo storage.QuoteRepository
	loc  *time.Location
	now  func() time.Time
}

// NewSeriesLoader builds a loader that interprets calendar days in loc.
// A nil loc means UTC.
func NewSeriesLoader(repo storage.QuoteRepository, loc *time.Location) *SeriesLoader {
	if loc == nil {
		loc = time.UTC
	}
	return &SeriesLoader{repo: repo, loc: loc, now: time.Now}
}

// Location returns the timezone used for calendar arithmetic.
func (l *SeriesLoader) Location() *time.Location { return l.loc }

// Cutoff returns the start of the day lookbackDays before now.
func (l *SeriesLoader) Cutoff(lookbackDays int) time.Time {
	y, m, d := l.now().In(l.loc).AddDate(0, 0, -lookbackDays).Date()
	return time.Date(y, m, d, 0, 0, 0, 0, l.loc)
}

// Load returns the quotes of source with timestamp >= Cutoff(lookbackDays),
// ascending by timestamp. Quotes sharing a timestamp keep the store's order.
func (l *SeriesLoader) Load(ctx context.Context, source models.Source, lookbackDays int) ([]models.RateQuote, error) {
	if err := validateLookback(lookbackDays); err != nil {
		return nil, err
	}
	if source == models.SourceNone {
		return nil, models.NewValidationError(models.KindUnknownSource, "source is required")
	}

	cutoff := l.Cutoff(lookbackDays)
	quotes, err := l.repo.ListBySource(ctx, source, cutoff)
	if err != nil {
		return nil, fmt.Errorf("load %s series: %w", source, err)
	}
	slices.SortStableFunc(quotes, func(a, b models.RateQuote) int {
		return a.Timestamp.Compare(b.Timestamp)
	})

	logger.L().Debug().
		Str("source", source.String()).
		Time("cutoff", cutoff).
		Int("rows", len(quotes)).
		Msg("series loaded")
	return quotes, nil
}

// SourceSeries validates rawSource and returns its history shaped for display.
// Rates are rounded to 4 decimals and dates rendered as YYYY-MM-DD.
func (l *SeriesLoader) SourceSeries(ctx context.Context, rawSource string, lookbackDays int) (*models.SourceSeries, error) {
	source, err := models.ParseSource(rawSource)
	if err != nil {
		return nil, err
	}
	quotes, err := l.Load(ctx, source, lookbackDays)
	if err != nil {
		return nil, err
	}

	out := &models.SourceSeries{
		Source: source,
		Series: make([]models.SeriesPoint, 0, len(quotes)),
	}
	for _, q := range quotes {
		out.Series = append(out.Series, models.SeriesPoint{
			Date: q.Timestamp.In(l.loc).Format(dateLayout),
			Buy:  analytics.RoundRate(q.BuyRate),
			Sell: analytics.RoundRate(q.SellRate),
		})
	}
	if n := len(out.Series); n > 0 {
		last := out.Series[n-1].Date
		out.LastUpdate = &last
	}
	return out, nil
}

func validateLookback(days int) error {
	if days < MinLookbackDays || days > MaxLookbackDays {
		return models.NewValidationError(models.KindInvalidParameter,
			"lookback must be between %d and %d days, got %d", MinLookbackDays, MaxLookbackDays, days)
	}
	return nil
}
