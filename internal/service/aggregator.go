package service

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/guttosm/fxpulse/internal/analytics"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
	"github.com/guttosm/fxpulse/internal/storage"
)

// Query limits of the aggregator.
const (
	MaxHourlyDays  = 7
	MaxRangeDays   = 365
	MaxMonthlySpan = 12
)

// TemporalAggregator buckets quotes of several sources for charting.
//
// Hour buckets keep the chronologically latest value of each source. Day and
// month buckets hold the arithmetic mean of the quotes they contain.
type TemporalAggregator struct {
	repo storage.QuoteRepository
	loc  *time.Location
	now  func() time.Time
}

// NewTemporalAggregator builds an aggregator that interprets dates in loc.
// A nil loc means UTC.
func NewTemporalAggregator(repo storage.QuoteRepository, loc *time.Location) *TemporalAggregator {
	if loc == nil {
		loc = time.UTC
	}
	return &TemporalAggregator{repo: repo, loc: loc, now: time.Now}
}

// Hourly returns hour buckets for the last q.Days×24 hours, starting at the
// top of the hour. Days defaults to 1.
func (a *TemporalAggregator) Hourly(ctx context.Context, q models.HourlyQuery) ([]models.Bucket, error) {
	days := q.Days
	if days == 0 {
		days = 1
	}
	if days < 1 || days > MaxHourlyDays {
		return nil, models.NewValidationError(models.KindInvalidParameter,
			"days must be between 1 and %d, got %d", MaxHourlyDays, days)
	}
	field, err := models.ParseField(string(q.Field), models.FieldBuy)
	if err != nil {
		return nil, err
	}
	sources, err := models.ParseSources(q.Sources)
	if err != nil {
		return nil, err
	}

	now := a.now().In(a.loc)
	start := models.GranularityHour.Truncate(now).Add(-time.Duration(days) * 24 * time.Hour)
	return a.bucketRange(ctx, start, now, sources, models.GranularityHour, field)
}

// Range buckets the quotes between two calendar dates (both inclusive).
func (a *TemporalAggregator) Range(ctx context.Context, q models.RangeQuery) ([]models.Bucket, error) {
	start, end, err := a.parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	granularity, err := models.ParseGranularity(string(q.Granularity))
	if err != nil {
		return nil, err
	}
	field, err := models.ParseField(string(q.Field), models.FieldBuy)
	if err != nil {
		return nil, err
	}
	sources, err := models.ParseSources(q.Sources)
	if err != nil {
		return nil, err
	}
	return a.bucketRange(ctx, start, endOfDay(end), sources, granularity, field)
}

// Monthly returns daily mean buckets covering q.Months calendar months starting
// at q.Year/q.Month. Zero values default to the current month and one month.
func (a *TemporalAggregator) Monthly(ctx context.Context, q models.MonthlyQuery) ([]models.Bucket, error) {
	now := a.now().In(a.loc)
	year, month, months := q.Year, q.Month, q.Months
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	if months == 0 {
		months = 1
	}
	if month < 1 || month > 12 {
		return nil, models.NewValidationError(models.KindInvalidParameter, "month must be between 1 and 12, got %d", month)
	}
	if months < 1 || months > MaxMonthlySpan {
		return nil, models.NewValidationError(models.KindInvalidParameter,
			"months must be between 1 and %d, got %d", MaxMonthlySpan, months)
	}
	if year < 1 {
		return nil, models.NewValidationError(models.KindInvalidParameter, "invalid year %d", year)
	}
	field, err := models.ParseField(string(q.Field), models.FieldBuy)
	if err != nil {
		return nil, err
	}
	sources, err := models.ParseSources(q.Sources)
	if err != nil {
		return nil, err
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, a.loc)
	end := start.AddDate(0, months, 0).Add(-time.Nanosecond)
	return a.bucketRange(ctx, start, end, sources, models.GranularityDay, field)
}

// Stats summarizes every selected source over a date range, in enumeration
// order. Sources without quotes in the range are omitted.
func (a *TemporalAggregator) Stats(ctx context.Context, q models.StatsQuery) ([]models.SourceStats, error) {
	start, end, err := a.parseRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}
	field, err := models.ParseField(string(q.Field), models.FieldBuy)
	if err != nil {
		return nil, err
	}
	sources, err := models.ParseSources(q.Sources)
	if err != nil {
		return nil, err
	}

	quotes, err := a.fetch(ctx, start, endOfDay(end), sources)
	if err != nil {
		return nil, err
	}

	values := make(map[models.Source][]float64)
	for _, qt := range quotes {
		values[qt.Source] = append(values[qt.Source], qt.Value(field))
	}

	var out []models.SourceStats
	for _, src := range models.Sources() {
		if st, ok := analytics.Summarize(src, values[src]); ok {
			out = append(out, st)
		}
	}
	return out, nil
}

func (a *TemporalAggregator) bucketRange(ctx context.Context, start, end time.Time, sources []models.Source, g models.Granularity, field models.Field) ([]models.Bucket, error) {
	quotes, err := a.fetch(ctx, start, end, sources)
	if err != nil {
		return nil, err
	}
	buckets := Bucketize(quotes, g, field, a.loc)

	logger.L().Debug().
		Str("granularity", string(g)).
		Str("field", string(field)).
		Time("start", start).
		Time("end", end).
		Int("rows", len(quotes)).
		Int("buckets", len(buckets)).
		Msg("quotes bucketed")
	return buckets, nil
}

func (a *TemporalAggregator) fetch(ctx context.Context, start, end time.Time, sources []models.Source) ([]models.RateQuote, error) {
	quotes, err := a.repo.ListInRange(ctx, start, end, sources)
	if err != nil {
		return nil, fmt.Errorf("list quotes in range: %w", err)
	}
	slices.SortStableFunc(quotes, func(x, y models.RateQuote) int {
		return x.Timestamp.Compare(y.Timestamp)
	})
	return quotes, nil
}

// parseRange validates a start/end pair and returns both dates at 00:00 in a.loc.
func (a *TemporalAggregator) parseRange(rawStart, rawEnd string) (time.Time, time.Time, error) {
	if strings.TrimSpace(rawStart) == "" || strings.TrimSpace(rawEnd) == "" {
		return time.Time{}, time.Time{}, models.NewValidationError(models.KindInvalidDate,
			"start_date and end_date are required (e.g. start_date=2025-01-01&end_date=2025-01-07)")
	}
	start, err := a.parseDate(rawStart)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := a.parseDate(rawEnd)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	if span := daysBetween(start, end); span > MaxRangeDays {
		return time.Time{}, time.Time{}, models.NewValidationError(models.KindRangeTooLarge,
			"range is limited to %d days, got %d", MaxRangeDays, span)
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, models.NewValidationError(models.KindEndBeforeStart,
			"end_date %s is before start_date %s", end.Format(dateLayout), start.Format(dateLayout))
	}
	return start, end, nil
}

// parseDate accepts YYYY-MM-DD or RFC 3339 and keeps only the calendar date.
func (a *TemporalAggregator) parseDate(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	t, err := time.ParseInLocation(dateLayout, raw, a.loc)
	if err != nil {
		ts, err2 := time.Parse(time.RFC3339, raw)
		if err2 != nil {
			return time.Time{}, models.NewValidationError(models.KindInvalidDate,
				"invalid date %q, use YYYY-MM-DD", raw)
		}
		t = ts.In(a.loc)
	}
	return models.GranularityDay.Truncate(t), nil
}

// Bucketize groups chronologically ordered quotes into buckets of g, in loc.
// Buckets are sorted ascending by start and values rounded to 4 decimals.
func Bucketize(quotes []models.RateQuote, g models.Granularity, field models.Field, loc *time.Location) []models.Bucket {
	type acc struct {
		start  time.Time
		last   map[models.Source]float64
		values map[models.Source][]float64
	}
	byStart := make(map[int64]*acc)
	for _, q := range quotes {
		start := g.Truncate(q.Timestamp.In(loc))
		b, ok := byStart[start.Unix()]
		if !ok {
			b = &acc{
				start:  start,
				last:   make(map[models.Source]float64),
				values: make(map[models.Source][]float64),
			}
			byStart[start.Unix()] = b
		}
		v := q.Value(field)
		b.last[q.Source] = v
		b.values[q.Source] = append(b.values[q.Source], v)
	}

	out := make([]models.Bucket, 0, len(byStart))
	for _, b := range byStart {
		bucket := models.Bucket{
			Key:    b.start.Format(g.KeyLayout()),
			Start:  b.start,
			Values: make(map[models.Source]float64, len(b.last)),
		}
		for src, last := range b.last {
			if g == models.GranularityHour {
				bucket.Values[src] = analytics.RoundRate(last)
			} else {
				bucket.Values[src] = analytics.RoundRate(analytics.Mean(b.values[src]))
			}
		}
		out = append(out, bucket)
	}
	slices.SortFunc(out, func(x, y models.Bucket) int {
		return x.Start.Compare(y.Start)
	})
	return out
}

func endOfDay(day time.Time) time.Time {
	return day.AddDate(0, 0, 1).Add(-time.Nanosecond)
}

// daysBetween returns the number of started days from a to b.
func daysBetween(a, b time.Time) int {
	d := b.Sub(a)
	days := int(d / (24 * time.Hour))
	if d%(24*time.Hour) > 0 {
		days++
	}
	return days
}
