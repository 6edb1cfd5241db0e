package models

import (
	"strings"
	"time"
)

// RateQuote is a single buy/sell quote published by a source.
//
// Quotes are created by the importer (or any other ingestion path) and never
// mutated afterwards. For SourceDOF, BuyRate == SellRate.
type RateQuote struct {
	Source    Source
	Timestamp time.Time
	BuyRate   float64
	SellRate  float64
}

// Value returns the rate selected by f.
func (q RateQuote) Value(f Field) float64 {
	if f == FieldBuy {
		return q.BuyRate
	}
	return q.SellRate
}

// Field selects which side of a quote an analysis uses.
type Field string

const (
	FieldBuy  Field = "buy"
	FieldSell Field = "sell"
)

// ParseField validates a raw field selector. An empty value yields def.
func ParseField(raw string, def Field) (Field, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "":
		return def, nil
	case string(FieldBuy):
		return FieldBuy, nil
	case string(FieldSell):
		return FieldSell, nil
	default:
		return "", NewValidationError(KindInvalidParameter, "invalid rate field %q, expected buy or sell", raw)
	}
}

// Granularity is the bucket size used by the temporal aggregator.
type Granularity string

const (
	GranularityHour  Granularity = "hour"
	GranularityDay   Granularity = "day"
	GranularityMonth Granularity = "month"
)

// ParseGranularity validates a raw interval. An empty value means GranularityDay.
func ParseGranularity(raw string) (Granularity, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "", string(GranularityDay):
		return GranularityDay, nil
	case string(GranularityHour):
		return GranularityHour, nil
	case string(GranularityMonth):
		return GranularityMonth, nil
	default:
		return "", NewValidationError(KindInvalidParameter, "invalid interval %q, expected hour, day or month", raw)
	}
}

// Truncate returns the start of the bucket containing t, in t's location.
// Hours are truncated on the absolute instant, so the repeated wall-clock
// hour of a daylight saving fall-back yields two distinct buckets.
func (g Granularity) Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	switch g {
	case GranularityHour:
		return t.Truncate(time.Hour)
	case GranularityMonth:
		return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
	default:
		return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
	}
}

// KeyLayout is the time layout used to render bucket keys. Hour keys carry
// the UTC offset to tell repeated wall-clock hours apart.
func (g Granularity) KeyLayout() string {
	switch g {
	case GranularityHour:
		return "2006-01-02T15:00-07:00"
	case GranularityMonth:
		return "2006-01"
	default:
		return "2006-01-02"
	}
}
