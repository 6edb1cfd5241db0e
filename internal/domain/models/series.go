package models

import "time"

// SeriesPoint is one entry of a SourceSeries.
type SeriesPoint struct {
	Date string
	Buy  float64
	Sell float64
}

// SourceSeries is a source's chronologically ascending history.
type SourceSeries struct {
	Source     Source
	Series     []SeriesPoint
	LastUpdate *string
}

// Bucket is one charting point. Values only contains sources that had at
// least one quote inside the bucket.
type Bucket struct {
	Key    string
	Start  time.Time
	Values map[Source]float64
}

// SourceStats summarizes one source over a date range.
type SourceStats struct {
	Source     Source
	Average    float64
	Max        float64
	Min        float64
	Volatility float64
	Trend      string
	Count      int
}

// HourlyQuery selects the recent hourly window (last Days×24h).
type HourlyQuery struct {
	Days    int
	Field   Field
	Sources []string
}

// RangeQuery selects a calendar date range bucketed by Granularity.
type RangeQuery struct {
	StartDate   string
	EndDate     string
	Field       Field
	Granularity Granularity
	Sources     []string
}

// MonthlyQuery selects daily means for Months calendar months starting at Year/Month.
type MonthlyQuery struct {
	Year    int
	Month   int
	Months  int
	Field   Field
	Sources []string
}

// StatsQuery selects the range summarized by Stats.
type StatsQuery struct {
	StartDate string
	EndDate   string
	Field     Field
	Sources   []string
}
