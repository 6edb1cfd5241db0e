package models

import "time"

// Trend is the 7-period directional classification of a series.
type Trend string

const (
	TrendBullish      Trend = "bullish"
	TrendBearish      Trend = "bearish"
	TrendStable       Trend = "stable"
	TrendNotAvailable Trend = "n/a"
)

// TrendResult carries the label together with the percentage it was derived from.
// Pct is 0 when Trend is TrendNotAvailable.
type TrendResult struct {
	Trend Trend
	Pct   float64
}

// Volatility classifies the mean absolute percentage change of recent points.
type Volatility string

const (
	VolatilityHigh         Volatility = "high"
	VolatilityMedium       Volatility = "medium"
	VolatilityLow          Volatility = "low"
	VolatilityNotAvailable Volatility = "n/a"
)

// SpreadStatus describes the current spread against its recent history.
type SpreadStatus string

const (
	SpreadInsufficientData SpreadStatus = "insufficient data"
	SpreadStable           SpreadStatus = "stable spread"
	SpreadAboveAverage     SpreadStatus = "above the 30-period average"
	SpreadBelowAverage     SpreadStatus = "below the 30-period average"
	SpreadNormal           SpreadStatus = "within the normal range"
	SpreadNoData           SpreadStatus = "no data"
)

// LatestRate is the most recent buy/sell pair of a source.
type LatestRate struct {
	Buy  float64
	Sell float64
}

// BestRate names the source offering the best rate on one side.
type BestRate struct {
	Source Source
	Rate   float64
}

// Baseline is the reference rate savings are measured against.
// Averaged is true when no DOF quote was available and the mean of the
// other sources was used instead.
type Baseline struct {
	Source   Source
	Averaged bool
	Buy      float64
	Sell     float64
}

// Savings projects the monthly benefit of trading at the best rate.
type Savings struct {
	IfBuyAtBest  float64
	IfSellAtBest float64
}

// SourceAnalysis is one row of the per-source spread/trend/volatility table.
type SourceAnalysis struct {
	Source       Source
	HasData      bool
	Buy          float64
	Sell         float64
	Spread       float64
	SpreadStatus SpreadStatus
	Trend        Trend
	TrendPct     float64
	Volatility   Volatility
}

// ComparisonSnapshot is the cross-source comparison. It only exists as a
// return value and is recomputed on every call.
type ComparisonSnapshot struct {
	AsOf     time.Time
	Rates    map[Source]*LatestRate // nil value: source has no data in the window
	BestBuy  BestRate
	BestSell BestRate
	Baseline Baseline
	Savings  Savings
	Analysis []SourceAnalysis
}

// CompareQuery holds the comparison inputs.
type CompareQuery struct {
	LookbackDays  int
	MonthlyVolume float64
	Field         Field
}
