package dto

import (
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

// averagedBaselineSource labels a baseline built from the mean of all sources.
const averagedBaselineSource = "average"

// SeriesPointResponse is one point of a source series.
type SeriesPointResponse struct {
	Date string  `json:"date" example:"2025-09-15"`
	Buy  float64 `json:"buy" example:"17.8"`
	Sell float64 `json:"sell" example:"18.05"`
}

// SourceSeriesResponse is returned by GET /api/v1/fx/source-series.
//
// swagger:model SourceSeriesResponse
type SourceSeriesResponse struct {
	Source     string                `json:"source" example:"MONEX"`
	Series     []SeriesPointResponse `json:"series"`
	LastUpdate *string               `json:"last_update" example:"2025-09-15"`
}

// RatePairResponse is the latest buy/sell pair of a source.
type RatePairResponse struct {
	Buy  float64 `json:"buy" example:"17.75"`
	Sell float64 `json:"sell" example:"18.05"`
}

// BestRateResponse names the source with the best rate on one side.
type BestRateResponse struct {
	Source string  `json:"source" example:"Santander"`
	Rate   float64 `json:"rate" example:"17.75"`
}

// BaselineResponse is the reference rate of the savings calculator.
// Source is "DOF", or "average" when DOF had no data.
type BaselineResponse struct {
	Source string  `json:"source" example:"DOF"`
	Buy    float64 `json:"buy" example:"17.9"`
	Sell   float64 `json:"sell" example:"17.9"`
}

// SavingsResponse projects the monthly savings of trading at the best rates.
type SavingsResponse struct {
	IfBuyAtBestVsBaseline  float64 `json:"if_buy_at_best_vs_baseline" example:"3750"`
	IfSellAtBestVsBaseline float64 `json:"if_sell_at_best_vs_baseline" example:"3750"`
}

// SpreadAnalysisResponse is one row of the per-source analysis table.
type SpreadAnalysisResponse struct {
	Source       string  `json:"source" example:"MONEX"`
	Buy          float64 `json:"buy" example:"17.8"`
	Sell         float64 `json:"sell" example:"18"`
	Spread       float64 `json:"spread" example:"0.2"`
	SpreadStatus string  `json:"spread_status" example:"within the normal range"`
	Trend        string  `json:"trend_7d" example:"bullish"`
	TrendPct     float64 `json:"trend_pct" example:"0.85"`
	Volatility   string  `json:"volatility_5d" example:"low"`
}

// ComparisonResponse is returned by GET /api/v1/fx/compare.
//
// Rates holds every known source; the value is null when the source had no
// quotes in the lookback window.
//
// swagger:model ComparisonResponse
type ComparisonResponse struct {
	AsOf              string                       `json:"as_of" example:"2025-09-15T15:00:00Z"`
	Rates             map[string]*RatePairResponse `json:"rates"`
	BestBuy           BestRateResponse             `json:"best_buy"`
	BestSell          BestRateResponse             `json:"best_sell"`
	Baseline          BaselineResponse             `json:"baseline"`
	SavingsCalculator SavingsResponse              `json:"savings_calculator"`
	SpreadsAnalysis   []SpreadAnalysisResponse     `json:"spreads_analysis"`
}

// BucketResponse is one charting point. A source field is omitted when the
// source had no quote inside the bucket.
//
// swagger:model BucketResponse
type BucketResponse struct {
	Bucket    string   `json:"bucket" example:"2025-09-15T09:00-06:00"`
	Timestamp string   `json:"timestamp" example:"2025-09-15T15:00:00Z"`
	Monex     *float64 `json:"monex,omitempty" example:"18.1"`
	Santander *float64 `json:"santander,omitempty" example:"18.05"`
	DOF       *float64 `json:"dof,omitempty" example:"17.9"`
}

// SourceStatsResponse summarizes one source over a date range.
//
// swagger:model SourceStatsResponse
type SourceStatsResponse struct {
	Source     string  `json:"source" example:"DOF"`
	Average    float64 `json:"average" example:"18.2"`
	Max        float64 `json:"max" example:"18.4"`
	Min        float64 `json:"min" example:"18"`
	Volatility float64 `json:"volatility" example:"0.1633"`
	Trend      string  `json:"trend" example:"up"`
	Count      int     `json:"count" example:"3"`
}

// NewSourceSeriesResponse maps a domain series to its response.
func NewSourceSeriesResponse(s *models.SourceSeries) SourceSeriesResponse {
	out := SourceSeriesResponse{
		Source:     s.Source.String(),
		Series:     make([]SeriesPointResponse, 0, len(s.Series)),
		LastUpdate: s.LastUpdate,
	}
	for _, p := range s.Series {
		out.Series = append(out.Series, SeriesPointResponse{Date: p.Date, Buy: p.Buy, Sell: p.Sell})
	}
	return out
}

// NewComparisonResponse maps a comparison snapshot to its response.
func NewComparisonResponse(snap *models.ComparisonSnapshot) ComparisonResponse {
	out := ComparisonResponse{
		AsOf:  snap.AsOf.UTC().Format(time.RFC3339),
		Rates: make(map[string]*RatePairResponse, len(snap.Rates)),
		BestBuy: BestRateResponse{
			Source: snap.BestBuy.Source.String(),
			Rate:   snap.BestBuy.Rate,
		},
		BestSell: BestRateResponse{
			Source: snap.BestSell.Source.String(),
			Rate:   snap.BestSell.Rate,
		},
		Baseline: BaselineResponse{
			Source: snap.Baseline.Source.String(),
			Buy:    snap.Baseline.Buy,
			Sell:   snap.Baseline.Sell,
		},
		SavingsCalculator: SavingsResponse{
			IfBuyAtBestVsBaseline:  snap.Savings.IfBuyAtBest,
			IfSellAtBestVsBaseline: snap.Savings.IfSellAtBest,
		},
		SpreadsAnalysis: make([]SpreadAnalysisResponse, 0, len(snap.Analysis)),
	}
	if snap.Baseline.Averaged || snap.Baseline.Source == models.SourceNone {
		out.Baseline.Source = averagedBaselineSource
	}

	for src, r := range snap.Rates {
		if r == nil {
			out.Rates[src.String()] = nil
			continue
		}
		out.Rates[src.String()] = &RatePairResponse{Buy: r.Buy, Sell: r.Sell}
	}

	for _, a := range snap.Analysis {
		out.SpreadsAnalysis = append(out.SpreadsAnalysis, SpreadAnalysisResponse{
			Source:       a.Source.String(),
			Buy:          a.Buy,
			Sell:         a.Sell,
			Spread:       a.Spread,
			SpreadStatus: string(a.SpreadStatus),
			Trend:        string(a.Trend),
			TrendPct:     a.TrendPct,
			Volatility:   string(a.Volatility),
		})
	}
	return out
}

// NewBucketResponses maps buckets to their responses, keeping their order.
func NewBucketResponses(buckets []models.Bucket) []BucketResponse {
	out := make([]BucketResponse, 0, len(buckets))
	for _, b := range buckets {
		r := BucketResponse{
			Bucket:    b.Key,
			Timestamp: b.Start.UTC().Format(time.RFC3339),
		}
		for src, v := range b.Values {
			switch src {
			case models.SourceMonex:
				r.Monex = &v
			case models.SourceSantander:
				r.Santander = &v
			case models.SourceDOF:
				r.DOF = &v
			}
		}
		out = append(out, r)
	}
	return out
}

// NewSourceStatsResponses maps range statistics to their responses.
func NewSourceStatsResponses(stats []models.SourceStats) []SourceStatsResponse {
	out := make([]SourceStatsResponse, 0, len(stats))
	for _, s := range stats {
		out = append(out, SourceStatsResponse{
			Source:     s.Source.String(),
			Average:    s.Average,
			Max:        s.Max,
			Min:        s.Min,
			Volatility: s.Volatility,
			Trend:      s.Trend,
			Count:      s.Count,
		})
	}
	return out
}
