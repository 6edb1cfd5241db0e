package service

import (
	"context"
	"fmt"
	"math"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/fxpulse/internal/analytics"
	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
)

// ComparisonEngine builds the cross-source best-rate comparison.
type ComparisonEngine struct {
	loader *SeriesLoader
}

func NewComparisonEngine(loader *SeriesLoader) *ComparisonEngine {
	return &ComparisonEngine{loader: loader}
}

// Compare loads every source concurrently and derives the snapshot once all
// fetches have returned. A failed fetch fails the whole comparison.
func (e *ComparisonEngine) Compare(ctx context.Context, q models.CompareQuery) (*models.ComparisonSnapshot, error) {
	if err := validateLookback(q.LookbackDays); err != nil {
		return nil, err
	}
	if q.MonthlyVolume <= 0 || math.IsNaN(q.MonthlyVolume) || math.IsInf(q.MonthlyVolume, 0) {
		return nil, models.NewValidationError(models.KindInvalidParameter,
			"monthly volume must be a positive number, got %v", q.MonthlyVolume)
	}
	field, err := models.ParseField(string(q.Field), models.FieldSell)
	if err != nil {
		return nil, err
	}

	sources := models.Sources()
	series := make([][]models.RateQuote, len(sources))

	var g errgroup.Group
	for i, src := range sources {
		g.Go(func() error {
			s, err := e.loader.Load(ctx, src, q.LookbackDays)
			if err != nil {
				return fmt.Errorf("fetch %s: %w", src, err)
			}
			series[i] = s
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	snap := buildSnapshot(sources, series, field, q.MonthlyVolume)
	if snap.AsOf.IsZero() {
		snap.AsOf = e.loader.now()
	}

	logger.L().Debug().
		Int("lookback_days", q.LookbackDays).
		Str("best_buy", snap.BestBuy.Source.String()).
		Str("best_sell", snap.BestSell.Source.String()).
		Msg("comparison computed")
	return snap, nil
}

// buildSnapshot is the pure part of Compare. series[i] belongs to sources[i].
// AsOf is left zero when no source has data.
func buildSnapshot(sources []models.Source, series [][]models.RateQuote, field models.Field, volume float64) *models.ComparisonSnapshot {
	snap := &models.ComparisonSnapshot{
		Rates:    make(map[models.Source]*models.LatestRate, len(sources)),
		BestBuy:  models.BestRate{Source: models.SourceNone},
		BestSell: models.BestRate{Source: models.SourceNone},
		Analysis: make([]models.SourceAnalysis, 0, len(sources)),
	}

	var (
		buys, sells []float64
		haveBest    bool
	)
	for i, src := range sources {
		s := series[i]
		if len(s) == 0 {
			snap.Rates[src] = nil
			snap.Analysis = append(snap.Analysis, noDataRow(src))
			continue
		}

		latest := s[len(s)-1]
		snap.Rates[src] = &models.LatestRate{
			Buy:  analytics.RoundRate(latest.BuyRate),
			Sell: analytics.RoundRate(latest.SellRate),
		}
		if latest.Timestamp.After(snap.AsOf) {
			snap.AsOf = latest.Timestamp
		}

		// strict comparisons: earlier sources win ties
		if !haveBest || latest.BuyRate < snap.BestBuy.Rate {
			snap.BestBuy = models.BestRate{Source: src, Rate: latest.BuyRate}
		}
		if !haveBest || latest.SellRate > snap.BestSell.Rate {
			snap.BestSell = models.BestRate{Source: src, Rate: latest.SellRate}
		}
		haveBest = true

		if src == models.SourceDOF {
			snap.Baseline = models.Baseline{Source: models.SourceDOF, Buy: latest.BuyRate, Sell: latest.SellRate}
		}
		buys = append(buys, latest.BuyRate)
		sells = append(sells, latest.SellRate)

		snap.Analysis = append(snap.Analysis, analyzeSource(src, s, field))
	}

	if snap.Baseline.Source != models.SourceDOF && len(buys) > 0 {
		snap.Baseline = models.Baseline{
			Source:   models.SourceNone,
			Averaged: true,
			Buy:      analytics.Mean(buys),
			Sell:     analytics.Mean(sells),
		}
	}

	snap.Savings = analytics.ProjectSavings(snap.Baseline, snap.BestBuy, snap.BestSell, volume)

	snap.BestBuy.Rate = analytics.RoundRate(snap.BestBuy.Rate)
	snap.BestSell.Rate = analytics.RoundRate(snap.BestSell.Rate)
	snap.Baseline.Buy = analytics.RoundRate(snap.Baseline.Buy)
	snap.Baseline.Sell = analytics.RoundRate(snap.Baseline.Sell)
	return snap
}

func analyzeSource(src models.Source, s []models.RateQuote, field models.Field) models.SourceAnalysis {
	latest := s[len(s)-1]
	trend := analytics.ClassifyTrend(s, field)
	return models.SourceAnalysis{
		Source:       src,
		HasData:      true,
		Buy:          analytics.RoundRate(latest.BuyRate),
		Sell:         analytics.RoundRate(latest.SellRate),
		Spread:       analytics.RoundRate(latest.SellRate - latest.BuyRate),
		SpreadStatus: analytics.AnalyzeSpread(s),
		Trend:        trend.Trend,
		TrendPct:     analytics.RoundPct(trend.Pct),
		Volatility:   analytics.ClassifyVolatility(s, field),
	}
}

func noDataRow(src models.Source) models.SourceAnalysis {
	return models.SourceAnalysis{
		Source:       src,
		SpreadStatus: models.SpreadNoData,
		Trend:        models.TrendNotAvailable,
		Volatility:   models.VolatilityNotAvailable,
	}
}
