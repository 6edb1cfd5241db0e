package analytics

import (
	"math"
	"testing"
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
)

var day0 = time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)

// q builds a quote dayOffset days after day0.
func q(dayOffset int, buy, sell float64) models.RateQuote {
	return models.RateQuote{
		Source:    models.SourceMonex,
		Timestamp: day0.AddDate(0, 0, dayOffset),
		BuyRate:   buy,
		SellRate:  sell,
	}
}

// sells builds a daily series with constant buy and the given sell values.
func sells(values ...float64) []models.RateQuote {
	out := make([]models.RateQuote, len(values))
	for i, v := range values {
		out[i] = q(i, 17.0, v)
	}
	return out
}

func TestClassifyTrend(t *testing.T) {
	cases := []struct {
		name   string
		series []models.RateQuote
		field  models.Field
		want   models.Trend
	}{
		{name: "empty", series: nil, field: models.FieldSell, want: models.TrendNotAvailable},
		{name: "single point", series: sells(17.0), field: models.FieldSell, want: models.TrendNotAvailable},
		{name: "bullish over 7 days", series: []models.RateQuote{q(0, 16.5, 17.0), q(7, 16.6, 17.1)}, field: models.FieldSell, want: models.TrendBullish},
		{name: "bearish over 7 days", series: []models.RateQuote{q(0, 16.6, 17.1), q(7, 16.5, 17.0)}, field: models.FieldSell, want: models.TrendBearish},
		{name: "stable small change", series: []models.RateQuote{q(0, 16.50, 17.00), q(7, 16.51, 17.01)}, field: models.FieldSell, want: models.TrendStable},
		{name: "sell ignores buy move", series: []models.RateQuote{q(0, 16.0, 17.0), q(7, 16.5, 17.0)}, field: models.FieldSell, want: models.TrendStable},
		{name: "buy field selected", series: []models.RateQuote{q(0, 16.0, 17.0), q(7, 16.5, 17.0)}, field: models.FieldBuy, want: models.TrendBullish},
		{name: "nearest is t0 itself", series: []models.RateQuote{q(0, 17, 18), q(20, 17, 19)}, field: models.FieldSell, want: models.TrendNotAvailable},
		{name: "zero reference value", series: []models.RateQuote{q(0, 17, 0), q(7, 17, 18)}, field: models.FieldSell, want: models.TrendNotAvailable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ClassifyTrend(tc.series, tc.field)
			if got.Trend != tc.want {
				t.Fatalf("trend=%s (pct=%v), want %s", got.Trend, got.Pct, tc.want)
			}
			if got.Trend == models.TrendNotAvailable && got.Pct != 0 {
				t.Fatalf("n/a must carry zero pct, got %v", got.Pct)
			}
		})
	}
}

func TestClassifyTrend_SameTimestampPoints(t *testing.T) {
	series := []models.RateQuote{q(0, 16.5, 17.0), q(0, 16.5, 17.0)}
	got := ClassifyTrend(series, models.FieldSell)
	if got.Trend != models.TrendStable || got.Pct != 0 {
		t.Fatalf("got %+v, want stable with 0 pct", got)
	}
}

func TestClassifyTrend_ShortHistoryUsesNearestPoint(t *testing.T) {
	// Only two days of history: the nearest point to day2-7d is day0.
	series := []models.RateQuote{
		{Source: models.SourceDOF, Timestamp: day0, BuyRate: 18.00, SellRate: 18.00},
		{Source: models.SourceDOF, Timestamp: day0.AddDate(0, 0, 1), BuyRate: 18.09, SellRate: 18.09},
		{Source: models.SourceDOF, Timestamp: day0.AddDate(0, 0, 2), BuyRate: 18.20, SellRate: 18.20},
	}
	got := ClassifyTrend(series, models.FieldSell)
	if got.Trend != models.TrendBullish {
		t.Fatalf("trend=%s, want bullish", got.Trend)
	}
	if math.Abs(got.Pct-1.1111) > 0.001 {
		t.Fatalf("pct=%v, want ~1.11", got.Pct)
	}
}

func TestClassifyTrend_MonotonicRise(t *testing.T) {
	values := make([]float64, 10)
	for i := range values {
		values[i] = 18.0 + 0.1*float64(i)
	}
	got := ClassifyTrend(sells(values...), models.FieldSell)
	// day 9 (18.9) against day 2 (18.2): ~3.85%
	if got.Trend != models.TrendBullish || got.Pct < 0.5 {
		t.Fatalf("got %+v, want bullish", got)
	}
}

func TestClassifyVolatility(t *testing.T) {
	cases := []struct {
		name   string
		series []models.RateQuote
		want   models.Volatility
	}{
		{name: "empty", series: nil, want: models.VolatilityNotAvailable},
		{name: "two points", series: sells(17.0, 17.1), want: models.VolatilityNotAvailable},
		{name: "three points give two changes", series: sells(17.0, 17.1, 17.2), want: models.VolatilityNotAvailable},
		{name: "low", series: sells(17.000, 17.005, 17.010, 17.015), want: models.VolatilityLow},
		{name: "high", series: sells(17.0, 18.0, 16.0, 18.0), want: models.VolatilityHigh},
		{name: "medium", series: sells(100, 100.7, 100, 100.7), want: models.VolatilityMedium},
		{name: "zero previous excluded", series: sells(0, 17.00, 17.01, 17.02, 17.03), want: models.VolatilityLow},
		{name: "zero previous leaves too few", series: sells(0, 17.00, 17.01, 17.02), want: models.VolatilityNotAvailable},
		{name: "only last six points", series: sells(10, 20, 10, 20, 17.00, 17.01, 17.02, 17.03, 17.04, 17.05), want: models.VolatilityLow},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := ClassifyVolatility(tc.series, models.FieldSell); got != tc.want {
				t.Fatalf("got %s, want %s", got, tc.want)
			}
		})
	}
}

// spreads builds a daily series with buy fixed at 17.80 and the given spreads.
func spreads(values ...float64) []models.RateQuote {
	out := make([]models.RateQuote, len(values))
	for i, s := range values {
		out[i] = q(i, 17.80, 17.80+s)
	}
	return out
}

func repeat(v float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = v
	}
	return out
}

func TestAnalyzeSpread(t *testing.T) {
	constant := make([]models.RateQuote, 12)
	for i := range constant {
		constant[i] = q(i, 17.80, 18.05)
	}
	alternating := []float64{0.20, 0.30, 0.20, 0.30, 0.20, 0.30, 0.20, 0.30, 0.20, 0.30, 0.20, 0.30}

	cases := []struct {
		name   string
		series []models.RateQuote
		want   models.SpreadStatus
	}{
		{name: "insufficient", series: spreads(repeat(0.25, 9)...), want: models.SpreadInsufficientData},
		{name: "constant spread", series: constant, want: models.SpreadStable},
		{name: "above", series: spreads(append(repeat(0.20, 29), 1.00)...), want: models.SpreadAboveAverage},
		{name: "below", series: spreads(append(repeat(0.30, 29), 0.00)...), want: models.SpreadBelowAverage},
		{name: "normal", series: spreads(alternating...), want: models.SpreadNormal},
		{name: "window keeps last 30", series: spreads(append(repeat(5.0, 10), repeat(0.25, 30)...)...), want: models.SpreadStable},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := AnalyzeSpread(tc.series); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestRounding(t *testing.T) {
	cases := []struct {
		name string
		got  float64
		want float64
	}{
		{"rate", RoundRate(17.123456), 17.1235},
		{"rate exact", RoundRate(17.9), 17.9},
		{"money", RoundMoney((17.90 - 17.75) * 25000), 3750},
		{"pct", RoundPct(1.111111), 1.11},
		{"nan", RoundRate(math.NaN()), 0},
		{"inf", RoundMoney(math.Inf(1)), 0},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Fatalf("%s: got %v want %v", c.name, c.got, c.want)
		}
	}
}

func TestMean(t *testing.T) {
	if got := Mean([]float64{18.1, 18.1, 18.1}); got != 18.1 {
		t.Fatalf("identical values: got %v", got)
	}
	if got := Mean([]float64{18.00, 18.05, 18.10}); got != 18.05 {
		t.Fatalf("got %v want 18.05", got)
	}
	if got := Mean(nil); got != 0 {
		t.Fatalf("empty: got %v", got)
	}
}

func TestProjectSavings(t *testing.T) {
	baseline := models.Baseline{Source: models.SourceDOF, Buy: 17.90, Sell: 17.90}
	got := ProjectSavings(baseline,
		models.BestRate{Source: models.SourceSantander, Rate: 17.75},
		models.BestRate{Source: models.SourceSantander, Rate: 18.05},
		25000)
	if got.IfBuyAtBest != 3750 || got.IfSellAtBest != 3750 {
		t.Fatalf("unexpected savings: %+v", got)
	}

	same := ProjectSavings(baseline,
		models.BestRate{Source: models.SourceDOF, Rate: 17.90},
		models.BestRate{Source: models.SourceDOF, Rate: 17.90},
		25000)
	if same.IfBuyAtBest != 0 || same.IfSellAtBest != 0 {
		t.Fatalf("expected zero savings: %+v", same)
	}

	empty := ProjectSavings(models.Baseline{}, models.BestRate{}, models.BestRate{}, 25000)
	if empty.IfBuyAtBest != 0 || empty.IfSellAtBest != 0 {
		t.Fatalf("expected zero savings without baseline: %+v", empty)
	}
}

func TestSummarize(t *testing.T) {
	if _, ok := Summarize(models.SourceMonex, nil); ok {
		t.Fatalf("expected no stats for empty input")
	}

	st, ok := Summarize(models.SourceMonex, []float64{18.0, 18.2, 18.4})
	if !ok {
		t.Fatalf("expected stats")
	}
	if st.Average != 18.2 || st.Min != 18.0 || st.Max != 18.4 || st.Count != 3 {
		t.Fatalf("unexpected stats: %+v", st)
	}
	if st.Volatility != 0.1633 {
		t.Fatalf("volatility=%v want 0.1633", st.Volatility)
	}
	if st.Trend != DirectionUp {
		t.Fatalf("trend=%s want up", st.Trend)
	}

	down, _ := Summarize(models.SourceDOF, []float64{18.4, 18.2, 18.0})
	if down.Trend != DirectionDown {
		t.Fatalf("trend=%s want down", down.Trend)
	}
	flat, _ := Summarize(models.SourceDOF, []float64{18.000, 18.5, 18.010})
	if flat.Trend != DirectionStable {
		t.Fatalf("trend=%s want stable", flat.Trend)
	}
}
