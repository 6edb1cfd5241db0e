package service

import (
	"context"
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/storage"
)

// FXService defines the analytics operations exposed over HTTP.
type FXService interface {
	SourceSeries(ctx context.Context, source string, lookbackDays int) (*models.SourceSeries, error)
	Compare(ctx context.Context, q models.CompareQuery) (*models.ComparisonSnapshot, error)
	Hourly(ctx context.Context, q models.HourlyQuery) ([]models.Bucket, error)
	Range(ctx context.Context, q models.RangeQuery) ([]models.Bucket, error)
	Monthly(ctx context.Context, q models.MonthlyQuery) ([]models.Bucket, error)
	Stats(ctx context.Context, q models.StatsQuery) ([]models.SourceStats, error)
}

type fxService struct {
	*SeriesLoader
	*ComparisonEngine
	*TemporalAggregator
}

// NewFXService wires the loader, comparison engine and aggregator over one repository.
func NewFXService(repo storage.QuoteRepository, loc *time.Location) FXService {
	loader := NewSeriesLoader(repo, loc)
	return &fxService{
		SeriesLoader:       loader,
		ComparisonEngine:   NewComparisonEngine(loader),
		TemporalAggregator: NewTemporalAggregator(repo, loader.Location()),
	}
}
