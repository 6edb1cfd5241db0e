package storage

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	pq "github.com/lib/pq"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/logger"
)

// QuoteRepository defines contract for DB operations on exchange rate quotes.
//
// Read methods return quotes ordered by timestamp ascending. Rows whose source
// column does not match a known source are skipped.
type QuoteRepository interface {
	ListBySource(ctx context.Context, source models.Source, since time.Time) ([]models.RateQuote, error)
	ListInRange(ctx context.Context, start, end time.Time, sources []models.Source) ([]models.RateQuote, error)
	InsertQuotesBatch(ctx context.Context, quotes []models.RateQuote) error
	HasImportForFile(ctx context.Context, filename string) (bool, error)
	UpsertImportLog(ctx context.Context, filename string, rowCount int) error
}

type quoteRepository struct {
	db *sql.DB
}

func NewQuoteRepository(db *sql.DB) QuoteRepository {
	return &quoteRepository{db: db}
}

const selectQuotes = `
		SELECT source, date, buy_rate, sell_rate
		FROM exchange_rates
		WHERE %s
		ORDER BY date ASC, id ASC`

// ListBySource returns the quotes of one source with date >= since.
func (r *quoteRepository) ListBySource(ctx context.Context, source models.Source, since time.Time) ([]models.RateQuote, error) {
	query := fmt.Sprintf(selectQuotes, "LOWER(TRIM(source)) = $1 AND date >= $2")
	return r.queryQuotes(ctx, query, source.Key(), since)
}

// ListInRange returns quotes with start <= date <= end, optionally filtered by source.
// A nil or empty sources slice means every source.
func (r *quoteRepository) ListInRange(ctx context.Context, start, end time.Time, sources []models.Source) ([]models.RateQuote, error) {
	// $1 and $2 are always the range bounds; source placeholders follow.
	conditions := "date >= $1 AND date <= $2"
	args := []interface{}{start, end}
	if len(sources) > 0 {
		placeholders := make([]string, 0, len(sources))
		for _, s := range sources {
			args = append(args, s.Key())
			placeholders = append(placeholders, fmt.Sprintf("$%d", len(args)))
		}
		conditions += fmt.Sprintf(" AND LOWER(TRIM(source)) IN (%s)", strings.Join(placeholders, ", "))
	}
	return r.queryQuotes(ctx, fmt.Sprintf(selectQuotes, conditions), args...)
}

func (r *quoteRepository) queryQuotes(ctx context.Context, query string, args ...interface{}) ([]models.RateQuote, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query exchange_rates: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []models.RateQuote
	for rows.Next() {
		var (
			rawSource string
			q         models.RateQuote
		)
		if err := rows.Scan(&rawSource, &q.Timestamp, &q.BuyRate, &q.SellRate); err != nil {
			return nil, fmt.Errorf("scan exchange_rates: %w", err)
		}
		src, err := models.ParseSource(rawSource)
		if err != nil {
			logger.L().Debug().Str("source", rawSource).Msg("skipping quote with unknown source")
			continue
		}
		q.Source = src
		out = append(out, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate exchange_rates: %w", err)
	}
	return out, nil
}

// InsertQuotesBatch inserts multiple quotes into DB in a single transaction.
func (r *quoteRepository) InsertQuotesBatch(ctx context.Context, quotes []models.RateQuote) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	stmt, err := tx.PrepareContext(ctx, pq.CopyIn(
		"exchange_rates",
		"source",
		"date",
		"buy_rate",
		"sell_rate",
	))
	if err != nil {
		_ = tx.Rollback()
		return err
	}

	for _, q := range quotes {
		if _, err := stmt.ExecContext(ctx, q.Source.String(), q.Timestamp, q.BuyRate, q.SellRate); err != nil {
			_ = stmt.Close()
			_ = tx.Rollback()
			return err
		}
	}

	if _, err := stmt.ExecContext(ctx); err != nil {
		_ = stmt.Close()
		_ = tx.Rollback()
		return err
	}
	if err := stmt.Close(); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}

// HasImportForFile checks if a file was already imported.
func (r *quoteRepository) HasImportForFile(ctx context.Context, filename string) (bool, error) {
	var exists bool
	err := r.db.QueryRowContext(ctx, `SELECT EXISTS(SELECT 1 FROM import_log WHERE filename = $1)`, filename).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// UpsertImportLog records (or updates) the import of a file.
func (r *quoteRepository) UpsertImportLog(ctx context.Context, filename string, rowCount int) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO import_log (filename, row_count)
		VALUES ($1, $2)
		ON CONFLICT (filename)
		DO UPDATE SET row_count = EXCLUDED.row_count,
					  imported_at = NOW()
	`, filename, rowCount)
	return err
}
