package ingestion

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/storage"
)

// expectedHeaders enforces strict column ordering for quote files.
// If the header doesn't match EXACTLY (order + count), the file is rejected.
var expectedHeaders = []string{
	"source",
	"date",
	"buy_rate",
	"sell_rate",
}

// dateLayouts are tried in order. Layouts without an offset are read in the
// importer's location.
var dateLayouts = []string{
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
}

// parseAndPersistFile opens, validates, parses, and persists one file in batches.
// Any malformed row fails the whole file.
//
// Parameters:
//   - ctx:    context for cancellation/timeouts.
//   - path:   file path.
//   - repo:   repository for DB insertion.
//   - batch:  batch size for inserts (e.g., 5000).
//   - loc:    location for timestamps without an offset.
func parseAndPersistFile(ctx context.Context, path string, repo storage.QuoteRepository, batch int, loc *time.Location) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, fmt.Errorf("open: %w", err)
	}
	defer func() { _ = f.Close() }()

	r := csv.NewReader(f)
	r.Comma = ';'
	r.TrimLeadingSpace = true
	r.FieldsPerRecord = -1 // checked explicitly for better messages

	header, err := r.Read()
	if err != nil {
		return 0, fmt.Errorf("read header: %w", err)
	}
	if len(header) != len(expectedHeaders) {
		return 0, fmt.Errorf("invalid header length: expected %d, got %d", len(expectedHeaders), len(header))
	}
	for i, h := range header {
		h = strings.TrimPrefix(h, "\ufeff")
		if !strings.EqualFold(strings.TrimSpace(h), expectedHeaders[i]) {
			return 0, fmt.Errorf("invalid header at col %d: expected %q, got %q", i+1, expectedHeaders[i], h)
		}
	}

	buf := make([]models.RateQuote, 0, batch)
	lineNumber := 1

	flush := func() error {
		if len(buf) == 0 {
			return nil
		}
		if err := repo.InsertQuotesBatch(ctx, buf); err != nil {
			return err
		}
		buf = buf[:0]
		return nil
	}

	total := 0
	for {
		if err := ctx.Err(); err != nil {
			return 0, err
		}

		rec, err := r.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("read line after %d: %w", lineNumber, err)
		}
		lineNumber++

		if isBlank(rec) {
			continue
		}
		if len(rec) != len(expectedHeaders) {
			return 0, fmt.Errorf("invalid column count on line %d: expected %d got %d", lineNumber, len(expectedHeaders), len(rec))
		}

		q, err := recordToQuote(rec, loc)
		if err != nil {
			return 0, fmt.Errorf("line %d: %w", lineNumber, err)
		}

		buf = append(buf, q)
		total++
		if len(buf) >= batch {
			if err := flush(); err != nil {
				return 0, fmt.Errorf("flush batch ending line %d: %w", lineNumber, err)
			}
		}
	}

	if err := flush(); err != nil {
		return 0, fmt.Errorf("final flush: %w", err)
	}
	return total, nil
}

// recordToQuote converts one record (length already checked) into a quote.
//
//	0 source     MONEX, Santander or DOF (case-insensitive)
//	1 date       RFC3339, "YYYY-MM-DD HH:MM[:SS]" or "YYYY-MM-DD"
//	2 buy_rate   positive decimal, comma or dot separator
//	3 sell_rate  positive decimal; may be empty for DOF (copies buy_rate)
func recordToQuote(rec []string, loc *time.Location) (models.RateQuote, error) {
	var q models.RateQuote

	src, err := models.ParseSource(rec[0])
	if err != nil {
		return q, err
	}
	q.Source = src

	ts, err := parseTimestamp(rec[1], loc)
	if err != nil {
		return q, err
	}
	q.Timestamp = ts

	if q.BuyRate, err = parseRate("buy_rate", rec[2]); err != nil {
		return q, err
	}

	sell := strings.TrimSpace(rec[3])
	if sell == "" && src == models.SourceDOF {
		q.SellRate = q.BuyRate
		return q, nil
	}
	if q.SellRate, err = parseRate("sell_rate", sell); err != nil {
		return q, err
	}

	if src == models.SourceDOF && q.BuyRate != q.SellRate {
		return q, fmt.Errorf("DOF quote must have buy_rate == sell_rate, got %v and %v", q.BuyRate, q.SellRate)
	}
	return q, nil
}

func parseTimestamp(raw string, loc *time.Location) (time.Time, error) {
	s := strings.TrimSpace(raw)
	for _, layout := range dateLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("invalid date %q", raw)
}

func parseRate(name, raw string) (float64, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	if s == "" {
		return 0, fmt.Errorf("missing %s", name)
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s: %v", name, err)
	}
	if v <= 0 || math.IsInf(v, 0) || math.IsNaN(v) {
		return 0, fmt.Errorf("invalid %s: must be a positive number, got %q", name, raw)
	}
	return v, nil
}

func isBlank(rec []string) bool {
	for _, c := range rec {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}
