package ingestion

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/guttosm/fxpulse/internal/domain/models"
	"github.com/guttosm/fxpulse/internal/storage"
)

// fakeRepoIngestion implements the write side of QuoteRepository for ProcessDirectory tests.
type fakeRepoIngestion struct {
	mu        sync.Mutex
	imported  map[string]int
	quotes    []models.RateQuote
	batches   int
	hasErr    error
	insertErr error
	upsertErr error
}

func (f *fakeRepoIngestion) ListBySource(context.Context, models.Source, time.Time) ([]models.RateQuote, error) {
	return nil, nil
}

func (f *fakeRepoIngestion) ListInRange(context.Context, time.Time, time.Time, []models.Source) ([]models.RateQuote, error) {
	return nil, nil
}

func (f *fakeRepoIngestion) InsertQuotesBatch(_ context.Context, quotes []models.RateQuote) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.insertErr != nil {
		return f.insertErr
	}
	f.batches++
	f.quotes = append(f.quotes, quotes...)
	return nil
}

func (f *fakeRepoIngestion) HasImportForFile(_ context.Context, filename string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.hasErr != nil {
		return false, f.hasErr
	}
	_, ok := f.imported[filename]
	return ok, nil
}

func (f *fakeRepoIngestion) UpsertImportLog(_ context.Context, filename string, rowCount int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.upsertErr != nil {
		return f.upsertErr
	}
	if f.imported == nil {
		f.imported = map[string]int{}
	}
	f.imported[filename] = rowCount
	return nil
}

func useRepo(t *testing.T, fr *fakeRepoIngestion) {
	t.Helper()
	old := repoCtor
	repoCtor = func(_ *sql.DB) storage.QuoteRepository { return fr }
	t.Cleanup(func() { repoCtor = old })
}

func writeFile(t *testing.T, dir, name string, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return p
}

const sampleFile = "source;date;buy_rate;sell_rate\n" +
	"MONEX;2025-09-15 09:00;17,80;18,00\n" +
	"santander;2025-09-15T09:05:00-06:00;17.75;18.05\n" +
	"DOF;2025-09-15;17.9;\n"

func TestProcessDirectory_ImportsFiles(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2025-09-15.csv", sampleFile)
	writeFile(t, dir, "2025-09-16.CSV", "source;date;buy_rate;sell_rate\nDOF;2025-09-16;17.95;17.95\n")
	writeFile(t, dir, "notes.txt", "ignored")

	fr := &fakeRepoIngestion{}
	useRepo(t, fr)

	if err := ProcessDirectory(context.Background(), dir, nil, 2, time.UTC); err != nil {
		t.Fatalf("ProcessDirectory err: %v", err)
	}
	if len(fr.quotes) != 4 {
		t.Fatalf("expected 4 quotes, got %d", len(fr.quotes))
	}
	if fr.imported["2025-09-15.csv"] != 3 || fr.imported["2025-09-16.CSV"] != 1 {
		t.Fatalf("unexpected import log: %+v", fr.imported)
	}
	if _, ok := fr.imported["notes.txt"]; ok {
		t.Fatalf("non csv file must be ignored")
	}
}

func TestProcessDirectory_SkipIfAlreadyImported(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "2025-09-15.csv", sampleFile)

	fr := &fakeRepoIngestion{imported: map[string]int{"2025-09-15.csv": 3}}
	useRepo(t, fr)

	if err := ProcessDirectory(context.Background(), dir, nil, 0, nil); err != nil {
		t.Fatalf("ProcessDirectory err: %v", err)
	}
	if len(fr.quotes) != 0 {
		t.Fatalf("expected no inserts when already imported, got %d", len(fr.quotes))
	}
}

func TestProcessDirectory_NoFiles(t *testing.T) {
	useRepo(t, &fakeRepoIngestion{})
	err := ProcessDirectory(context.Background(), t.TempDir(), nil, 1, nil)
	if err == nil || !strings.Contains(err.Error(), "no .csv files") {
		t.Fatalf("expected no files error, got %v", err)
	}
}

func TestProcessDirectory_MissingDir(t *testing.T) {
	useRepo(t, &fakeRepoIngestion{})
	if err := ProcessDirectory(context.Background(), filepath.Join(t.TempDir(), "nope"), nil, 1, nil); err == nil {
		t.Fatalf("expected error for a missing directory")
	}
}

func TestProcessDirectory_RepoErrors(t *testing.T) {
	cases := []struct {
		name string
		repo *fakeRepoIngestion
		want string
	}{
		{"check log", &fakeRepoIngestion{hasErr: context.DeadlineExceeded}, "check import log"},
		{"insert", &fakeRepoIngestion{insertErr: errors.New("copy failed")}, "copy failed"},
		{"upsert log", &fakeRepoIngestion{upsertErr: context.Canceled}, "upsert import log"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFile(t, dir, "rates.csv", sampleFile)
			useRepo(t, tc.repo)

			err := ProcessDirectory(context.Background(), dir, nil, 1, time.UTC)
			if err == nil || !strings.Contains(err.Error(), tc.want) || !strings.Contains(err.Error(), "rates.csv") {
				t.Fatalf("expected error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestProcessDirectory_BadFileStopsImport(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "bad.csv", "source;date;buy_rate;sell_rate\nBBVA;2025-09-15;17.8;18.0\n")

	fr := &fakeRepoIngestion{}
	useRepo(t, fr)

	err := ProcessDirectory(context.Background(), dir, nil, 1, time.UTC)
	if err == nil || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected line error, got %v", err)
	}
	if _, ok := fr.imported["bad.csv"]; ok {
		t.Fatalf("failed file must not be logged as imported")
	}
}
