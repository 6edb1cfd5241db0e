package ingestion

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/guttosm/fxpulse/internal/logger"
	"github.com/guttosm/fxpulse/internal/storage"
)

const (
	fileExt          = ".csv"
	defaultBatchSize = 5000
	maxParallelFiles = 8
)

// repoCtor is an indirection for creating the repository; tests can override this.
var repoCtor = func(db *sql.DB) storage.QuoteRepository {
	return storage.NewQuoteRepository(db)
}

// ProcessDirectory imports every quote file found in dir.
//
// Parameters:
//   - dir:      directory containing .csv quote files.
//   - db:       open *sql.DB (PostgreSQL).
//   - parallel: number of files processed at once; <= 0 means min(8, NumCPU).
//   - loc:      location for timestamps written without an offset (nil means UTC).
//
// Behavior:
//   - Files already recorded in import_log are skipped.
//   - Each file is parsed strictly and copied into exchange_rates in batches.
//   - If any file fails, the rest are cancelled and that error is returned.
//
// Returns:
//   - error: first error encountered (if any).
func ProcessDirectory(ctx context.Context, dir string, db *sql.DB, parallel int, loc *time.Location) error {
	repo := repoCtor(db)
	if loc == nil {
		loc = time.UTC
	}

	files, err := listQuoteFiles(dir)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no %s files found in %s", fileExt, dir)
	}

	maxParallel := maxParallelFiles
	if parallel > 0 {
		maxParallel = min(parallel, maxParallelFiles)
	} else if c := runtime.NumCPU(); c < maxParallel {
		maxParallel = c
	}

	logger.L().Info().Int("files", len(files)).Str("dir", dir).Int("max_parallel", maxParallel).Msg("import start")

	// errgroup will cancel siblings on first error.
	g, gctx := errgroup.WithContext(ctx)
	sem := make(chan struct{}, maxParallel)

	for i, f := range files {
		select {
		case sem <- struct{}{}:
		case <-gctx.Done():
			return g.Wait()
		}

		g.Go(func() error {
			defer func() { <-sem }()
			return importFile(gctx, repo, f, loc, i+1, len(files))
		})
	}

	return g.Wait()
}

func importFile(ctx context.Context, repo storage.QuoteRepository, path string, loc *time.Location, idx, total int) error {
	start := time.Now()
	base := filepath.Base(path)
	log := logger.L().With().Int("idx", idx).Int("total", total).Str("file", base).Logger()

	exists, err := repo.HasImportForFile(ctx, base)
	if err != nil {
		log.Error().Err(err).Msg("check import log failed")
		return fmt.Errorf("file %s: check import log: %w", base, err)
	}
	if exists {
		log.Info().Bool("skipped", true).Msg("already imported")
		return nil
	}

	rows, err := parseAndPersistFile(ctx, path, repo, defaultBatchSize, loc)
	if err != nil {
		log.Error().Dur("elapsed", time.Since(start)).Err(err).Msg("file failed")
		return fmt.Errorf("file %s: %w", base, err)
	}
	if err := repo.UpsertImportLog(ctx, base, rows); err != nil {
		log.Error().Err(err).Msg("update import log failed")
		return fmt.Errorf("file %s: upsert import log: %w", base, err)
	}

	log.Info().Int("rows", rows).Dur("elapsed", time.Since(start)).Msg("file done")
	return nil
}

// listQuoteFiles returns the quote files of dir sorted by name.
func listQuoteFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read dir %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.EqualFold(filepath.Ext(e.Name()), fileExt) {
			continue
		}
		files = append(files, filepath.Join(dir, e.Name()))
	}
	sort.Strings(files)
	return files, nil
}
