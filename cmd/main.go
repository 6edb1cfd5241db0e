package main

//
//  @title           fxpulse API
//  @version         1.0
//  @description     USD/MXN rate analytics: per-source history, cross-source comparison and charting buckets.
//  @termsOfService  https://github.com/guttosm/fxpulse
//  @contact.name    API Support
//  @contact.url     https://github.com/guttosm/fxpulse
//  @contact.email   support@example.com
//  @license.name    MIT
//  @license.url     https://opensource.org/licenses/MIT
//  @host            localhost:8080
//  @BasePath        /
//  @schemes         http
//
//  @tag.name        fx
//  @tag.description Source history and cross-source comparison
//
//  @tag.name        rates
//  @tag.description Hourly, range and monthly charting buckets and range statistics
//
//  @tag.name        health
//  @tag.description Liveness and readiness checks

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/guttosm/fxpulse/config"
	_ "github.com/guttosm/fxpulse/docs" // swagger docs
	"github.com/guttosm/fxpulse/internal/app"
	"github.com/guttosm/fxpulse/internal/ingestion"
	"github.com/guttosm/fxpulse/internal/logger"
)

const (
	modeAPI    = "api"
	modeImport = "import"
)

// options are the command line flags.
type options struct {
	mode     string
	dir      string
	parallel int
	port     string
}

// parseFlags reads the command line. defaultPort comes from SERVER_PORT.
func parseFlags(args []string, defaultPort string, out io.Writer) (options, error) {
	var opts options
	fs := flag.NewFlagSet("fxpulse", flag.ContinueOnError)
	fs.SetOutput(out)
	fs.StringVar(&opts.mode, "mode", modeAPI, "Mode: api or import")
	fs.StringVar(&opts.dir, "dir", "./data/input", "Directory with .csv quote files (import mode)")
	fs.IntVar(&opts.parallel, "parallel", 0, "How many files to import concurrently (0=auto up to CPU, max 8)")
	fs.StringVar(&opts.port, "port", defaultPort, "Port for API mode")
	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if opts.mode != modeAPI && opts.mode != modeImport {
		return opts, fmt.Errorf("unknown mode %q (want %s or %s)", opts.mode, modeAPI, modeImport)
	}
	if opts.parallel < 0 {
		return opts, fmt.Errorf("parallel must be >= 0, got %d", opts.parallel)
	}
	return opts, nil
}

// startServer initializes and starts the HTTP server in a separate goroutine.
//
// Parameters:
//   - router (http.Handler): The HTTP router (Gin Engine) configured with all routes.
//   - port (string): The port where the server will listen for incoming requests.
//
// Returns:
//   - *http.Server: The initialized HTTP server instance.
func startServer(router http.Handler, port string) *http.Server {
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.L().Info().Str("port", port).Msg("server starting")
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.L().Fatal().Err(err).Msg("server failed to start")
		}
	}()

	return server
}

// gracefulShutdown gracefully terminates the HTTP server and cleans up resources
// when an OS interrupt signal (SIGINT, SIGTERM) is received.
func gracefulShutdown(ctx context.Context, server *http.Server, cleanup func()) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	<-quit
	logger.L().Info().Msg("shutting down server")

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.L().Fatal().Err(err).Msg("server forced to shutdown")
	}

	cleanup()
	logger.L().Info().Msg("server exited gracefully")
}

// runImport loads every quote file of opts.dir into the store.
func runImport(ctx context.Context, cfg config.Config, opts options) error {
	loc, err := cfg.FX.Location()
	if err != nil {
		return fmt.Errorf("invalid FX_TIMEZONE: %w", err)
	}

	db, err := app.InitPostgres(cfg)
	if err != nil {
		return fmt.Errorf("db connect: %w", err)
	}
	defer func() { _ = db.Close() }()

	return ingestion.ProcessDirectory(ctx, opts.dir, db, opts.parallel, loc)
}

// main is the entry point of the fxpulse application.
//
// Modes (selected via --mode flag):
//   - api:    Starts the REST API (default).
//   - import: Loads the .csv quote files of --dir into PostgreSQL and exits.
func main() {
	config.LoadConfig()
	logger.Init()

	opts, err := parseFlags(os.Args[1:], config.AppConfig.Server.Port, os.Stderr)
	if err != nil {
		logger.L().Fatal().Err(err).Msg("invalid flags")
	}

	switch opts.mode {
	case modeImport:
		logger.L().Info().Str("dir", opts.dir).Msg("running import")
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		if err := runImport(ctx, config.AppConfig, opts); err != nil {
			logger.L().Fatal().Err(err).Msg("import failed")
		}
		logger.L().Info().Msg("import completed successfully")

	case modeAPI:
		logger.L().Info().Msg("starting API server")

		router, cleanup, err := app.InitializeApp()
		if err != nil {
			logger.L().Fatal().Err(err).Msg("app init error")
		}

		server := startServer(router, opts.port)
		gracefulShutdown(context.Background(), server, cleanup)
	}
}
