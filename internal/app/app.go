package app

import (
	"fmt"

	"github.com/gin-gonic/gin"

	"github.com/guttosm/fxpulse/config"
	"github.com/guttosm/fxpulse/internal/api"
	"github.com/guttosm/fxpulse/internal/logger"
	"github.com/guttosm/fxpulse/internal/middleware"
	"github.com/guttosm/fxpulse/internal/service"
	"github.com/guttosm/fxpulse/internal/storage"
)

// InitializeApp sets up all application dependencies and returns
// a fully configured Gin router, a cleanup function for graceful shutdown,
// and any error encountered during initialization.
//
// Responsibilities:
//   - Connects to PostgreSQL using InitPostgres().
//   - Builds the quote repository and the FX analytics service.
//   - Applies the configured rate limit and request defaults.
//   - Registers health and readiness checks.
//
// Returns:
//   - *gin.Engine: the configured Gin HTTP router.
//   - func(): cleanup function to be executed on shutdown.
//   - error: any initialization error that occurred.
func InitializeApp() (*gin.Engine, func(), error) {
	cfg := config.AppConfig

	loc, err := cfg.FX.Location()
	if err != nil {
		return nil, nil, fmt.Errorf("invalid FX_TIMEZONE: %w", err)
	}

	db, err := postgresOpener(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to initialize postgres: %w", err)
	}

	repo := storage.NewQuoteRepository(db)
	svc := service.NewFXService(repo, loc)

	handler := api.NewHandler(svc, api.Defaults{
		LookbackDays:  cfg.FX.DefaultLookbackDays,
		MonthlyVolume: cfg.FX.DefaultMonthlyVolume,
	})

	middleware.SetRateLimit(cfg.Server.RateLimitPerMinute)
	router := api.NewRouter(handler)

	api.NewHealthHandler(db.PingContext).Register(router)

	logger.L().Info().
		Str("timezone", loc.String()).
		Int("default_lookback_days", cfg.FX.DefaultLookbackDays).
		Msg("fx service initialized")

	cleanup := func() {
		_ = db.Close()
	}

	return router, cleanup, nil
}
