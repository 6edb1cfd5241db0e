package config

import (
	"fmt"
	"log"
	"time"
	_ "time/tzdata" // FX_TIMEZONE must resolve on hosts without a zoneinfo database

	"github.com/spf13/viper"
)

// Config holds the full application configuration loaded from environment variables or .env file.
//
// It is composed of smaller structs that represent different concerns of the system,
// such as server settings, Postgres connection details and FX analytics defaults.
//
// Example ENV equivalent:
//
//	SERVER_PORT=8080
//	RATE_LIMIT_PER_MINUTE=60
//	POSTGRES_HOST=localhost
//	POSTGRES_PORT=5432
//	POSTGRES_USER=admin
//	POSTGRES_PASSWORD=secret
//	POSTGRES_DB=fxpulse
//	POSTGRES_SSLMODE=disable
//	FX_TIMEZONE=America/Mexico_City
//	FX_DEFAULT_LOOKBACK_DAYS=30
//	FX_DEFAULT_MONTHLY_VOLUME=25000
type Config struct {
	Server   ServerConfig   // HTTP server configuration
	Postgres PostgresConfig // PostgreSQL connection settings
	FX       FXConfig       // Analytics defaults
}

// ServerConfig holds HTTP server settings such as the port to listen on.
type ServerConfig struct {
	Port               string // The TCP port the HTTP server will listen on (e.g., "8080")
	RateLimitPerMinute int    // Requests allowed per client IP and minute
}

// FXConfig holds the defaults of the rate analytics endpoints.
//
// Fields:
//   - Timezone: IANA zone used to interpret calendar days (lookback cutoffs,
//     date ranges, bucket boundaries).
//   - DefaultLookbackDays: lookback used when a request omits "days".
//   - DefaultMonthlyVolume: USD volume used by the savings calculator when a
//     request omits "usd_monthly".
type FXConfig struct {
	Timezone             string
	DefaultLookbackDays  int
	DefaultMonthlyVolume float64
}

// Location resolves Timezone. An empty Timezone means UTC.
func (c FXConfig) Location() (*time.Location, error) {
	if c.Timezone == "" {
		return time.UTC, nil
	}
	return time.LoadLocation(c.Timezone)
}

// PostgresConfig defines connection details for PostgreSQL.
//
// Fields:
//   - Host: hostname of the database server.
//   - Port: port number of the database server (default 5432).
//   - User: username for authentication.
//   - Password: password for authentication.
//   - DBName: target database name.
//   - SSLMode: SSL mode (e.g., "disable", "require").
//   - URL: computed DSN used by database/sql to connect.
type PostgresConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	SSLMode  string
	URL      string
}

// AppConfig is the globally accessible configuration instance.
//
// It is populated once via LoadConfig() and used throughout the application.
// All services should import this package and read from AppConfig instead of
// reloading environment variables directly.
var AppConfig Config

// LoadConfig initializes the global AppConfig by reading from .env file
// or directly from environment variables.
//
// Precedence (from lowest to highest):
//  1. Defaults set in this function.
//  2. Values from .env file (if present).
//  3. Environment variables.
//
// Behavior:
//   - Sets defaults for all required fields.
//   - Reads environment variables automatically with viper.AutomaticEnv().
//   - Constructs the PostgreSQL connection string (DSN).
//   - Calls validateConfig() to ensure required fields are present.
//
// Fatal exit:
//   - If required variables are missing, validateConfig() will terminate the app
//     with a descriptive log message.
func LoadConfig() {
	// Default values
	viper.SetDefault("SERVER_PORT", "8080")
	viper.SetDefault("RATE_LIMIT_PER_MINUTE", 60)

	viper.SetDefault("POSTGRES_HOST", "localhost")
	viper.SetDefault("POSTGRES_PORT", 5432)
	viper.SetDefault("POSTGRES_USER", "postgres")
	viper.SetDefault("POSTGRES_PASSWORD", "postgres")
	viper.SetDefault("POSTGRES_DB", "fxpulse")
	viper.SetDefault("POSTGRES_SSLMODE", "disable")

	viper.SetDefault("FX_TIMEZONE", "America/Mexico_City")
	viper.SetDefault("FX_DEFAULT_LOOKBACK_DAYS", 30)
	viper.SetDefault("FX_DEFAULT_MONTHLY_VOLUME", 25000)

	// Optionally read from .env if present (common in local dev)
	viper.SetConfigFile(".env")
	_ = viper.ReadInConfig() // ignore error if no .env

	// Read environment variables automatically
	viper.AutomaticEnv()

	// Populate global config instance
	AppConfig = Config{
		Server: ServerConfig{
			Port:               viper.GetString("SERVER_PORT"),
			RateLimitPerMinute: viper.GetInt("RATE_LIMIT_PER_MINUTE"),
		},
		Postgres: PostgresConfig{
			Host:     viper.GetString("POSTGRES_HOST"),
			Port:     viper.GetInt("POSTGRES_PORT"),
			User:     viper.GetString("POSTGRES_USER"),
			Password: viper.GetString("POSTGRES_PASSWORD"),
			DBName:   viper.GetString("POSTGRES_DB"),
			SSLMode:  viper.GetString("POSTGRES_SSLMODE"),
		},
		FX: FXConfig{
			Timezone:             viper.GetString("FX_TIMEZONE"),
			DefaultLookbackDays:  viper.GetInt("FX_DEFAULT_LOOKBACK_DAYS"),
			DefaultMonthlyVolume: viper.GetFloat64("FX_DEFAULT_MONTHLY_VOLUME"),
		},
	}

	// Construct Postgres DSN (used by database/sql)
	AppConfig.Postgres.URL = fmt.Sprintf(
		"postgres://%s:%s@%s:%d/%s?sslmode=%s",
		AppConfig.Postgres.User,
		AppConfig.Postgres.Password,
		AppConfig.Postgres.Host,
		AppConfig.Postgres.Port,
		AppConfig.Postgres.DBName,
		AppConfig.Postgres.SSLMode,
	)

	// Validate critical fields
	validateConfig()
}

// validateConfig ensures required variables are present and valid, and
// terminates the application otherwise.
//
// This avoids unexpected runtime failures due to incomplete configuration.
//
// Behavior:
//   - Checks each critical field of AppConfig.
//   - Collects missing or invalid ones in a slice.
//   - If any are found, logs them and terminates the app with log.Fatalf().
func validateConfig() {
	if missing := invalidKeys(AppConfig); len(missing) > 0 {
		log.Fatalf("❌ Missing or invalid environment variables: %v\n", missing)
	}
}

// invalidKeys returns the environment keys whose values in cfg are missing or invalid.
func invalidKeys(cfg Config) []string {
	var missing []string

	if cfg.Server.Port == "" {
		missing = append(missing, "SERVER_PORT")
	}
	if cfg.Postgres.Host == "" {
		missing = append(missing, "POSTGRES_HOST")
	}
	if cfg.Postgres.Port == 0 {
		missing = append(missing, "POSTGRES_PORT")
	}
	if cfg.Postgres.User == "" {
		missing = append(missing, "POSTGRES_USER")
	}
	if cfg.Postgres.Password == "" {
		missing = append(missing, "POSTGRES_PASSWORD")
	}
	if cfg.Postgres.DBName == "" {
		missing = append(missing, "POSTGRES_DB")
	}

	if _, err := cfg.FX.Location(); err != nil {
		missing = append(missing, "FX_TIMEZONE")
	}
	if cfg.FX.DefaultLookbackDays < 1 || cfg.FX.DefaultLookbackDays > 365 {
		missing = append(missing, "FX_DEFAULT_LOOKBACK_DAYS")
	}
	if cfg.FX.DefaultMonthlyVolume <= 0 {
		missing = append(missing, "FX_DEFAULT_MONTHLY_VOLUME")
	}

	return missing
}
