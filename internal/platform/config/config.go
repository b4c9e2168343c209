package config

import (
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const defaultJWTSecret = "a-very-secret-key-should-be-longer-and-random"

// Config holds application configuration.
type Config struct {
	DatabaseURL        string
	Port               string
	IsProduction       bool
	EnableDBCheck      bool
	JWTSecret          string
	LedgerTimezone     string
	LedgerLocation     *time.Location // Resolved from LedgerTimezone, used for local-day bucketing
	RateLimit          string         // ulule/limiter format, e.g. "100-M"; empty disables limiting
	RedisURL           string
	CORSAllowedOrigins []string
	MigrationsPath     string
}

// CLIConfig holds the database-independent subset of Config used by the local CLI.
type CLIConfig struct {
	IsProduction   bool
	JWTSecret      string // Raw value; use SigningSecret to apply the production guard
	LedgerTimezone string
	LedgerLocation *time.Location
}

// newViper sets the shared defaults. Defaults can be overridden by .env values,
// which can then be overridden by actual environment variables.
func newViper() *viper.Viper {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetDefault("PGSQL_URL", "")
	v.SetDefault("PORT", "8080")
	v.SetDefault("IS_PRODUCTION", false)
	v.SetDefault("ENABLE_DB_CHECK", false)
	v.SetDefault("JWT_SECRET", defaultJWTSecret)
	v.SetDefault("LEDGER_TIMEZONE", "UTC")
	v.SetDefault("RATE_LIMIT", "100-M")
	v.SetDefault("REDIS_URL", "")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("MIGRATIONS_PATH", "file://migrations")
	v.AutomaticEnv()
	return v
}

// resolveJWTSecret rejects a missing or default secret in production and falls
// back to the default insecure key otherwise.
func resolveJWTSecret(secret string, isProduction bool) (string, error) {
	if secret == "" || secret == defaultJWTSecret {
		if isProduction {
			return "", fmt.Errorf("JWT_SECRET must be set in production")
		}
		slog.Warn("JWT_SECRET environment variable not set. Using default insecure key.")
		return defaultJWTSecret, nil
	}
	return secret, nil
}

func loadLocation(tz string) (*time.Location, error) {
	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, fmt.Errorf("invalid LEDGER_TIMEZONE %q: %w", tz, err)
	}
	return loc, nil
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	v := newViper()

	cfg := &Config{
		DatabaseURL:    v.GetString("PGSQL_URL"),
		Port:           v.GetString("PORT"),
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		EnableDBCheck:  v.GetBool("ENABLE_DB_CHECK"),
		LedgerTimezone: v.GetString("LEDGER_TIMEZONE"),
		RateLimit:      strings.TrimSpace(v.GetString("RATE_LIMIT")),
		RedisURL:       v.GetString("REDIS_URL"),
		MigrationsPath: v.GetString("MIGRATIONS_PATH"),
	}

	if cfg.DatabaseURL == "" {
		slog.Warn("PGSQL_URL environment variable not set.")
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
		slog.Warn("PORT environment variable not set, using default", slog.String("port", cfg.Port))
	}
	secret, err := resolveJWTSecret(v.GetString("JWT_SECRET"), cfg.IsProduction)
	if err != nil {
		return nil, err
	}
	cfg.JWTSecret = secret

	loc, err := loadLocation(cfg.LedgerTimezone)
	if err != nil {
		return nil, err
	}
	cfg.LedgerLocation = loc

	for _, origin := range strings.Split(v.GetString("CORS_ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.CORSAllowedOrigins = append(cfg.CORSAllowedOrigins, origin)
		}
	}

	return cfg, nil
}

// LoadCLIConfig loads the CLI subset from the same sources as LoadConfig.
// A non-empty timezoneOverride (the -tz flag) replaces LEDGER_TIMEZONE.
func LoadCLIConfig(timezoneOverride string) (*CLIConfig, error) {
	v := newViper()

	cfg := &CLIConfig{
		IsProduction:   v.GetBool("IS_PRODUCTION"),
		JWTSecret:      v.GetString("JWT_SECRET"),
		LedgerTimezone: strings.TrimSpace(v.GetString("LEDGER_TIMEZONE")),
	}
	if tz := strings.TrimSpace(timezoneOverride); tz != "" {
		cfg.LedgerTimezone = tz
	}

	loc, err := loadLocation(cfg.LedgerTimezone)
	if err != nil {
		return nil, err
	}
	cfg.LedgerLocation = loc
	return cfg, nil
}

// SigningSecret returns the key for minting access tokens, applying the same
// production guard as the server.
func (c *CLIConfig) SigningSecret() (string, error) {
	return resolveJWTSecret(c.JWTSecret, c.IsProduction)
}
