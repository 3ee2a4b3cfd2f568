/**
 * @description
 * Configuration loader for the OddsLens backend.
 * Responsible for reading environment variables, setting defaults, and performing strict validation.
 *
 * @dependencies
 * - github.com/joho/godotenv: For loading .env files
 * - standard "os": For reading env vars
 * - standard "fmt": For error reporting
 *
 * @notes
 * - Fails fast if critical variables (Database URL) are missing.
 * - Upstream API endpoints have sane defaults so a fresh checkout runs without a .env.
 */

package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig
	DB       DBConfig
	Redis    RedisConfig
	Kalshi   KalshiConfig
	OddsFeed OddsFeedConfig
	ESPN     ESPNConfig
}

// ServerConfig holds HTTP server settings
type ServerConfig struct {
	Port string
	Env  string // "development" or "production"
}

// DBConfig holds PostgreSQL settings
type DBConfig struct {
	URL string
}

// RedisConfig holds Redis settings
type RedisConfig struct {
	URL string
}

// KalshiConfig holds the prediction-market API endpoint
type KalshiConfig struct {
	BaseURL string
}

// OddsFeedConfig holds the sportsbook odds API endpoint and key
type OddsFeedConfig struct {
	BaseURL string
	APIKey  string
	Regions string
}

// ESPNConfig holds the historical-results API endpoint
type ESPNConfig struct {
	BaseURL string
}

// Load reads .env file and populates the Config struct
func Load() (*Config, error) {
	// Attempt to load .env, but don't crash if it fails (prod might inject env vars directly)
	_ = godotenv.Load()

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
			Env:  getEnv("GO_ENV", "development"),
		},
		DB: DBConfig{
			URL: getEnv("DATABASE_URL", ""),
		},
		Redis: RedisConfig{
			URL: getEnv("REDIS_URL", "redis://localhost:6379"),
		},
		Kalshi: KalshiConfig{
			BaseURL: getEnv("KALSHI_BASE_URL", "https://api.elections.kalshi.com/trade-api/v2"),
		},
		OddsFeed: OddsFeedConfig{
			BaseURL: getEnv("ODDS_API_BASE_URL", "https://api.the-odds-api.com"),
			APIKey:  sanitizeCredential(getEnv("ODDS_API_KEY", "")),
			Regions: getEnv("ODDS_API_REGIONS", "us"),
		},
		ESPN: ESPNConfig{
			BaseURL: getEnv("ESPN_BASE_URL", "http://site.api.espn.com/apis/site/v2/sports"),
		},
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}

// validate checks for required variables
func validate(cfg *Config) error {
	if cfg.DB.URL == "" {
		return fmt.Errorf("DATABASE_URL is required")
	}
	if cfg.OddsFeed.APIKey == "" && cfg.Server.Env != "test" {
		// Warning: sportsbook comparison endpoints will return empty data
		fmt.Println("Warning: ODDS_API_KEY is missing. Sportsbook odds fetches will fail.")
	}
	return nil
}

// Helper to get env var with default
func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func sanitizeCredential(value string) string {
	trimmed := strings.TrimSpace(value)
	return strings.Trim(trimmed, "\"")
}

// Helper to get env var as int
func getEnvAsInt(key string, fallback int) int {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return fallback
	}
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return fallback
}
