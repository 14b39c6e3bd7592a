package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config represents the application configuration
// SSOT: values come from .env or the process environment
type Config struct {
	Server    ServerConfig
	Watchlist WatchlistConfig
	Events    EventsConfig
	Quotes    QuotesConfig
	Logging   LoggingConfig
}

type ServerConfig struct {
	Port           string
	Mode           string
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	AllowedOrigins []string
}

type WatchlistConfig struct {
	FilePath string
}

type EventsConfig struct {
	ThresholdPct float64 // |change%| at or above this is logged
	Capacity     int
}

type QuotesConfig struct {
	Provider string // yahoo, alpaca
	Alpaca   AlpacaConfig
}

type AlpacaConfig struct {
	APIKey    string
	APISecret string
	Feed      string
}

type LoggingConfig struct {
	Level         string
	Format        string
	FileEnabled   bool
	FilePath      string
	RotationSize  int // MB
	RetentionDays int
}

// Load loads configuration from .env file
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// .env is optional
		fmt.Fprintln(os.Stderr, "Warning: .env file not found, using environment variables")
	}

	threshold, err := getEnvFloat("EVENT_THRESHOLD_PCT", 1.5)
	if err != nil {
		return nil, err
	}
	capacity, err := getEnvInt("EVENT_LOG_CAPACITY", 10)
	if err != nil {
		return nil, err
	}
	if capacity < 1 {
		return nil, fmt.Errorf("EVENT_LOG_CAPACITY must be positive, got %d", capacity)
	}
	rotationSize, err := getEnvInt("LOG_ROTATION_SIZE_MB", 100)
	if err != nil {
		return nil, err
	}
	retentionDays, err := getEnvInt("LOG_RETENTION_DAYS", 7)
	if err != nil {
		return nil, err
	}

	config := &Config{
		Server: ServerConfig{
			Port:           getEnv("PORT", "8000"),
			Mode:           getEnv("GIN_MODE", "debug"),
			ReadTimeout:    15 * time.Second,
			WriteTimeout:   30 * time.Second,
			IdleTimeout:    60 * time.Second,
			AllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		},
		Watchlist: WatchlistConfig{
			FilePath: getEnv("WATCHLIST_FILE", "watchlist.txt"),
		},
		Events: EventsConfig{
			ThresholdPct: threshold,
			Capacity:     capacity,
		},
		Quotes: QuotesConfig{
			Provider: strings.ToLower(getEnv("QUOTE_PROVIDER", "yahoo")),
			Alpaca: AlpacaConfig{
				APIKey:    getEnv("ALPACA_API_KEY", ""),
				APISecret: getEnv("ALPACA_SECRET_KEY", ""),
				Feed:      getEnv("ALPACA_FEED", "iex"),
			},
		},
		Logging: LoggingConfig{
			Level:         getEnv("LOG_LEVEL", "info"),
			Format:        getEnv("LOG_FORMAT", "pretty"),
			FileEnabled:   getEnv("LOG_FILE_ENABLED", "false") == "true",
			FilePath:      getEnv("LOG_FILE_PATH", "logs"),
			RotationSize:  rotationSize,
			RetentionDays: retentionDays,
		},
	}

	switch config.Quotes.Provider {
	case "yahoo":
	case "alpaca":
		if config.Quotes.Alpaca.APIKey == "" || config.Quotes.Alpaca.APISecret == "" {
			return nil, fmt.Errorf("ALPACA_API_KEY and ALPACA_SECRET_KEY must be set for QUOTE_PROVIDER=alpaca")
		}
	default:
		return nil, fmt.Errorf("unknown QUOTE_PROVIDER %q", config.Quotes.Provider)
	}

	return config, nil
}

// getEnv gets environment variable with fallback
func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) (int, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func getEnvFloat(key string, fallback float64) (float64, error) {
	raw := os.Getenv(key)
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
