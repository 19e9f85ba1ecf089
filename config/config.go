package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"

	"casino/database"
)

// Defaults for the casino rules when the environment doesn't override them.
const (
	DefaultStartingBalance int64 = 1000
	DefaultMinBet          int64 = 10
	DefaultMaxBet          int64 = 1000
	DefaultDailyLimit      int64 = 1000
)

// Config holds all application configuration
type Config struct {
	// Database configuration
	DatabaseURL  string
	DatabaseName string

	// HTTP configuration
	HTTPAddr string

	// Casino rules
	StartingBalance int64 // balance granted to new accounts
	MinBet          int64 // inclusive lower bound on a single wager
	MaxBet          int64 // inclusive upper bound on a single wager
	DailyLimit      int64 // per-user, per-UTC-day net win/loss ceiling

	// Environment
	Environment string // "development", "production" or "test"
}

var (
	instance *Config
	once     sync.Once
	mu       sync.Mutex // Protects instance for test setup
)

// Get returns the global configuration instance
func Get() *Config {
	mu.Lock()
	defer mu.Unlock()

	// If instance is already set (e.g., by tests), return it
	if instance != nil {
		return instance
	}

	once.Do(func() {
		var err error
		instance, err = load()
		if err != nil {
			if os.Getenv("GO_TEST") == "1" || os.Getenv("ENVIRONMENT") == "test" {
				instance = NewTestConfig()
			} else {
				panic(fmt.Sprintf("failed to load config: %v", err))
			}
		}
	})
	return instance
}

// GetDatabaseURL constructs the full database URL by combining base URL and database name
func (c *Config) GetDatabaseURL() string {
	return database.ConstructDatabaseURL(c.DatabaseURL, c.DatabaseName)
}

// load loads configuration from environment variables
func load() (*Config, error) {
	config := &Config{
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		DatabaseName: os.Getenv("DATABASE_NAME"),

		HTTPAddr: getEnvWithDefault("HTTP_ADDR", ":8080"),

		StartingBalance: DefaultStartingBalance,
		MinBet:          DefaultMinBet,
		MaxBet:          DefaultMaxBet,
		DailyLimit:      DefaultDailyLimit,

		Environment: os.Getenv("ENVIRONMENT"),
	}

	// Override casino rule defaults if environment variables are set
	overrideInt64(&config.StartingBalance, "STARTING_BALANCE")
	overrideInt64(&config.MinBet, "CASINO_MIN_BET")
	overrideInt64(&config.MaxBet, "CASINO_MAX_BET")
	overrideInt64(&config.DailyLimit, "CASINO_DAILY_LIMIT")

	if config.Environment == "" {
		config.Environment = "development"
	}

	if config.Environment != "test" {
		if config.DatabaseURL == "" {
			return nil, fmt.Errorf("DATABASE_URL is required")
		}
		if config.DatabaseName != "" && strings.TrimSpace(config.DatabaseName) == "" {
			return nil, fmt.Errorf("DATABASE_NAME cannot be empty when provided")
		}
	}

	if config.MinBet <= 0 || config.MaxBet < config.MinBet {
		return nil, fmt.Errorf("invalid bet bounds: min %d, max %d", config.MinBet, config.MaxBet)
	}
	if config.DailyLimit <= 0 {
		return nil, fmt.Errorf("CASINO_DAILY_LIMIT must be positive")
	}

	return config, nil
}

func overrideInt64(dst *int64, key string) {
	if value := os.Getenv(key); value != "" {
		if parsed, err := strconv.ParseInt(value, 10, 64); err == nil {
			*dst = parsed
		}
	}
}

// getEnvWithDefault returns the environment variable value or a default if not set
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// Test helpers - only use in tests

// SetTestConfig overrides the global config instance for testing
// This should only be called from test files
func SetTestConfig(testConfig *Config) {
	mu.Lock()
	defer mu.Unlock()
	instance = testConfig
}

// ResetConfig resets the global config instance and sync.Once for testing
// This should only be called from test files
func ResetConfig() {
	mu.Lock()
	defer mu.Unlock()
	instance = nil
	once = sync.Once{}
}

// NewTestConfig creates a minimal config suitable for unit tests
func NewTestConfig() *Config {
	return &Config{
		Environment:     "test",
		StartingBalance: DefaultStartingBalance,
		MinBet:          DefaultMinBet,
		MaxBet:          DefaultMaxBet,
		DailyLimit:      DefaultDailyLimit,
	}
}
