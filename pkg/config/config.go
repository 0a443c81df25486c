package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
)

// Config holds all application configuration
type Config struct {
	Ledger LedgerConfig
	Log    LogConfig
}

type LedgerConfig struct {
	DBPath    string
	RulesPath string
}

type LogConfig struct {
	Level string
}

// Load reads configuration from the environment, after sourcing a local .env
// file when one exists.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Ledger: LedgerConfig{
			DBPath:    getEnv("PENNYWISE_DB_PATH", defaultDBPath()),
			RulesPath: getEnv("PENNYWISE_RULES_PATH", ""),
		},
		Log: LogConfig{
			Level: getEnv("PENNYWISE_LOG_LEVEL", "info"),
		},
	}

	return cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pennywise.db"
	}
	return filepath.Join(home, ".pennywise", "pennywise.db")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
