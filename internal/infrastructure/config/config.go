package config

import (
	"github.com/caarlos0/env/v10"
	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	// Logging
	LogLevel  string `env:"LOG_LEVEL"  envDefault:"warn"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"console"`

	// Snapshot defaults for the import/export screen and subcommands
	SnapshotPath   string `env:"SNAPSHOT_PATH"   envDefault:"fintrack.json"`
	SnapshotFormat string `env:"SNAPSHOT_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables, preloading a .env
// file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load() // missing .env is fine

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
