package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config contains application configuration parameters.
type Config struct {
	LogLevel  int       `env:"LOG_LEVEL" envDefault:"0"`
	Database  Database  `envPrefix:"DATABASE_"`
	Export    Export    `envPrefix:"EXPORT_"`
	Generator Generator `envPrefix:"GENERATOR_"`
}

// Database contains local store parameters.
type Database struct {
	Path string `env:"PATH" envDefault:"teachdesk.db"`
}

// Export contains export output parameters.
type Export struct {
	Dir string `env:"DIR" envDefault:"exports"`
}

// Generator contains content generator parameters.
type Generator struct {
	Delay time.Duration `env:"DELAY" envDefault:"1500ms"`
}

// NewConfig loads configuration from a .env file (when present) and the
// environment.
func NewConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("failed to load .env: %w", err)
	}

	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
