// Package config centralises configuration parsing for the activity registry service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config captures runtime configuration values, with defaults for local dev.
type Config struct {
	HTTPAddress  string        `env:"HTTP_ADDRESS" envDefault:":8080"`
	StaticDir    string        `env:"STATIC_DIR" envDefault:"./static"`
	SeedFile     string        `env:"SEED_FILE"`
	LogLevel     string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSOrigin   string        `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`
	ReadTimeout  time.Duration `env:"READ_TIMEOUT" envDefault:"5s"`
	WriteTimeout time.Duration `env:"WRITE_TIMEOUT" envDefault:"10s"`
	IdleTimeout  time.Duration `env:"IDLE_TIMEOUT" envDefault:"60s"`
}

// Load reads environment variables into Config.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
