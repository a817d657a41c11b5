package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

const devSecret = "dev-secret-change-in-production"

// Config holds all process-wide settings. It is populated once at startup
// and never mutated afterwards.
type Config struct {
	Port        string        `env:"PORT" envDefault:"4000"`
	Env         string        `env:"ENV" envDefault:"development"`
	DatabaseDSN string        `env:"DATABASE_DSN" envDefault:"root:password@tcp(127.0.0.1:3306)/adboard?parseTime=true"`
	JWTSecret   string        `env:"JWT_SECRET" envDefault:"dev-secret-change-in-production"`
	JWTExpiry   time.Duration `env:"JWT_EXPIRY" envDefault:"24h"`

	// BodyLimit caps request body size in bytes. Listings may carry an
	// embedded image payload, so the default is 2 MiB.
	BodyLimit int64 `env:"BODY_LIMIT" envDefault:"2097152"`

	// RateLimitRPS and RateLimitBurst configure the per-IP limiter; the
	// defaults allow 60 requests within a rolling minute.
	RateLimitRPS   float64 `env:"RATE_LIMIT_RPS" envDefault:"1"`
	RateLimitBurst int     `env:"RATE_LIMIT_BURST" envDefault:"60"`

	BcryptCost int `env:"BCRYPT_COST" envDefault:"10"`

	// StrictOwners makes listing creation verify that the owner row exists.
	// The schema carries no foreign key, so this is the only referential
	// check available.
	StrictOwners bool `env:"STRICT_OWNERS" envDefault:"false"`
}

// Load parses the configuration from environment variables.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parsing environment: %w", err)
	}

	if cfg.Env == "production" && cfg.JWTSecret == devSecret {
		return Config{}, errors.New("JWT_SECRET must be set in production environment")
	}

	return cfg, nil
}
