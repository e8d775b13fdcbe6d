package config

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
)

// Config carries the runtime knobs, read from the environment with an
// optional .env file. A zero seed means a fresh seed per run.
type Config struct {
	Seed     uint64 `env:"POKETOWER_SEED" envDefault:"0"`
	LogLevel string `env:"POKETOWER_LOG_LEVEL" envDefault:"info"`
	Enemies  int    `env:"POKETOWER_ENEMIES" envDefault:"5"`
}

func Load() (*Config, error) {
	// Missing .env is fine, the environment still applies.
	godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parsing environment: %w", err)
	}
	if cfg.Enemies < 1 {
		return nil, fmt.Errorf("POKETOWER_ENEMIES must be at least 1, got %d", cfg.Enemies)
	}
	if _, err := zerolog.ParseLevel(cfg.LogLevel); err != nil {
		return nil, fmt.Errorf("POKETOWER_LOG_LEVEL: %w", err)
	}
	return cfg, nil
}

// RNG builds the run's random source from the configured seed.
func (c *Config) RNG() *rand.Rand {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewPCG(seed, 0))
}

func (c *Config) ZerologLevel() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return level
}
