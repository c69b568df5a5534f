// Package config loads server settings from defaults, an optional YAML
// file and MSH_ environment variables, in that order.
package config

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"

	"github.com/KirkDiggler/msh-chargen/internal/engine/rank"
	"github.com/KirkDiggler/msh-chargen/internal/errors"
)

// EnvPrefix prefixes every environment variable
const EnvPrefix = "MSH_"

// Config holds the server settings
type Config struct {
	GRPCPort int `yaml:"grpc_port" env:"GRPC_PORT"`

	// RedisAddr selects the Redis session store; empty keeps sessions in
	// memory
	RedisAddr  string        `yaml:"redis_addr" env:"REDIS_ADDR"`
	SessionTTL time.Duration `yaml:"session_ttl" env:"SESSION_TTL"`

	ScoringMode string `yaml:"scoring_mode" env:"SCORING_MODE"`
	LogLevel    string `yaml:"log_level" env:"LOG_LEVEL"`
}

// Default returns the built-in settings
func Default() Config {
	return Config{
		GRPCPort:    50051,
		SessionTTL:  24 * time.Hour,
		ScoringMode: rank.ModeMinimum.String(),
		LogLevel:    "info",
	}
}

// Load reads path over the defaults, then applies the environment. A
// missing file is not an error; an empty path skips the file.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case os.IsNotExist(err):
		case err != nil:
			return cfg, fmt.Errorf("reading config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing config %s: %w", path, err)
			}
		}
	}

	if err := env.ParseWithOptions(&cfg, env.Options{Prefix: EnvPrefix}); err != nil {
		return cfg, fmt.Errorf("parse env: %w", err)
	}

	return cfg, nil
}

// Validate checks every field
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange("GRPCPort", c.GRPCPort, 1, 65535, vb)
	if c.SessionTTL <= 0 {
		vb.InvalidField("SessionTTL", "must be positive")
	}
	if _, err := rank.ParseMode(c.ScoringMode); err != nil {
		vb.InvalidField("ScoringMode", errors.GetMessage(err))
	}
	if _, err := c.Level(); err != nil {
		vb.InvalidField("LogLevel", err.Error())
	}

	return vb.Build()
}

// Mode returns the parsed default scoring mode
func (c *Config) Mode() rank.Mode {
	m, err := rank.ParseMode(c.ScoringMode)
	if err != nil {
		return rank.ModeMinimum
	}
	return m
}

// Level returns the parsed log level
func (c *Config) Level() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.LogLevel)); err != nil {
		return slog.LevelInfo, err
	}
	return level, nil
}
