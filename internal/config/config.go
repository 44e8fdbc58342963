// Package config loads runtime settings from the environment.
package config

import (
	"log/slog"
	"strings"

	"github.com/caarlos0/env/v11"

	"github.com/KirkDiggler/battle-arena/internal/errors"
)

// Save backends
const (
	SaveBackendFile  = "file"
	SaveBackendRedis = "redis"
)

// Config holds the settings for a play session
type Config struct {
	SaveBackend string `env:"ARENA_SAVE_BACKEND" envDefault:"file"`
	SavePath    string `env:"ARENA_SAVE_PATH"    envDefault:"save.txt"`
	RedisAddr   string `env:"ARENA_REDIS_ADDR"   envDefault:"localhost:6379"`
	SaveSlot    string `env:"ARENA_SAVE_SLOT"    envDefault:"default"`
	LogLevel    string `env:"ARENA_LOG_LEVEL"    envDefault:"warn"`

	RedisTLS      bool `env:"ARENA_REDIS_TLS"       envDefault:"false"`
	RedisPoolSize int  `env:"ARENA_REDIS_POOL_SIZE" envDefault:"0"`
}

// Load parses the environment into a Config with defaults applied.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidArgument, "failed to parse environment")
	}
	return &cfg, nil
}

// Validate checks that the settings for the chosen backend are present.
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateEnum("save_backend", c.SaveBackend, []string{SaveBackendFile, SaveBackendRedis}, vb)
	switch c.SaveBackend {
	case SaveBackendFile:
		errors.ValidateRequired("save_path", c.SavePath, vb)
	case SaveBackendRedis:
		errors.ValidateRequired("redis_addr", c.RedisAddr, vb)
		errors.ValidateRequired("save_slot", c.SaveSlot, vb)
		if c.RedisPoolSize < 0 {
			vb.Field("redis_pool_size", "cannot be negative")
		}
	}

	if _, ok := parseLevel(c.LogLevel); !ok {
		vb.Fieldf("log_level", "must be one of: debug, info, warn, error")
	}

	return vb.Build()
}

// SlogLevel returns the configured log level, defaulting to warn.
func (c *Config) SlogLevel() slog.Level {
	level, ok := parseLevel(c.LogLevel)
	if !ok {
		return slog.LevelWarn
	}
	return level
}

func parseLevel(raw string) (slog.Level, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "debug":
		return slog.LevelDebug, true
	case "info":
		return slog.LevelInfo, true
	case "warn", "warning":
		return slog.LevelWarn, true
	case "error":
		return slog.LevelError, true
	default:
		return 0, false
	}
}
