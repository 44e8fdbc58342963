package config_test

import (
	"log/slog"
	"os"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/KirkDiggler/battle-arena/internal/config"
	"github.com/KirkDiggler/battle-arena/internal/errors"
)

type ConfigTestSuite struct {
	suite.Suite
}

func TestConfigSuite(t *testing.T) {
	suite.Run(t, new(ConfigTestSuite))
}

func (s *ConfigTestSuite) TestLoadDefaults() {
	for _, key := range []string{
		"ARENA_SAVE_BACKEND", "ARENA_SAVE_PATH", "ARENA_REDIS_ADDR", "ARENA_SAVE_SLOT",
		"ARENA_LOG_LEVEL", "ARENA_REDIS_TLS", "ARENA_REDIS_POOL_SIZE",
	} {
		// Setenv restores the original value after the test
		s.T().Setenv(key, "")
		s.Require().NoError(os.Unsetenv(key))
	}

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(config.SaveBackendFile, cfg.SaveBackend)
	s.Equal("save.txt", cfg.SavePath)
	s.Equal("localhost:6379", cfg.RedisAddr)
	s.Equal("default", cfg.SaveSlot)
	s.Equal(slog.LevelWarn, cfg.SlogLevel())
	s.False(cfg.RedisTLS)
	s.Equal(0, cfg.RedisPoolSize)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestLoadFromEnvironment() {
	s.T().Setenv("ARENA_SAVE_BACKEND", "redis")
	s.T().Setenv("ARENA_REDIS_ADDR", "cache:6380")
	s.T().Setenv("ARENA_SAVE_SLOT", "merlin")
	s.T().Setenv("ARENA_LOG_LEVEL", "debug")
	s.T().Setenv("ARENA_REDIS_TLS", "true")
	s.T().Setenv("ARENA_REDIS_POOL_SIZE", "8")

	cfg, err := config.Load()
	s.Require().NoError(err)

	s.Equal(config.SaveBackendRedis, cfg.SaveBackend)
	s.Equal("cache:6380", cfg.RedisAddr)
	s.Equal("merlin", cfg.SaveSlot)
	s.Equal(slog.LevelDebug, cfg.SlogLevel())
	s.True(cfg.RedisTLS)
	s.Equal(8, cfg.RedisPoolSize)
	s.NoError(cfg.Validate())
}

func (s *ConfigTestSuite) TestValidate() {
	testCases := []struct {
		name        string
		cfg         config.Config
		badField    string
		expectError bool
	}{
		{
			name: "file backend",
			cfg:  config.Config{SaveBackend: "file", SavePath: "save.txt", LogLevel: "info"},
		},
		{
			name:        "unknown backend",
			cfg:         config.Config{SaveBackend: "sqlite", LogLevel: "info"},
			badField:    "save_backend",
			expectError: true,
		},
		{
			name:        "file backend without path",
			cfg:         config.Config{SaveBackend: "file", LogLevel: "info"},
			badField:    "save_path",
			expectError: true,
		},
		{
			name:        "redis backend without slot",
			cfg:         config.Config{SaveBackend: "redis", RedisAddr: "localhost:6379", LogLevel: "info"},
			badField:    "save_slot",
			expectError: true,
		},
		{
			name:        "negative redis pool size",
			cfg:         config.Config{SaveBackend: "redis", RedisAddr: "localhost:6379", SaveSlot: "a", RedisPoolSize: -1, LogLevel: "info"},
			badField:    "redis_pool_size",
			expectError: true,
		},
		{
			name:        "bad log level",
			cfg:         config.Config{SaveBackend: "file", SavePath: "save.txt", LogLevel: "loud"},
			badField:    "log_level",
			expectError: true,
		},
	}

	for _, tc := range testCases {
		s.Run(tc.name, func() {
			err := tc.cfg.Validate()
			if !tc.expectError {
				s.NoError(err)
				return
			}
			s.Require().Error(err)
			s.True(errors.IsInvalidArgument(err))
			fields := errors.GetMeta(err)["validation_errors"].(map[string][]string)
			s.Contains(fields, tc.badField)
		})
	}
}
