// Package redis wraps the go-redis client so repositories depend on an
// interface.
package redis

import (
	"crypto/tls"
	"errors"

	"github.com/redis/go-redis/v9"
)

// Options configures Redis client behavior.
// Zero values keep the go-redis defaults.
type Options struct {
	PoolSize   int
	MaxRetries int
	UseTLS     bool
}

// NewClient creates a Redis client for a single instance.
// The connection is made lazily on first command.
func NewClient(endpoint string, opts *Options) (Client, error) {
	if endpoint == "" {
		return nil, errors.New("redis: endpoint is required")
	}

	if opts == nil {
		opts = &Options{}
	}

	redisOpts := &redis.Options{
		Addr:       endpoint,
		PoolSize:   opts.PoolSize,
		MaxRetries: opts.MaxRetries,
	}

	if opts.UseTLS {
		redisOpts.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewClient(redisOpts), nil
}
