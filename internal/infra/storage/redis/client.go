// Package redis implements the release guard and the outcome storage on top of Redis.
package redis

import (
	"context"
	"time"

	redis "github.com/redis/go-redis/v9"
)

// keyPrefix namespaces every key written by this package.
const keyPrefix = "escrowwatch"

type client struct {
	conn       *redis.Client
	outcomeTTL time.Duration
}

func (c *client) Close() error {
	return c.conn.Close()
}

type config struct {
	outcomeTTL time.Duration
}

type Option func(*config)

// WithOutcomeTTL sets how long terminal outcomes are kept. Zero keeps them
// forever. Default: 30 days.
func WithOutcomeTTL(ttl time.Duration) Option {
	return func(c *config) {
		c.outcomeTTL = ttl
	}
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	cfg := config{
		outcomeTTL: 30 * 24 * time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		conn.Close()
		return nil, err
	}

	return &client{
		conn:       conn,
		outcomeTTL: cfg.outcomeTTL,
	}, nil
}
