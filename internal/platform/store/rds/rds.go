// Package rds provides a small redis cache client over go-redis
package rds

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Config configures the redis client
// URL wins over Addr and DB when both are set
type Config struct {
	URL  string
	Addr string
	DB   int
}

// RDS is a byte oriented cache client
type RDS struct {
	c redis.UniversalClient
}

// Open builds a client and pings it
func Open(ctx context.Context, cfg Config) (*RDS, error) {
	opts, err := options(cfg)
	if err != nil {
		return nil, err
	}
	c := redis.NewClient(opts)
	if err := c.Ping(ctx).Err(); err != nil {
		_ = c.Close()
		return nil, fmt.Errorf("rds: ping: %w", err)
	}
	return &RDS{c: c}, nil
}

// New wraps an existing client, used by tests and callers that share a pool
func New(c redis.UniversalClient) *RDS { return &RDS{c: c} }

func options(cfg Config) (*redis.Options, error) {
	if cfg.URL != "" {
		o, err := redis.ParseURL(cfg.URL)
		if err != nil {
			return nil, fmt.Errorf("rds: parse url: %w", err)
		}
		return o, nil
	}
	if cfg.Addr == "" {
		return nil, errors.New("rds: url or addr required")
	}
	return &redis.Options{Addr: cfg.Addr, DB: cfg.DB}, nil
}

// Ping checks connectivity
func (r *RDS) Ping(ctx context.Context) error {
	if r == nil || r.c == nil {
		return errors.New("rds: nil client")
	}
	return r.c.Ping(ctx).Err()
}

// Get returns the value at key, ok is false on a miss
func (r *RDS) Get(ctx context.Context, key string) ([]byte, bool, error) {
	b, err := r.c.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return b, true, nil
}

// Set stores val at key, ttl 0 keeps it forever
func (r *RDS) Set(ctx context.Context, key string, val []byte, ttl time.Duration) error {
	return r.c.Set(ctx, key, val, ttl).Err()
}

// Del removes keys, missing keys are fine
func (r *RDS) Del(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	return r.c.Del(ctx, keys...).Err()
}

// Close closes the pool
func (r *RDS) Close() error {
	if r == nil || r.c == nil {
		return nil
	}
	return r.c.Close()
}
