// Package redis wraps the go-redis universal client so the item cache can be
// pointed at a single node, a cluster or a sentinel group by configuration
// alone.
package redis

import (
	"context"
	"crypto/tls"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/gw2-api/internal/errors"
)

// Nil is returned by reads of missing keys
const Nil = redis.Nil

// Options configures Redis client behavior
type Options struct {
	// Addrs lists the endpoints. More than one address selects cluster mode
	// unless MasterName is set.
	Addrs []string
	// MasterName selects sentinel failover, with Addrs as the sentinels
	MasterName string
	Password   string
	DB         int

	PoolSize        int
	MinIdleConns    int
	ConnMaxIdleTime time.Duration
	MaxRetries      int
	DialTimeout     time.Duration
	UseTLS          bool
}

// Validate validates the Options and sets defaults if not provided.
func (o *Options) Validate() error {
	vb := errors.NewValidationBuilder()
	if len(o.Addrs) == 0 {
		vb.RequiredField("addrs")
	}
	for _, addr := range o.Addrs {
		if addr == "" {
			vb.InvalidField("addrs", "must not contain empty addresses")
			break
		}
	}
	if o.DB < 0 {
		vb.InvalidField("db", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if o.DialTimeout == 0 {
		o.DialTimeout = 5 * time.Second
	}
	return nil
}

// NewClient creates a client for opts. Redis connects lazily, so a bad
// endpoint only shows up on first use or Ping.
func NewClient(opts *Options) (Client, error) {
	if opts == nil {
		return nil, errors.InvalidArgument("redis: options are required")
	}
	if err := opts.Validate(); err != nil {
		return nil, errors.Wrap(err, "redis: invalid options")
	}

	universal := &redis.UniversalOptions{
		Addrs:           opts.Addrs,
		MasterName:      opts.MasterName,
		Password:        opts.Password,
		DB:              opts.DB,
		PoolSize:        opts.PoolSize,
		MinIdleConns:    opts.MinIdleConns,
		ConnMaxIdleTime: opts.ConnMaxIdleTime,
		MaxRetries:      opts.MaxRetries,
		DialTimeout:     opts.DialTimeout,
	}

	if opts.UseTLS {
		universal.TLSConfig = &tls.Config{
			MinVersion: tls.VersionTLS12,
		}
	}

	return redis.NewUniversalClient(universal), nil
}

// Ping checks that the server answers
func Ping(ctx context.Context, client Client) error {
	if err := client.Ping(ctx).Err(); err != nil {
		return errors.WrapWithCode(err, errors.CodeUnavailable, "redis: ping failed")
	}
	return nil
}
