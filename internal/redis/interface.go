package redis

import (
	"github.com/redis/go-redis/v9"
)

// Client is the subset of go-redis the item cache depends on. Any
// redis.UniversalClient satisfies it.
type Client interface {
	redis.Cmdable
	Close() error
}
