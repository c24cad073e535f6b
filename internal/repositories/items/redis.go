package items

import (
	"context"
	"encoding/json"
	stderrors "errors"
	"time"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/metrics"
	"github.com/KirkDiggler/gw2-api/internal/pkg/clock"
	redisclient "github.com/KirkDiggler/gw2-api/internal/redis"
)

type redisRepository struct {
	client redisclient.Client
	ttl    time.Duration
	clock  clock.Clock
}

// RedisConfig contains configuration for the Redis item repository.
type RedisConfig struct {
	Client redisclient.Client
	// TTL of cached records (optional, defaults to 24 hours)
	TTL   time.Duration
	Clock clock.Clock
}

// Validate validates the RedisConfig and sets defaults if not provided.
func (cfg *RedisConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Client == nil {
		return errors.InvalidArgument("client cannot be nil")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.TTL == 0 {
		cfg.TTL = 24 * time.Hour
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// NewRedis creates a new Redis-backed item repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &redisRepository{
		client: cfg.Client,
		ttl:    cfg.TTL,
		clock:  cfg.Clock,
	}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Language, input.ItemID); err != nil {
		return nil, err
	}

	result, err := r.client.Get(ctx, Key(input.Language, input.ItemID)).Bytes()
	if err != nil {
		if stderrors.Is(err, redisclient.Nil) {
			countLookup(metrics.CacheLayerRedis, false)
			return nil, ErrNotCached(input.Language, input.ItemID)
		}
		return nil, errors.Wrapf(err, "failed to get item %d", input.ItemID)
	}

	var data entry
	if err := json.Unmarshal(result, &data); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal item %d", input.ItemID)
	}

	countLookup(metrics.CacheLayerRedis, true)
	return &GetOutput{Record: data.Record, CachedAt: data.CachedAt}, nil
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	data := entry{Record: input.Record, CachedAt: r.clock.Now().UTC()}

	jsonData, err := json.Marshal(data)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal item %d", input.ItemID)
	}

	if err := r.client.Set(ctx, Key(input.Language, input.ItemID), jsonData, r.ttl).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to store item %d", input.ItemID)
	}

	return &PutOutput{CachedAt: data.CachedAt}, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Language, input.ItemID); err != nil {
		return nil, err
	}

	if err := r.client.Del(ctx, Key(input.Language, input.ItemID)).Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to delete item %d", input.ItemID)
	}

	return &DeleteOutput{}, nil
}

func countLookup(layer string, hit bool) {
	result := metrics.CacheResultMiss
	if hit {
		result = metrics.CacheResultHit
	}
	metrics.ItemCacheTotal.WithLabelValues(layer, result).Inc()
}
