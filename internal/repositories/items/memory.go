package items

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/gw2-api/internal/errors"
	"github.com/KirkDiggler/gw2-api/internal/metrics"
	"github.com/KirkDiggler/gw2-api/internal/pkg/clock"
)

type memoryRepository struct {
	cache *expirable.LRU[string, entry]
	clock clock.Clock
}

// MemoryConfig contains configuration for the in-process item repository.
type MemoryConfig struct {
	// Size is the maximum number of records kept (optional, defaults to 1024)
	Size int
	// TTL of cached records (optional, defaults to 5 minutes)
	TTL   time.Duration
	Clock clock.Clock
}

// Validate validates the MemoryConfig and sets defaults if not provided.
func (cfg *MemoryConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Size < 0 {
		return errors.InvalidArgument("size cannot be negative")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("ttl cannot be negative")
	}
	if cfg.Size == 0 {
		cfg.Size = 1024
	}
	if cfg.TTL == 0 {
		cfg.TTL = 5 * time.Minute
	}
	if cfg.Clock == nil {
		cfg.Clock = clock.New()
	}
	return nil
}

// NewMemory creates an LRU-backed item repository. Expiry uses wall time
// regardless of Clock; Clock only stamps CachedAt.
func NewMemory(cfg *MemoryConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &memoryRepository{
		cache: expirable.NewLRU[string, entry](cfg.Size, nil, cfg.TTL),
		clock: cfg.Clock,
	}, nil
}

func (r *memoryRepository) Get(_ context.Context, input GetInput) (*GetOutput, error) {
	if err := validateKey(input.Language, input.ItemID); err != nil {
		return nil, err
	}

	data, ok := r.cache.Get(Key(input.Language, input.ItemID))
	countLookup(metrics.CacheLayerMemory, ok)
	if !ok {
		return nil, ErrNotCached(input.Language, input.ItemID)
	}

	return &GetOutput{Record: data.Record, CachedAt: data.CachedAt}, nil
}

func (r *memoryRepository) Put(_ context.Context, input PutInput) (*PutOutput, error) {
	if err := validatePut(input); err != nil {
		return nil, err
	}

	data := entry{Record: input.Record, CachedAt: r.clock.Now().UTC()}
	r.cache.Add(Key(input.Language, input.ItemID), data)

	return &PutOutput{CachedAt: data.CachedAt}, nil
}

func (r *memoryRepository) Delete(_ context.Context, input DeleteInput) (*DeleteOutput, error) {
	if err := validateKey(input.Language, input.ItemID); err != nil {
		return nil, err
	}

	r.cache.Remove(Key(input.Language, input.ItemID))
	return &DeleteOutput{}, nil
}
