package items

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/gw2-api/internal/errors"
)

type tieredRepository struct {
	front Repository
	back  Repository
}

// TieredConfig contains configuration for a two level item repository.
type TieredConfig struct {
	// Front is checked first, usually NewMemory
	Front Repository
	// Back is the shared cache, usually NewRedis
	Back Repository
}

// Validate validates the TieredConfig.
func (cfg *TieredConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Front == nil {
		return errors.InvalidArgument("front repository cannot be nil")
	}
	if cfg.Back == nil {
		return errors.InvalidArgument("back repository cannot be nil")
	}
	return nil
}

// NewTiered creates a repository that reads through Front to Back and
// writes to both
func NewTiered(cfg *TieredConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &tieredRepository{
		front: cfg.Front,
		back:  cfg.Back,
	}, nil
}

func (r *tieredRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	out, err := r.front.Get(ctx, input)
	if err == nil {
		return out, nil
	}
	if !errors.IsNotFound(err) {
		return nil, err
	}

	out, err = r.back.Get(ctx, input)
	if err != nil {
		return nil, err
	}

	// out keeps the CachedAt of the back layer.
	if _, err := r.front.Put(ctx, PutInput{
		Language: input.Language,
		ItemID:   input.ItemID,
		Record:   out.Record,
	}); err != nil {
		slog.Warn("Failed to promote cached item", "item_id", input.ItemID, "error", err)
	}

	return out, nil
}

func (r *tieredRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	out, err := r.back.Put(ctx, input)
	if err != nil {
		return nil, err
	}
	if _, err := r.front.Put(ctx, input); err != nil {
		return nil, err
	}
	return out, nil
}

func (r *tieredRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if _, err := r.front.Delete(ctx, input); err != nil {
		return nil, err
	}
	return r.back.Delete(ctx, input)
}
