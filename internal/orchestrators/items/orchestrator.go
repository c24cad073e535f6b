// Package items implements the item orchestrator
package items

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/converters"
	entities "github.com/KirkDiggler/gw2-api/internal/entities/items"
	"github.com/KirkDiggler/gw2-api/internal/errors"
	itemrepo "github.com/KirkDiggler/gw2-api/internal/repositories/items"
	"github.com/KirkDiggler/gw2-api/internal/services/items"
)

const (
	defaultConcurrency = 8
	// MaxBatchSize caps the ids accepted by GetItems
	MaxBatchSize = 200
)

// Config holds the dependencies for the item orchestrator
type Config struct {
	Client     gw2.Client
	Repository itemrepo.Repository
	Converter  converters.Converter
	// Concurrency bounds parallel fetches in GetItems (optional, defaults to 8)
	Concurrency int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.Repository == nil {
		vb.RequiredField("Repository")
	}
	if c.Converter == nil {
		vb.RequiredField("Converter")
	}
	if c.Concurrency < 0 {
		vb.InvalidField("Concurrency", "must not be negative")
	}
	if err := vb.Build(); err != nil {
		return err
	}

	if c.Concurrency == 0 {
		c.Concurrency = defaultConcurrency
	}
	return nil
}

// Orchestrator implements the items.Service interface
type Orchestrator struct {
	client      gw2.Client
	repo        itemrepo.Repository
	converter   converters.Converter
	concurrency int
	fetches     singleflight.Group
}

// New creates a new item orchestrator
func New(cfg *Config) (*Orchestrator, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &Orchestrator{
		client:      cfg.Client,
		repo:        cfg.Repository,
		converter:   cfg.Converter,
		concurrency: cfg.Concurrency,
	}, nil
}

// Ensure Orchestrator implements the Service interface
var _ items.Service = (*Orchestrator)(nil)

// GetItem returns a typed item. Cache failures are logged and the API is
// used instead; only API and conversion failures are returned.
func (o *Orchestrator) GetItem(ctx context.Context, input *items.GetItemInput) (*items.GetItemOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if input.ItemID < 1 {
		return nil, errors.InvalidArgumentf("item id must be positive, got %d", input.ItemID)
	}

	lang := o.client.Language()

	if !input.Refresh {
		cached, err := o.repo.Get(ctx, itemrepo.GetInput{Language: lang, ItemID: input.ItemID})
		switch {
		case err == nil:
			item, err := o.converter.Convert(cached.Record)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to convert cached item %d", input.ItemID)
			}
			return &items.GetItemOutput{Item: item, Source: items.SourceCache, CachedAt: cached.CachedAt}, nil
		case errors.IsNotFound(err):
		default:
			slog.WarnContext(ctx, "Item cache read failed, falling back to API",
				"item_id", input.ItemID, "error", err)
		}
	}

	fetched, err := o.fetch(ctx, lang, input.ItemID)
	if err != nil {
		return nil, err
	}

	item, err := o.converter.Convert(fetched.record)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to convert item %d", input.ItemID)
	}

	return &items.GetItemOutput{Item: item, Source: items.SourceAPI, CachedAt: fetched.cachedAt}, nil
}

// GetItems fetches items concurrently and returns them in request order.
// The first failure cancels the remaining fetches.
func (o *Orchestrator) GetItems(ctx context.Context, input *items.GetItemsInput) (*items.GetItemsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}
	if len(input.ItemIDs) == 0 {
		return &items.GetItemsOutput{}, nil
	}
	if len(input.ItemIDs) > MaxBatchSize {
		return nil, errors.InvalidArgumentf("at most %d ids per request, got %d", MaxBatchSize, len(input.ItemIDs))
	}

	out := make([]entities.Item, len(input.ItemIDs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(o.concurrency)
	for i, id := range input.ItemIDs {
		g.Go(func() error {
			got, err := o.GetItem(gctx, &items.GetItemInput{ItemID: id})
			if err != nil {
				return err
			}
			out[i] = got.Item
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &items.GetItemsOutput{Items: out}, nil
}

// ListItemIDs returns every item id the API knows
func (o *Orchestrator) ListItemIDs(ctx context.Context, input *items.ListItemIDsInput) (*items.ListItemIDsOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	ids, err := o.client.ListItemIDs(ctx)
	if err != nil {
		return nil, err
	}

	return &items.ListItemIDsOutput{ItemIDs: ids}, nil
}

// ConvertRecord converts a record without touching the cache or the API
func (o *Orchestrator) ConvertRecord(_ context.Context, input *items.ConvertRecordInput) (*items.ConvertRecordOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	item, err := o.converter.Convert(input.Record)
	if err != nil {
		return nil, err
	}

	return &items.ConvertRecordOutput{Item: item}, nil
}

type fetchResult struct {
	record   *gw2.ItemDetails
	cachedAt time.Time
}

// fetch loads a record from the API and caches it. Concurrent fetches of the
// same item share one request, which runs detached from any single caller's
// cancellation. Each caller stops waiting when its own context is done.
func (o *Orchestrator) fetch(ctx context.Context, lang string, id int) (*fetchResult, error) {
	shared := context.WithoutCancel(ctx)
	ch := o.fetches.DoChan(lang+":"+strconv.Itoa(id), func() (any, error) {
		record, err := o.client.GetItemDetails(shared, id)
		if err != nil {
			return nil, err
		}

		result := &fetchResult{record: record}
		put, err := o.repo.Put(shared, itemrepo.PutInput{Language: lang, ItemID: id, Record: record})
		if err != nil {
			slog.WarnContext(shared, "Failed to cache item", "item_id", id, "error", err)
		} else {
			result.cachedAt = put.CachedAt
		}
		return result, nil
	})

	select {
	case <-ctx.Done():
		return nil, errors.WrapWithCode(ctx.Err(), errors.GetCode(ctx.Err()),
			"stopped waiting for item "+strconv.Itoa(id))
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		return res.Val.(*fetchResult), nil
	}
}
