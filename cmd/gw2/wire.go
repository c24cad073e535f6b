package main

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/gw2-api/internal/clients/gw2"
	"github.com/KirkDiggler/gw2-api/internal/config"
	"github.com/KirkDiggler/gw2-api/internal/converters"
	itemorch "github.com/KirkDiggler/gw2-api/internal/orchestrators/items"
	redisclient "github.com/KirkDiggler/gw2-api/internal/redis"
	itemrepo "github.com/KirkDiggler/gw2-api/internal/repositories/items"
)

// app holds the wired item service and the resources it owns
type app struct {
	service *itemorch.Orchestrator
	// ready is nil when there is nothing external to check
	ready   func(ctx context.Context) error
	closers []func() error
}

// newApp wires the API client, the cache layers and the orchestrator. Redis
// is only used when addresses are configured.
func newApp(cfg *config.Config) (*app, error) {
	client, err := gw2.New(&gw2.Config{
		BaseURL:     cfg.API.BaseURL,
		Language:    cfg.API.Language,
		HTTPTimeout: cfg.API.Timeout,
	})
	if err != nil {
		return nil, err
	}

	repo, err := itemrepo.NewMemory(&itemrepo.MemoryConfig{
		Size: cfg.Cache.MemorySize,
		TTL:  cfg.Cache.MemoryTTL,
	})
	if err != nil {
		return nil, err
	}

	a := &app{}

	if cfg.Redis.Enabled() {
		rc, err := redisclient.NewClient(&redisclient.Options{
			Addrs:      cfg.Redis.Addrs,
			MasterName: cfg.Redis.MasterName,
			Password:   cfg.Redis.Password,
			DB:         cfg.Redis.DB,
		})
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, rc.Close)
		a.ready = func(ctx context.Context) error { return redisclient.Ping(ctx, rc) }

		shared, err := itemrepo.NewRedis(&itemrepo.RedisConfig{Client: rc, TTL: cfg.Cache.TTL})
		if err != nil {
			a.close()
			return nil, err
		}

		repo, err = itemrepo.NewTiered(&itemrepo.TieredConfig{Front: repo, Back: shared})
		if err != nil {
			a.close()
			return nil, err
		}
	}

	a.service, err = itemorch.New(&itemorch.Config{
		Client:     client,
		Repository: repo,
		Converter:  converters.New(),
	})
	if err != nil {
		a.close()
		return nil, err
	}

	slog.Debug("Item service ready",
		"language", client.Language(),
		"redis", cfg.Redis.Enabled(),
		"memory_size", cfg.Cache.MemorySize)

	return a, nil
}

func (a *app) close() {
	for _, c := range a.closers {
		if err := c(); err != nil {
			slog.Warn("Failed to close resource", "error", err)
		}
	}
}
