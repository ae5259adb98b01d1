package main

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/alicebob/miniredis/v2"

	"github.com/KirkDiggler/itemforge/internal/config"
	"github.com/KirkDiggler/itemforge/internal/materials"
	"github.com/KirkDiggler/itemforge/internal/metrics"
	"github.com/KirkDiggler/itemforge/internal/orchestrators/forge"
	"github.com/KirkDiggler/itemforge/internal/pkg/clock"
	"github.com/KirkDiggler/itemforge/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/itemforge/internal/redis"
	"github.com/KirkDiggler/itemforge/internal/repositories/templates"
)

// connectRedis dials the configured Redis, or starts an in-process store
// when the address is config.RedisAddrEmbedded. The returned func releases
// both.
func connectRedis(ctx context.Context, cfg *config.Config) (redisclient.Client, func(), error) {
	addr := cfg.RedisAddr
	var embedded *miniredis.Miniredis

	if addr == config.RedisAddrEmbedded {
		var err error
		embedded, err = miniredis.Run()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to start embedded redis: %w", err)
		}
		addr = embedded.Addr()
		slog.WarnContext(ctx, "using embedded redis, templates will not survive a restart")
	}

	client, err := redisclient.NewClient(addr, &redisclient.Options{
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err != nil {
		if embedded != nil {
			embedded.Close()
		}
		return nil, nil, err
	}

	cleanup := func() {
		_ = client.Close() // nolint:errcheck // safe to ignore in cleanup
		if embedded != nil {
			embedded.Close()
		}
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		cleanup()
		return nil, nil, fmt.Errorf("failed to reach redis at %s: %w", addr, err)
	}

	return client, cleanup, nil
}

// newForgeService wires the template store and the forge orchestrator
func newForgeService(client redisclient.Client, cfg *config.Config, m *metrics.Metrics) (forge.Service, error) {
	repo, err := templates.NewRedis(&templates.RedisConfig{Client: client})
	if err != nil {
		return nil, fmt.Errorf("failed to create template repository: %w", err)
	}

	if cfg.CacheSize > 0 {
		repo, err = templates.NewCached(&templates.CacheConfig{
			Repository: repo,
			Size:       cfg.CacheSize,
			TTL:        cfg.CacheTTL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to create template cache: %w", err)
		}
	}

	return forge.NewOrchestrator(&forge.Config{
		TemplateRepo: repo,
		Catalog:      materials.Default(),
		IDGenerator:  idgen.NewUUID("tmpl"),
		Clock:        clock.New(),
		DiceRoller:   dice.DefaultRoller,
		Metrics:      m,
	})
}
