package templates

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/KirkDiggler/itemforge/internal/entities/itemdef"
	"github.com/KirkDiggler/itemforge/internal/errors"
)

const (
	defaultCacheSize = 512
	defaultCacheTTL  = 5 * time.Minute
)

// CacheConfig configures the read-through cache in front of a Repository
type CacheConfig struct {
	Repository Repository
	// Size is the maximum number of cached templates; 0 uses a default
	Size int
	// TTL bounds how stale a cached template may be; 0 uses a default
	TTL time.Duration
}

// Validate validates the CacheConfig
func (cfg *CacheConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	if cfg.Repository == nil {
		return errors.InvalidArgument("repository cannot be nil")
	}
	if cfg.Size < 0 {
		return errors.InvalidArgument("cache size cannot be negative")
	}
	if cfg.TTL < 0 {
		return errors.InvalidArgument("cache ttl cannot be negative")
	}
	return nil
}

type cachedRepository struct {
	next Repository
	lru  *expirable.LRU[string, *itemdef.Template]
}

// NewCached wraps a Repository with an expiring LRU cache for Get. Writes go
// to the wrapped repository and evict the affected entry.
func NewCached(cfg *CacheConfig) (Repository, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	size := cfg.Size
	if size == 0 {
		size = defaultCacheSize
	}
	ttl := cfg.TTL
	if ttl == 0 {
		ttl = defaultCacheTTL
	}

	return &cachedRepository{
		next: cfg.Repository,
		lru:  expirable.NewLRU[string, *itemdef.Template](size, nil, ttl),
	}, nil
}

func (c *cachedRepository) Create(ctx context.Context, input CreateInput) (*CreateOutput, error) {
	output, err := c.next.Create(ctx, input)
	if err != nil {
		return nil, err
	}
	c.lru.Add(output.Template.ID, output.Template.Clone())
	return output, nil
}

func (c *cachedRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if tmpl, ok := c.lru.Get(input.ID); ok {
		return &GetOutput{Template: tmpl.Clone()}, nil
	}

	output, err := c.next.Get(ctx, input)
	if err != nil {
		return nil, err
	}
	c.lru.Add(input.ID, output.Template.Clone())
	return output, nil
}

func (c *cachedRepository) List(ctx context.Context, input ListInput) (*ListOutput, error) {
	return c.next.List(ctx, input)
}

func (c *cachedRepository) Update(ctx context.Context, input UpdateInput) (*UpdateOutput, error) {
	if input.Template != nil {
		c.lru.Remove(input.Template.ID)
	}
	output, err := c.next.Update(ctx, input)
	if err != nil {
		return nil, err
	}
	c.lru.Add(output.Template.ID, output.Template.Clone())
	return output, nil
}

func (c *cachedRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	c.lru.Remove(input.ID)
	return c.next.Delete(ctx, input)
}
