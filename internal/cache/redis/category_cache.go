package redis

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
)

const (
	categoryCacheKeyPrefix = "category:"
	categoryCacheTTL       = 10 * time.Minute
)

type CategoryCache struct {
	client *Client
	log    *logger.Logger
}

func NewCategoryCache(client *Client, log *logger.Logger) *CategoryCache {
	return &CategoryCache{
		client: client,
		log:    log,
	}
}

func (c *CategoryCache) GetCategory(ctx context.Context, slug string) (*model.Category, error) {
	key := categoryCacheKeyPrefix + slug

	var category model.Category
	err := c.client.Get(ctx, key, &category)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCacheMiss) {
			c.log.Debug("Category cache miss", slog.String("slug", slug))
			return nil, custom_errors.ErrCacheMiss
		}
		c.log.Error("Failed to get category from cache",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to get category from cache: %w", err)
	}

	c.log.Debug("Category cache hit", slog.String("slug", slug))
	return &category, nil
}

func (c *CategoryCache) SetCategory(ctx context.Context, category *model.Category) error {
	if category == nil {
		return fmt.Errorf("category cannot be nil")
	}

	key := categoryCacheKeyPrefix + category.Slug

	if err := c.client.Set(ctx, key, category, categoryCacheTTL); err != nil {
		c.log.Error("Failed to set category cache",
			slog.String("slug", category.Slug),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to set category cache: %w", err)
	}

	c.log.Debug("Category cached successfully",
		slog.String("slug", category.Slug),
		slog.Duration("ttl", categoryCacheTTL))
	return nil
}

func (c *CategoryCache) DeleteCategory(ctx context.Context, slug string) error {
	key := categoryCacheKeyPrefix + slug

	if err := c.client.Delete(ctx, key); err != nil {
		c.log.Error("Failed to delete category from cache",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
		return fmt.Errorf("failed to delete category from cache: %w", err)
	}

	c.log.Debug("Category deleted from cache", slog.String("slug", slug))
	return nil
}
