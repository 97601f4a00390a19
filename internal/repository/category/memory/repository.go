package memory

import (
	"context"
	"log/slog"
	"sync"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
)

type CategoryRepository struct {
	log        *logger.Logger
	mu         sync.RWMutex
	categories map[int64]*model.Category
	nextID     int64
}

func NewCategoryRepository(log *logger.Logger) *CategoryRepository {
	return &CategoryRepository{
		log:        log,
		categories: make(map[int64]*model.Category),
		nextID:     1,
	}
}

func (c *CategoryRepository) Create(ctx context.Context, category *model.Category) (*model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	for _, existing := range c.categories {
		if existing.Slug == category.Slug {
			return nil, custom_errors.ErrCategorySlugExists
		}
	}

	newCategory := &model.Category{
		ID:          c.nextID,
		Title:       category.Title,
		Slug:        category.Slug,
		Description: category.Description,
		IsPublished: category.IsPublished,
	}
	c.nextID++

	c.categories[newCategory.ID] = newCategory

	result := *newCategory
	return &result, nil
}

func (c *CategoryRepository) GetByID(ctx context.Context, id int64) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	category, exists := c.categories[id]
	if !exists {
		c.log.Debug("Category not found by id", slog.Int64("id", id))
		return nil, custom_errors.ErrCategoryNotFound
	}

	result := *category
	return &result, nil
}

func (c *CategoryRepository) GetBySlug(ctx context.Context, slug string) (*model.Category, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	for _, category := range c.categories {
		if category.Slug == slug {
			result := *category
			return &result, nil
		}
	}

	c.log.Debug("Category not found by slug", slog.String("slug", slug))
	return nil, custom_errors.ErrCategoryNotFound
}

func (c *CategoryRepository) Update(ctx context.Context, id int64, update *model.UpdateCategoryDTO) (*model.Category, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	category, exists := c.categories[id]
	if !exists {
		return nil, custom_errors.ErrCategoryNotFound
	}

	if update.Slug != nil {
		for otherID, other := range c.categories {
			if otherID != id && other.Slug == *update.Slug {
				return nil, custom_errors.ErrCategorySlugExists
			}
		}
		category.Slug = *update.Slug
	}
	if update.Title != nil {
		category.Title = *update.Title
	}
	if update.Description != nil {
		category.Description = *update.Description
	}
	if update.IsPublished != nil {
		category.IsPublished = *update.IsPublished
	}

	result := *category
	return &result, nil
}

func (c *CategoryRepository) Delete(ctx context.Context, id int64) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, exists := c.categories[id]; !exists {
		return custom_errors.ErrCategoryNotFound
	}

	delete(c.categories, id)
	return nil
}
