package category_service

import (
	"context"
	"log/slog"

	"blogicum-service/internal/cache"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
)

// CategoryServiceCacheDecorator keeps the slug cache honest: any
// category mutation drops the cached entry for the slug it had before
// the change, plus the new slug when a rename lands.
type CategoryServiceCacheDecorator struct {
	service       Service
	categoryCache cache.CategoryCache
	log           *logger.Logger
}

func NewCategoryServiceCacheDecorator(
	service Service,
	categoryCache cache.CategoryCache,
	log *logger.Logger,
) Service {
	return &CategoryServiceCacheDecorator{
		service:       service,
		categoryCache: categoryCache,
		log:           log,
	}
}

func (d *CategoryServiceCacheDecorator) invalidate(ctx context.Context, slug string) {
	if err := d.categoryCache.DeleteCategory(ctx, slug); err != nil {
		d.log.Warn("Failed to invalidate category cache",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
	}
}

func (d *CategoryServiceCacheDecorator) CreateCategory(ctx context.Context, dto *model.CreateCategoryDTO) (*model.Category, error) {
	return d.service.CreateCategory(ctx, dto)
}

func (d *CategoryServiceCacheDecorator) GetCategory(ctx context.Context, id int64) (*model.Category, error) {
	return d.service.GetCategory(ctx, id)
}

func (d *CategoryServiceCacheDecorator) UpdateCategory(ctx context.Context, id int64, dto *model.UpdateCategoryDTO) (*model.Category, error) {
	existing, err := d.service.GetCategory(ctx, id)
	if err != nil {
		return nil, err
	}

	updated, err := d.service.UpdateCategory(ctx, id, dto)
	if err != nil {
		return nil, err
	}

	d.invalidate(ctx, existing.Slug)
	if updated.Slug != existing.Slug {
		d.invalidate(ctx, updated.Slug)
	}

	return updated, nil
}

func (d *CategoryServiceCacheDecorator) DeleteCategory(ctx context.Context, id int64) error {
	existing, err := d.service.GetCategory(ctx, id)
	if err != nil {
		return err
	}

	if err := d.service.DeleteCategory(ctx, id); err != nil {
		return err
	}

	d.invalidate(ctx, existing.Slug)
	return nil
}

func (d *CategoryServiceCacheDecorator) CreateLocation(ctx context.Context, dto *model.CreateLocationDTO) (*model.Location, error) {
	return d.service.CreateLocation(ctx, dto)
}

func (d *CategoryServiceCacheDecorator) GetLocation(ctx context.Context, id int64) (*model.Location, error) {
	return d.service.GetLocation(ctx, id)
}

func (d *CategoryServiceCacheDecorator) UpdateLocation(ctx context.Context, id int64, dto *model.UpdateLocationDTO) (*model.Location, error) {
	return d.service.UpdateLocation(ctx, id, dto)
}

func (d *CategoryServiceCacheDecorator) DeleteLocation(ctx context.Context, id int64) error {
	return d.service.DeleteLocation(ctx, id)
}
