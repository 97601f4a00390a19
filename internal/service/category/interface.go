package category_service

import (
	"context"

	"blogicum-service/internal/model"
)

// Service manages the taxonomy behind posts: categories and locations.
// All mutations here are admin-only; the caller enforces that at the edge.
type Service interface {
	CreateCategory(ctx context.Context, dto *model.CreateCategoryDTO) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, dto *model.UpdateCategoryDTO) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error

	CreateLocation(ctx context.Context, dto *model.CreateLocationDTO) (*model.Location, error)
	GetLocation(ctx context.Context, id int64) (*model.Location, error)
	UpdateLocation(ctx context.Context, id int64, dto *model.UpdateLocationDTO) (*model.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}
