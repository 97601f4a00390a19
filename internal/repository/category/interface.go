package category_repository

import (
	"context"

	"blogicum-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, category *model.Category) (*model.Category, error)
	GetByID(ctx context.Context, id int64) (*model.Category, error)
	GetBySlug(ctx context.Context, slug string) (*model.Category, error)
	Update(ctx context.Context, id int64, update *model.UpdateCategoryDTO) (*model.Category, error)
	Delete(ctx context.Context, id int64) error
}
