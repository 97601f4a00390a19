package post_repository

import (
	"context"

	"blogicum-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, post *model.Post) (*model.Post, error)
	GetByID(ctx context.Context, id int64) (*model.Post, error)
	Count(ctx context.Context, filters model.PostFilters) (int, error)
	List(ctx context.Context, filters model.PostFilters) ([]*model.Post, error)
	Update(ctx context.Context, id int64, update *model.UpdatePostDTO) (*model.Post, error)
	Delete(ctx context.Context, id int64) error
	ClearCategory(ctx context.Context, categoryID int64) error
	ClearLocation(ctx context.Context, locationID int64) error
}
