package comment_repository

import (
	"context"

	"blogicum-service/internal/model"
)

type Repository interface {
	Create(ctx context.Context, comment *model.Comment) (*model.Comment, error)
	GetByID(ctx context.Context, id int64) (*model.Comment, error)
	ListByPost(ctx context.Context, postID int64) ([]*model.Comment, error)
	CountByPost(ctx context.Context, postID int64) (int64, error)
	Update(ctx context.Context, id int64, text string) (*model.Comment, error)
	Delete(ctx context.Context, id int64) error
	DeleteByPost(ctx context.Context, postID int64) error
}
