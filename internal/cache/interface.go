package cache

import (
	"context"

	"blogicum-service/internal/model"
)

type PostCache interface {
	GetPost(ctx context.Context, postID int64) (*model.PostDetailed, error)
	SetPost(ctx context.Context, post *model.PostDetailed) error
	DeletePost(ctx context.Context, postID int64) error
}

type CategoryCache interface {
	GetCategory(ctx context.Context, slug string) (*model.Category, error)
	SetCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, slug string) error
}
