package post_service

import (
	"context"

	"blogicum-service/internal/model"
)

type Service interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
	GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error)
	ListPosts(ctx context.Context, viewer *model.Viewer, scope model.ListScope, page int) (*model.PostPage, error)
	UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error
	DeletePost(ctx context.Context, userID int64, id int64) error
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
}
