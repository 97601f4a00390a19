package comment_service

import (
	"context"

	"blogicum-service/internal/model"
)

type Service interface {
	CreateComment(ctx context.Context, viewer *model.Viewer, dto *model.CreateCommentDTO) (*model.Comment, error)
	ListByPost(ctx context.Context, viewer *model.Viewer, postID int64) ([]*model.Comment, error)
	UpdateComment(ctx context.Context, userID int64, postID int64, commentID int64, text string) (*model.Comment, error)
	DeleteComment(ctx context.Context, userID int64, postID int64, commentID int64) error
}
