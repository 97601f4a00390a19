package comment_service

import (
	"context"
	"errors"
	"log/slog"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/model"
	category_repository "blogicum-service/internal/repository/category"
	comment_repository "blogicum-service/internal/repository/comment"
	post_repository "blogicum-service/internal/repository/post"
	post_service "blogicum-service/internal/service/post"
)

type CommentService struct {
	commentRepo  comment_repository.Repository
	postRepo     post_repository.Repository
	categoryRepo category_repository.Repository
	log          *logger.Logger
	metrics      metrics.MetricsProvider
}

func NewCommentService(
	commentRepo comment_repository.Repository,
	postRepo post_repository.Repository,
	categoryRepo category_repository.Repository,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *CommentService {
	return &CommentService{
		commentRepo:  commentRepo,
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		log:          log,
		metrics:      metrics,
	}
}

// visiblePost loads a post and applies the visibility rule for viewer,
// translating a hidden post into not-found.
func (s *CommentService) visiblePost(ctx context.Context, viewer *model.Viewer, postID int64) (*model.Post, error) {
	post, err := s.postRepo.GetByID(ctx, postID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var category *model.Category
	if post.CategoryID != nil {
		category, err = s.categoryRepo.GetByID(ctx, *post.CategoryID)
		if err != nil && !errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Error("Failed to get category", slog.String("error", err.Error()), slog.Int64("post_id", postID))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	if !post_service.IsVisible(post, category, viewer) {
		s.log.Debug("Post not visible for viewer", slog.Int64("post_id", postID))
		return nil, custom_errors.ErrPostNotFound
	}

	return post, nil
}

func (s *CommentService) CreateComment(ctx context.Context, viewer *model.Viewer, dto *model.CreateCommentDTO) (*model.Comment, error) {
	if viewer == nil {
		return nil, custom_errors.ErrUnauthenticated
	}

	// Commenting requires a publicly visible post; even the author cannot
	// collect comments on a draft or a post scheduled for the future.
	if _, err := s.visiblePost(ctx, nil, dto.PostID); err != nil {
		return nil, err
	}

	comment := &model.Comment{
		PostID:   dto.PostID,
		AuthorID: viewer.ID,
		Text:     dto.Text,
	}

	created, err := s.commentRepo.Create(ctx, comment)
	if err != nil {
		s.metrics.IncrementCommentOperations("create", false)
		s.log.Error("Failed to create comment", slog.String("error", err.Error()), slog.Int64("post_id", dto.PostID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementCommentOperations("create", true)
	return created, nil
}

func (s *CommentService) ListByPost(ctx context.Context, viewer *model.Viewer, postID int64) ([]*model.Comment, error) {
	if _, err := s.visiblePost(ctx, viewer, postID); err != nil {
		return nil, err
	}

	comments, err := s.commentRepo.ListByPost(ctx, postID)
	if err != nil {
		s.log.Error("Failed to list comments", slog.String("error", err.Error()), slog.Int64("post_id", postID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	return comments, nil
}

// ownComment resolves a comment scoped to one post and one author, the
// only scope in which comment mutations are allowed.
func (s *CommentService) ownComment(ctx context.Context, userID, postID, commentID int64) (*model.Comment, error) {
	comment, err := s.commentRepo.GetByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			return nil, custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to get comment", slog.String("error", err.Error()), slog.Int64("comment_id", commentID))
		return nil, custom_errors.ErrDatabaseQuery
	}
	if comment.PostID != postID {
		s.log.Debug("Comment does not belong to post",
			slog.Int64("comment_id", commentID),
			slog.Int64("post_id", postID))
		return nil, custom_errors.ErrCommentNotFound
	}
	if comment.AuthorID != userID {
		s.log.Debug("User is not author of comment",
			slog.Int64("user_id", userID),
			slog.Int64("author_id", comment.AuthorID))
		return nil, custom_errors.ErrForbidden
	}
	return comment, nil
}

func (s *CommentService) UpdateComment(ctx context.Context, userID int64, postID int64, commentID int64, text string) (*model.Comment, error) {
	if _, err := s.ownComment(ctx, userID, postID, commentID); err != nil {
		s.metrics.IncrementCommentOperations("update", false)
		return nil, err
	}

	updated, err := s.commentRepo.Update(ctx, commentID, text)
	if err != nil {
		s.metrics.IncrementCommentOperations("update", false)
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			return nil, custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to update comment", slog.String("error", err.Error()), slog.Int64("comment_id", commentID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementCommentOperations("update", true)
	return updated, nil
}

func (s *CommentService) DeleteComment(ctx context.Context, userID int64, postID int64, commentID int64) error {
	if _, err := s.ownComment(ctx, userID, postID, commentID); err != nil {
		s.metrics.IncrementCommentOperations("delete", false)
		return err
	}

	if err := s.commentRepo.Delete(ctx, commentID); err != nil {
		s.metrics.IncrementCommentOperations("delete", false)
		if errors.Is(err, custom_errors.ErrCommentNotFound) {
			return custom_errors.ErrCommentNotFound
		}
		s.log.Error("Failed to delete comment", slog.String("error", err.Error()), slog.Int64("comment_id", commentID))
		return custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementCommentOperations("delete", true)
	return nil
}
