package post_service

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/jackc/pgx/v5/pgtype"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/model"
	"blogicum-service/internal/pagination"
	category_repository "blogicum-service/internal/repository/category"
	comment_repository "blogicum-service/internal/repository/comment"
	location_repository "blogicum-service/internal/repository/location"
	post_repository "blogicum-service/internal/repository/post"
	"blogicum-service/internal/repository/postgres"
	user_repository "blogicum-service/internal/repository/user"
)

type PostService struct {
	postRepo     post_repository.Repository
	categoryRepo category_repository.Repository
	locationRepo location_repository.Repository
	commentRepo  comment_repository.Repository
	userRepo     user_repository.Repository
	uow          postgres.UnitOfWork
	log          *logger.Logger
	metrics      metrics.MetricsProvider
	pageSize     int
}

func NewPostService(
	postRepo post_repository.Repository,
	categoryRepo category_repository.Repository,
	locationRepo location_repository.Repository,
	commentRepo comment_repository.Repository,
	userRepo user_repository.Repository,
	uow postgres.UnitOfWork,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
	pageSize int,
) *PostService {
	return &PostService{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		uow:          uow,
		log:          log,
		metrics:      metrics,
		pageSize:     pageSize,
	}
}

func (s *PostService) rollback(ctx context.Context, tx postgres.Transaction, committed *bool) {
	if *committed || tx == nil {
		return
	}
	rollbackErr := tx.Rollback(ctx)
	if rollbackErr != nil {
		if !strings.Contains(rollbackErr.Error(), "tx is closed") && !strings.Contains(rollbackErr.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Error("Failed to rollback transaction", slog.String("error", rollbackErr.Error()))
		} else {
			s.log.Debug("Transaction already closed during rollback", slog.String("error", rollbackErr.Error()))
		}
	}
}

func (s *PostService) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found for new post", slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get author for new post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var category *model.Category
	if post.CategoryID != nil {
		category, err = s.categoryRepo.GetByID(ctx, *post.CategoryID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrCategoryNotFound) {
				s.log.Debug("Category not found for new post", slog.Int64("category_id", *post.CategoryID))
				return nil, custom_errors.ErrCategoryNotFound
			}
			s.log.Error("Failed to get category for new post", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	var location *model.Location
	if post.LocationID != nil {
		location, err = s.locationRepo.GetByID(ctx, *post.LocationID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrLocationNotFound) {
				s.log.Debug("Location not found for new post", slog.Int64("location_id", *post.LocationID))
				return nil, custom_errors.ErrLocationNotFound
			}
			s.log.Error("Failed to get location for new post", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	newPost := &model.Post{
		AuthorID:    post.AuthorID,
		Title:       post.Title,
		Text:        post.Text,
		PubDate:     pgtype.Timestamptz{Time: post.PubDate, Valid: true},
		CategoryID:  post.CategoryID,
		LocationID:  post.LocationID,
		ImageURL:    post.ImageURL,
		IsPublished: post.IsPublished,
	}
	createdPost, err := s.postRepo.Create(ctx, newPost)
	if err != nil {
		s.metrics.IncrementPostOperations("create", false)
		s.log.Error("Failed to create post", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	s.metrics.IncrementPostOperations("create", true)
	return &model.PostDetailed{
		Post:     createdPost,
		Author:   author,
		Category: category,
		Location: location,
	}, nil
}

func (s *PostService) GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error) {
	post, err := s.postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found", slog.Int64("id", id))
			return nil, custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post by id", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var category *model.Category
	if post.CategoryID != nil {
		category, err = s.categoryRepo.GetByID(ctx, *post.CategoryID)
		if err != nil && !errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Error("Failed to get category for post", slog.String("error", err.Error()), slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	// Hidden posts answer exactly like missing ones.
	if !IsVisible(post, category, viewer) {
		s.log.Debug("Post not visible for viewer", slog.Int64("id", id))
		return nil, custom_errors.ErrPostNotFound
	}

	author, err := s.userRepo.GetByID(ctx, post.AuthorID)
	if err != nil {
		if errors.Is(err, custom_errors.ErrUserNotFound) {
			s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrUserNotFound
		}
		s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("author_id", post.AuthorID))
		return nil, custom_errors.ErrDatabaseQuery
	}

	var location *model.Location
	if post.LocationID != nil {
		location, err = s.locationRepo.GetByID(ctx, *post.LocationID)
		if err != nil && !errors.Is(err, custom_errors.ErrLocationNotFound) {
			s.log.Error("Failed to get location for post", slog.String("error", err.Error()), slog.Int64("id", id))
			return nil, custom_errors.ErrDatabaseQuery
		}
	}

	count, err := s.commentRepo.CountByPost(ctx, id)
	if err != nil {
		s.log.Error("Failed to count comments for post", slog.String("error", err.Error()), slog.Int64("id", id))
		return nil, custom_errors.ErrDatabaseQuery
	}
	post.CommentCount = count

	return &model.PostDetailed{
		Post:     post,
		Author:   author,
		Category: category,
		Location: location,
	}, nil
}

func (s *PostService) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	category, err := s.categoryRepo.GetBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, custom_errors.ErrCategoryNotFound) {
			s.log.Debug("Category not found by slug", slog.String("slug", slug))
			return nil, custom_errors.ErrCategoryNotFound
		}
		s.log.Error("Failed to get category by slug", slog.String("error", err.Error()), slog.String("slug", slug))
		return nil, custom_errors.ErrDatabaseQuery
	}

	// An unpublished category resolves like a missing one.
	if !category.IsPublished {
		s.log.Debug("Category is not published", slog.String("slug", slug))
		return nil, custom_errors.ErrCategoryNotFound
	}

	return category, nil
}

func (s *PostService) ListPosts(ctx context.Context, viewer *model.Viewer, scope model.ListScope, page int) (*model.PostPage, error) {
	filters := model.PostFilters{}

	if scope.CategoryID != nil {
		category, err := s.categoryRepo.GetByID(ctx, *scope.CategoryID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrCategoryNotFound) {
				return nil, custom_errors.ErrCategoryNotFound
			}
			s.log.Error("Failed to resolve category scope", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		if !category.IsPublished {
			return nil, custom_errors.ErrCategoryNotFound
		}
		filters.CategoryID = scope.CategoryID
	}

	if scope.AuthorUsername != nil {
		user, err := s.userRepo.GetByUsername(ctx, *scope.AuthorUsername)
		if err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				return nil, custom_errors.ErrUserNotFound
			}
			s.log.Error("Failed to resolve author scope", slog.String("error", err.Error()))
			return nil, custom_errors.ErrDatabaseQuery
		}
		filters.AuthorID = &user.ID
	}

	if viewer != nil {
		filters.ViewerID = &viewer.ID
	}

	total, err := s.postRepo.Count(ctx, filters)
	if err != nil {
		s.log.Error("Failed to count posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	pg := pagination.Clamp(total, s.pageSize, page)
	limit := pg.Size
	offset := pg.Offset()
	filters.Limit = &limit
	filters.Offset = &offset

	posts, err := s.postRepo.List(ctx, filters)
	if err != nil {
		s.log.Error("Failed to list posts", slog.String("error", err.Error()))
		return nil, custom_errors.ErrDatabaseQuery
	}

	items := make([]*model.PostDetailed, 0, len(posts))
	for _, post := range posts {
		author, err := s.userRepo.GetByID(ctx, post.AuthorID)
		if err != nil {
			if errors.Is(err, custom_errors.ErrUserNotFound) {
				s.log.Debug("Author not found", slog.Int64("author_id", post.AuthorID), slog.Int64("post_id", post.ID))
				return nil, custom_errors.ErrUserNotFound
			}
			s.log.Error("Failed to get author", slog.String("error", err.Error()), slog.Int64("author_id", post.AuthorID))
			return nil, custom_errors.ErrDatabaseQuery
		}

		var category *model.Category
		if post.CategoryID != nil {
			category, err = s.categoryRepo.GetByID(ctx, *post.CategoryID)
			if err != nil && !errors.Is(err, custom_errors.ErrCategoryNotFound) {
				s.log.Error("Failed to get category", slog.String("error", err.Error()), slog.Int64("post_id", post.ID))
				return nil, custom_errors.ErrDatabaseQuery
			}
		}

		var location *model.Location
		if post.LocationID != nil {
			location, err = s.locationRepo.GetByID(ctx, *post.LocationID)
			if err != nil && !errors.Is(err, custom_errors.ErrLocationNotFound) {
				s.log.Error("Failed to get location", slog.String("error", err.Error()), slog.Int64("post_id", post.ID))
				return nil, custom_errors.ErrDatabaseQuery
			}
		}

		count, err := s.commentRepo.CountByPost(ctx, post.ID)
		if err != nil {
			s.log.Error("Failed to count comments", slog.String("error", err.Error()), slog.Int64("post_id", post.ID))
			return nil, custom_errors.ErrDatabaseQuery
		}
		post.CommentCount = count

		items = append(items, &model.PostDetailed{
			Post:     post,
			Author:   author,
			Category: category,
			Location: location,
		})
	}

	return &model.PostPage{
		Items:      items,
		Page:       pg.Number,
		PageSize:   pg.Size,
		TotalItems: pg.TotalItems,
		TotalPages: pg.TotalPages,
		HasNext:    pg.HasNext(),
		HasPrev:    pg.HasPrev(),
	}, nil
}

func (s *PostService) UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer s.rollback(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()

	existingPost, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for update", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for update", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if existingPost.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("user_id", userID), slog.Int64("author_id", existingPost.AuthorID))
		s.metrics.IncrementPostOperations("update", false)
		return custom_errors.ErrForbidden
	}

	if post.CategoryID != nil {
		if _, err := tx.CategoryRepository().GetByID(ctx, *post.CategoryID); err != nil {
			if errors.Is(err, custom_errors.ErrCategoryNotFound) {
				return custom_errors.ErrCategoryNotFound
			}
			s.log.Error("Failed to verify category for update", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
	}
	if post.LocationID != nil {
		if _, err := tx.LocationRepository().GetByID(ctx, *post.LocationID); err != nil {
			if errors.Is(err, custom_errors.ErrLocationNotFound) {
				return custom_errors.ErrLocationNotFound
			}
			s.log.Error("Failed to verify location for update", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
	}

	_, err = postRepo.Update(ctx, id, post)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrPostNotFound
		}
		if errors.Is(err, custom_errors.ErrNoUpdateRows) {
			return custom_errors.ErrNoUpdateRows
		}
		s.metrics.IncrementPostOperations("update", false)
		s.log.Error("Failed to update post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementPostOperations("update", true)
	return nil
}

func (s *PostService) DeletePost(ctx context.Context, userID int64, id int64) (err error) {
	tx, err := s.uow.Begin(ctx)
	if err != nil {
		s.log.Error("Failed to start transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}

	var txCommitted bool
	defer s.rollback(ctx, tx, &txCommitted)

	postRepo := tx.PostRepository()
	commentRepo := tx.CommentRepository()

	post, err := postRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			s.log.Debug("Post not found for delete", slog.Int64("id", id))
			return custom_errors.ErrPostNotFound
		}
		s.log.Error("Failed to get post for delete", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}
	if post.AuthorID != userID {
		s.log.Debug("User is not author of post", slog.Int64("user_id", userID), slog.Int64("author_id", post.AuthorID))
		s.metrics.IncrementPostOperations("delete", false)
		return custom_errors.ErrForbidden
	}

	// Comments go with their post.
	if err := commentRepo.DeleteByPost(ctx, id); err != nil {
		s.log.Error("Failed to delete comments for post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	if err := postRepo.Delete(ctx, id); err != nil {
		if errors.Is(err, custom_errors.ErrPostNotFound) {
			return custom_errors.ErrPostNotFound
		}
		s.metrics.IncrementPostOperations("delete", false)
		s.log.Error("Failed to delete post", slog.String("error", err.Error()), slog.Int64("id", id))
		return custom_errors.ErrDatabaseQuery
	}

	err = tx.Commit(ctx)
	if err != nil {
		if strings.Contains(err.Error(), "commit unexpectedly resulted in rollback") {
			s.log.Warn("Transaction commit resulted in rollback", slog.String("error", err.Error()))
			return custom_errors.ErrDatabaseQuery
		}
		s.log.Error("Failed to commit transaction", slog.String("error", err.Error()))
		return custom_errors.ErrDatabaseQuery
	}
	txCommitted = true

	s.metrics.IncrementPostOperations("delete", true)
	return nil
}
