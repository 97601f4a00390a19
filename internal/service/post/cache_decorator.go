package post_service

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"blogicum-service/internal/cache"
	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/model"
)

// PostServiceCacheDecorator caches single-post reads and category slug
// lookups. Only publicly visible posts are cached, so a hit is safe to
// serve to any viewer; author previews of hidden posts always go through
// to the inner service.
type PostServiceCacheDecorator struct {
	service       Service
	postCache     cache.PostCache
	categoryCache cache.CategoryCache
	log           *logger.Logger
	metrics       metrics.MetricsProvider
}

func NewPostServiceCacheDecorator(
	service Service,
	postCache cache.PostCache,
	categoryCache cache.CategoryCache,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) Service {
	return &PostServiceCacheDecorator{
		service:       service,
		postCache:     postCache,
		categoryCache: categoryCache,
		log:           log,
		metrics:       metrics,
	}
}

func (d *PostServiceCacheDecorator) CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error) {
	result, err := d.service.CreatePost(ctx, post)
	if err != nil {
		return nil, err
	}

	if IsVisible(result.Post, result.Category, nil) {
		start := time.Now()
		if err := d.postCache.SetPost(ctx, result); err != nil {
			d.log.Warn("Failed to cache created post",
				slog.Int64("post_id", result.Post.ID),
				slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("post_set", time.Since(start))
	}

	return result, nil
}

func (d *PostServiceCacheDecorator) GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error) {
	start := time.Now()
	cachedPost, err := d.postCache.GetPost(ctx, id)
	d.metrics.RecordCacheOperationDuration("post_get", time.Since(start))
	if err == nil {
		d.log.Debug("Post found in cache", slog.Int64("post_id", id))
		d.metrics.IncrementCacheHits()
		return cachedPost, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get post from cache",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	post, err := d.service.GetPostByID(ctx, viewer, id)
	if err != nil {
		return nil, err
	}

	if IsVisible(post.Post, post.Category, nil) {
		setStart := time.Now()
		if err := d.postCache.SetPost(ctx, post); err != nil {
			d.log.Warn("Failed to cache post",
				slog.Int64("post_id", id),
				slog.String("error", err.Error()))
		}
		d.metrics.RecordCacheOperationDuration("post_set", time.Since(setStart))
	}

	return post, nil
}

func (d *PostServiceCacheDecorator) ListPosts(ctx context.Context, viewer *model.Viewer, scope model.ListScope, page int) (*model.PostPage, error) {
	return d.service.ListPosts(ctx, viewer, scope, page)
}

func (d *PostServiceCacheDecorator) GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error) {
	start := time.Now()
	cachedCategory, err := d.categoryCache.GetCategory(ctx, slug)
	d.metrics.RecordCacheOperationDuration("category_get", time.Since(start))
	if err == nil {
		d.log.Debug("Category found in cache", slog.String("slug", slug))
		d.metrics.IncrementCacheHits()
		return cachedCategory, nil
	}

	if !errors.Is(err, custom_errors.ErrCacheMiss) {
		d.log.Warn("Failed to get category from cache",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
	} else {
		d.metrics.IncrementCacheMisses()
	}

	category, err := d.service.GetCategoryBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}

	setStart := time.Now()
	if err := d.categoryCache.SetCategory(ctx, category); err != nil {
		d.log.Warn("Failed to cache category",
			slog.String("slug", slug),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("category_set", time.Since(setStart))

	return category, nil
}

func (d *PostServiceCacheDecorator) UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error {
	err := d.service.UpdatePost(ctx, userID, id, post)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after update",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}

func (d *PostServiceCacheDecorator) DeletePost(ctx context.Context, userID int64, id int64) error {
	err := d.service.DeletePost(ctx, userID, id)
	if err != nil {
		return err
	}

	start := time.Now()
	if err := d.postCache.DeletePost(ctx, id); err != nil {
		d.log.Warn("Failed to invalidate post cache after deletion",
			slog.Int64("post_id", id),
			slog.String("error", err.Error()))
	}
	d.metrics.RecordCacheOperationDuration("post_delete", time.Since(start))

	return nil
}
