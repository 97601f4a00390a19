package comment_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/model"
	category_memory "blogicum-service/internal/repository/category/memory"
	comment_memory "blogicum-service/internal/repository/comment/memory"
	post_memory "blogicum-service/internal/repository/post/memory"
	comment_service "blogicum-service/internal/service/comment"
)

type fixture struct {
	postRepo     *post_memory.PostRepository
	categoryRepo *category_memory.CategoryRepository
	commentRepo  *comment_memory.CommentRepository
	service      *comment_service.CommentService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New("test")

	postRepo := post_memory.NewPostRepository(log)
	categoryRepo := category_memory.NewCategoryRepository(log)
	commentRepo := comment_memory.NewCommentRepository(log)

	return &fixture{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		commentRepo:  commentRepo,
		service:      comment_service.NewCommentService(commentRepo, postRepo, categoryRepo, log, metrics.NewNoopMetricsProvider()),
	}
}

func (f *fixture) seedPost(t *testing.T, authorID int64, published bool, pubDate time.Time) *model.Post {
	t.Helper()
	ctx := context.Background()

	category, err := f.categoryRepo.Create(ctx, &model.Category{
		Title:       "life",
		Slug:        "life",
		Description: "life",
		IsPublished: true,
	})
	require.NoError(t, err)
	f.postRepo.SetCategoryPublished(category.ID, true)

	post, err := f.postRepo.Create(ctx, &model.Post{
		AuthorID:    authorID,
		Title:       "post",
		Text:        "text",
		PubDate:     pgtype.Timestamptz{Time: pubDate, Valid: true},
		CategoryID:  &category.ID,
		IsPublished: published,
	})
	require.NoError(t, err)
	return post
}

func TestCreateComment(t *testing.T) {
	ctx := context.Background()

	t.Run("on a public post", func(t *testing.T) {
		f := newFixture(t)
		post := f.seedPost(t, 1, true, time.Now().Add(-time.Hour))

		created, err := f.service.CreateComment(ctx, &model.Viewer{ID: 2}, &model.CreateCommentDTO{
			PostID: post.ID,
			Text:   "hello",
		})
		require.NoError(t, err)
		assert.Equal(t, post.ID, created.PostID)
		assert.Equal(t, int64(2), created.AuthorID)
		assert.Equal(t, "hello", created.Text)
	})

	t.Run("anonymous is rejected", func(t *testing.T) {
		f := newFixture(t)
		post := f.seedPost(t, 1, true, time.Now().Add(-time.Hour))

		_, err := f.service.CreateComment(ctx, nil, &model.CreateCommentDTO{PostID: post.ID, Text: "hi"})
		assert.ErrorIs(t, err, custom_errors.ErrUnauthenticated)
	})

	t.Run("draft takes no comments, not even from its author", func(t *testing.T) {
		f := newFixture(t)
		post := f.seedPost(t, 1, false, time.Now().Add(-time.Hour))

		_, err := f.service.CreateComment(ctx, &model.Viewer{ID: 1}, &model.CreateCommentDTO{PostID: post.ID, Text: "hi"})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})

	t.Run("scheduled post takes no comments", func(t *testing.T) {
		f := newFixture(t)
		post := f.seedPost(t, 1, true, time.Now().Add(time.Hour))

		_, err := f.service.CreateComment(ctx, &model.Viewer{ID: 2}, &model.CreateCommentDTO{PostID: post.ID, Text: "hi"})
		assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)
	})
}

func TestListByPost(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	post := f.seedPost(t, 1, true, time.Now().Add(-time.Hour))

	for _, text := range []string{"first", "second", "third"} {
		_, err := f.commentRepo.Create(ctx, &model.Comment{PostID: post.ID, AuthorID: 2, Text: text})
		require.NoError(t, err)
	}

	comments, err := f.service.ListByPost(ctx, nil, post.ID)
	require.NoError(t, err)
	require.Len(t, comments, 3)

	// Oldest first, the order a thread reads in.
	assert.Equal(t, "first", comments[0].Text)
	assert.Equal(t, "second", comments[1].Text)
	assert.Equal(t, "third", comments[2].Text)
}

func TestUpdateComment_OnlyAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	post := f.seedPost(t, 1, true, time.Now().Add(-time.Hour))

	comment, err := f.commentRepo.Create(ctx, &model.Comment{PostID: post.ID, AuthorID: 2, Text: "original"})
	require.NoError(t, err)

	_, err = f.service.UpdateComment(ctx, 3, post.ID, comment.ID, "hijacked")
	assert.ErrorIs(t, err, custom_errors.ErrForbidden)

	_, err = f.service.UpdateComment(ctx, 2, post.ID+1, comment.ID, "wrong post")
	assert.ErrorIs(t, err, custom_errors.ErrCommentNotFound)

	updated, err := f.service.UpdateComment(ctx, 2, post.ID, comment.ID, "edited")
	require.NoError(t, err)
	assert.Equal(t, "edited", updated.Text)
}

func TestDeleteComment_OnlyAuthor(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	post := f.seedPost(t, 1, true, time.Now().Add(-time.Hour))

	comment, err := f.commentRepo.Create(ctx, &model.Comment{PostID: post.ID, AuthorID: 2, Text: "bye"})
	require.NoError(t, err)

	err = f.service.DeleteComment(ctx, 3, post.ID, comment.ID)
	assert.ErrorIs(t, err, custom_errors.ErrForbidden)

	err = f.service.DeleteComment(ctx, 2, post.ID, comment.ID)
	require.NoError(t, err)

	count, err := f.commentRepo.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}
