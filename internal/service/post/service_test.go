package post_service_test

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
	location_memory "blogicum-service/internal/repository/location/memory"
	"blogicum-service/internal/repository/memory"
	post_memory "blogicum-service/internal/repository/post/memory"
	user_memory "blogicum-service/internal/repository/user/memory"
	post_service "blogicum-service/internal/service/post"
)

type fixture struct {
	postRepo     *post_memory.PostRepository
	categoryRepo *category_memory.CategoryRepository
	locationRepo *location_memory.LocationRepository
	commentRepo  *comment_memory.CommentRepository
	userRepo     *user_memory.UserRepository
	service      *post_service.PostService
}

func newFixture(t *testing.T, pageSize int) *fixture {
	t.Helper()
	log := logger.New("test")

	postRepo := post_memory.NewPostRepository(log)
	categoryRepo := category_memory.NewCategoryRepository(log)
	locationRepo := location_memory.NewLocationRepository(log)
	commentRepo := comment_memory.NewCommentRepository(log)
	userRepo := user_memory.NewUserRepository(log)

	uow := &memory.UnitOfWork{
		Posts:      postRepo,
		Categories: categoryRepo,
		Locations:  locationRepo,
		Comments:   commentRepo,
		Users:      userRepo,
	}

	service := post_service.NewPostService(
		postRepo,
		categoryRepo,
		locationRepo,
		commentRepo,
		userRepo,
		uow,
		log,
		metrics.NewNoopMetricsProvider(),
		pageSize,
	)

	return &fixture{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		commentRepo:  commentRepo,
		userRepo:     userRepo,
		service:      service,
	}
}

func (f *fixture) seedUser(t *testing.T, username string) *model.User {
	t.Helper()
	return f.userRepo.Put(&model.User{Username: username})
}

func (f *fixture) seedCategory(t *testing.T, slug string, published bool) *model.Category {
	t.Helper()
	category, err := f.categoryRepo.Create(context.Background(), &model.Category{
		Title:       slug,
		Slug:        slug,
		Description: "about " + slug,
		IsPublished: published,
	})
	require.NoError(t, err)
	f.postRepo.SetCategoryPublished(category.ID, published)
	return category
}

func (f *fixture) seedPost(t *testing.T, authorID int64, title string, published bool, pubDate time.Time, categoryID *int64) *model.Post {
	t.Helper()
	post, err := f.postRepo.Create(context.Background(), &model.Post{
		AuthorID:    authorID,
		Title:       title,
		Text:        "text of " + title,
		PubDate:     pgtype.Timestamptz{Time: pubDate, Valid: true},
		CategoryID:  categoryID,
		IsPublished: published,
	})
	require.NoError(t, err)
	return post
}

func TestListPosts_VisibilityFiltering(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	author := f.seedUser(t, "writer")
	published := f.seedCategory(t, "travel", true)
	hidden := f.seedCategory(t, "secret", false)

	past := time.Now().Add(-time.Hour)
	future := time.Now().Add(time.Hour)

	visible := f.seedPost(t, author.ID, "visible", true, past, &published.ID)
	f.seedPost(t, author.ID, "draft", false, past, &published.ID)
	f.seedPost(t, author.ID, "scheduled", true, future, &published.ID)
	f.seedPost(t, author.ID, "hidden category", true, past, &hidden.ID)
	f.seedPost(t, author.ID, "no category", true, past, nil)

	t.Run("anonymous sees only the public post", func(t *testing.T) {
		page, err := f.service.ListPosts(ctx, nil, model.ListScope{}, 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, visible.ID, page.Items[0].Post.ID)
		assert.Equal(t, 1, page.TotalItems)
	})

	t.Run("stranger sees the same as anonymous", func(t *testing.T) {
		page, err := f.service.ListPosts(ctx, &model.Viewer{ID: author.ID + 1}, model.ListScope{}, 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
	})

	t.Run("author sees all of their posts", func(t *testing.T) {
		page, err := f.service.ListPosts(ctx, &model.Viewer{ID: author.ID}, model.ListScope{}, 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 5)
	})
}

func TestListPosts_OrderingAndCommentCounts(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	author := f.seedUser(t, "writer")
	commenter := f.seedUser(t, "reader")
	category := f.seedCategory(t, "life", true)

	base := time.Now().Add(-24 * time.Hour)
	older := f.seedPost(t, author.ID, "older", true, base.Add(-time.Hour), &category.ID)
	tieB := f.seedPost(t, author.ID, "banana", true, base, &category.ID)
	tieA := f.seedPost(t, author.ID, "apple", true, base, &category.ID)

	for i := 0; i < 3; i++ {
		_, err := f.commentRepo.Create(ctx, &model.Comment{
			PostID:   older.ID,
			AuthorID: commenter.ID,
			Text:     "nice",
		})
		require.NoError(t, err)
	}

	page, err := f.service.ListPosts(ctx, nil, model.ListScope{}, 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	// Newest first; same pub_date breaks ties by title.
	assert.Equal(t, tieA.ID, page.Items[0].Post.ID)
	assert.Equal(t, tieB.ID, page.Items[1].Post.ID)
	assert.Equal(t, older.ID, page.Items[2].Post.ID)

	assert.Equal(t, int64(0), page.Items[0].Post.CommentCount)
	assert.Equal(t, int64(3), page.Items[2].Post.CommentCount)
	assert.Equal(t, "writer", page.Items[0].Author.Username)
}

func TestListPosts_PaginationClamping(t *testing.T) {
	f := newFixture(t, 2)
	ctx := context.Background()

	author := f.seedUser(t, "writer")
	category := f.seedCategory(t, "life", true)

	base := time.Now().Add(-24 * time.Hour)
	for i := 0; i < 5; i++ {
		f.seedPost(t, author.ID, string(rune('a'+i)), true, base.Add(time.Duration(i)*time.Minute), &category.ID)
	}

	t.Run("page beyond the end clamps to the last page", func(t *testing.T) {
		page, err := f.service.ListPosts(ctx, nil, model.ListScope{}, 99)
		require.NoError(t, err)
		assert.Equal(t, 3, page.Page)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Items, 1)
		assert.False(t, page.HasNext)
		assert.True(t, page.HasPrev)
	})

	t.Run("page zero clamps to the first page", func(t *testing.T) {
		page, err := f.service.ListPosts(ctx, nil, model.ListScope{}, 0)
		require.NoError(t, err)
		assert.Equal(t, 1, page.Page)
		assert.Len(t, page.Items, 2)
		assert.True(t, page.HasNext)
		assert.False(t, page.HasPrev)
	})
}

func TestListPosts_Scopes(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	writer := f.seedUser(t, "writer")
	other := f.seedUser(t, "other")
	travel := f.seedCategory(t, "travel", true)
	life := f.seedCategory(t, "life", true)
	hidden := f.seedCategory(t, "secret", false)

	past := time.Now().Add(-time.Hour)
	f.seedPost(t, writer.ID, "travel post", true, past, &travel.ID)
	f.seedPost(t, other.ID, "life post", true, past, &life.ID)
	f.seedPost(t, writer.ID, "writer draft", false, past, &travel.ID)

	t.Run("category scope filters by category", func(t *testing.T) {
		page, err := f.service.ListPosts(ctx, nil, model.ListScope{CategoryID: &travel.ID}, 1)
		require.NoError(t, err)
		require.Len(t, page.Items, 1)
		assert.Equal(t, "travel post", page.Items[0].Post.Title)
	})

	t.Run("unpublished category scope is not found", func(t *testing.T) {
		_, err := f.service.ListPosts(ctx, nil, model.ListScope{CategoryID: &hidden.ID}, 1)
		assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
	})

	t.Run("own profile includes drafts", func(t *testing.T) {
		username := "writer"
		page, err := f.service.ListPosts(ctx, &model.Viewer{ID: writer.ID}, model.ListScope{AuthorUsername: &username}, 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 2)
	})

	t.Run("foreign profile hides drafts", func(t *testing.T) {
		username := "writer"
		page, err := f.service.ListPosts(ctx, &model.Viewer{ID: other.ID}, model.ListScope{AuthorUsername: &username}, 1)
		require.NoError(t, err)
		assert.Len(t, page.Items, 1)
	})

	t.Run("unknown profile is not found", func(t *testing.T) {
		username := "nobody"
		_, err := f.service.ListPosts(ctx, nil, model.ListScope{AuthorUsername: &username}, 1)
		assert.ErrorIs(t, err, custom_errors.ErrUserNotFound)
	})
}

func TestGetPostByID_HiddenBehavesLikeMissing(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	author := f.seedUser(t, "writer")
	category := f.seedCategory(t, "life", true)
	draft := f.seedPost(t, author.ID, "draft", false, time.Now().Add(-time.Hour), &category.ID)

	_, err := f.service.GetPostByID(ctx, nil, draft.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	_, err = f.service.GetPostByID(ctx, &model.Viewer{ID: author.ID + 1}, draft.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	got, err := f.service.GetPostByID(ctx, &model.Viewer{ID: author.ID}, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, got.Post.ID)
	assert.Equal(t, "writer", got.Author.Username)
}

func TestUpdatePost_OnlyAuthor(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	author := f.seedUser(t, "writer")
	category := f.seedCategory(t, "life", true)
	post := f.seedPost(t, author.ID, "mine", true, time.Now().Add(-time.Hour), &category.ID)

	newTitle := "renamed"
	err := f.service.UpdatePost(ctx, author.ID+1, post.ID, &model.UpdatePostDTO{Title: &newTitle})
	assert.ErrorIs(t, err, custom_errors.ErrForbidden)

	err = f.service.UpdatePost(ctx, author.ID, post.ID, &model.UpdatePostDTO{Title: &newTitle})
	require.NoError(t, err)

	updated, err := f.postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "renamed", updated.Title)
}

func TestDeletePost_CascadesComments(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	author := f.seedUser(t, "writer")
	commenter := f.seedUser(t, "reader")
	category := f.seedCategory(t, "life", true)
	post := f.seedPost(t, author.ID, "mine", true, time.Now().Add(-time.Hour), &category.ID)

	for i := 0; i < 2; i++ {
		_, err := f.commentRepo.Create(ctx, &model.Comment{PostID: post.ID, AuthorID: commenter.ID, Text: "hi"})
		require.NoError(t, err)
	}

	err := f.service.DeletePost(ctx, commenter.ID, post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrForbidden)

	err = f.service.DeletePost(ctx, author.ID, post.ID)
	require.NoError(t, err)

	_, err = f.postRepo.GetByID(ctx, post.ID)
	assert.ErrorIs(t, err, custom_errors.ErrPostNotFound)

	count, err := f.commentRepo.CountByPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(0), count)
}

func TestGetCategoryBySlug(t *testing.T) {
	f := newFixture(t, 10)
	ctx := context.Background()

	f.seedCategory(t, "travel", true)
	f.seedCategory(t, "secret", false)

	category, err := f.service.GetCategoryBySlug(ctx, "travel")
	require.NoError(t, err)
	assert.Equal(t, "travel", category.Slug)

	_, err = f.service.GetCategoryBySlug(ctx, "secret")
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)

	_, err = f.service.GetCategoryBySlug(ctx, "missing")
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
}
