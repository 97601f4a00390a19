package category_service_test

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/model"
	category_memory "blogicum-service/internal/repository/category/memory"
	comment_memory "blogicum-service/internal/repository/comment/memory"
	location_memory "blogicum-service/internal/repository/location/memory"
	"blogicum-service/internal/repository/memory"
	post_memory "blogicum-service/internal/repository/post/memory"
	user_memory "blogicum-service/internal/repository/user/memory"
	category_service "blogicum-service/internal/service/category"
)

type fixture struct {
	postRepo     *post_memory.PostRepository
	categoryRepo *category_memory.CategoryRepository
	locationRepo *location_memory.LocationRepository
	service      *category_service.CategoryService
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.New("test")

	postRepo := post_memory.NewPostRepository(log)
	categoryRepo := category_memory.NewCategoryRepository(log)
	locationRepo := location_memory.NewLocationRepository(log)

	uow := &memory.UnitOfWork{
		Posts:      postRepo,
		Categories: categoryRepo,
		Locations:  locationRepo,
		Comments:   comment_memory.NewCommentRepository(log),
		Users:      user_memory.NewUserRepository(log),
	}

	return &fixture{
		postRepo:     postRepo,
		categoryRepo: categoryRepo,
		locationRepo: locationRepo,
		service:      category_service.NewCategoryService(categoryRepo, locationRepo, uow, log),
	}
}

func TestCategoryLifecycle(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	created, err := f.service.CreateCategory(ctx, &model.CreateCategoryDTO{
		Title:       "Travel",
		Slug:        "travel",
		Description: "places",
		IsPublished: true,
	})
	require.NoError(t, err)
	assert.Equal(t, "travel", created.Slug)

	_, err = f.service.CreateCategory(ctx, &model.CreateCategoryDTO{
		Title:       "Travel again",
		Slug:        "travel",
		Description: "dup",
		IsPublished: true,
	})
	assert.ErrorIs(t, err, custom_errors.ErrCategorySlugExists)

	unpublish := false
	updated, err := f.service.UpdateCategory(ctx, created.ID, &model.UpdateCategoryDTO{IsPublished: &unpublish})
	require.NoError(t, err)
	assert.False(t, updated.IsPublished)
}

func TestDeleteCategory_DetachesPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	category, err := f.service.CreateCategory(ctx, &model.CreateCategoryDTO{
		Title:       "Travel",
		Slug:        "travel",
		Description: "places",
		IsPublished: true,
	})
	require.NoError(t, err)

	post, err := f.postRepo.Create(ctx, &model.Post{
		AuthorID:    1,
		Title:       "trip",
		Text:        "text",
		PubDate:     pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
		CategoryID:  &category.ID,
		IsPublished: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteCategory(ctx, category.ID))

	_, err = f.categoryRepo.GetByID(ctx, category.ID)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)

	// The post survives, but without a category.
	detached, err := f.postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.CategoryID)

	err = f.service.DeleteCategory(ctx, category.ID)
	assert.ErrorIs(t, err, custom_errors.ErrCategoryNotFound)
}

func TestDeleteLocation_DetachesPosts(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	location, err := f.service.CreateLocation(ctx, &model.CreateLocationDTO{
		Name:        "North Pole",
		IsPublished: true,
	})
	require.NoError(t, err)

	post, err := f.postRepo.Create(ctx, &model.Post{
		AuthorID:    1,
		Title:       "expedition",
		Text:        "text",
		PubDate:     pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
		LocationID:  &location.ID,
		IsPublished: true,
	})
	require.NoError(t, err)

	require.NoError(t, f.service.DeleteLocation(ctx, location.ID))

	detached, err := f.postRepo.GetByID(ctx, post.ID)
	require.NoError(t, err)
	assert.Nil(t, detached.LocationID)
}

func TestLocationUpdate(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)

	location, err := f.service.CreateLocation(ctx, &model.CreateLocationDTO{Name: "Old name", IsPublished: true})
	require.NoError(t, err)

	name := "New name"
	updated, err := f.service.UpdateLocation(ctx, location.ID, &model.UpdateLocationDTO{Name: &name})
	require.NoError(t, err)
	assert.Equal(t, "New name", updated.Name)

	_, err = f.service.UpdateLocation(ctx, location.ID+100, &model.UpdateLocationDTO{Name: &name})
	assert.ErrorIs(t, err, custom_errors.ErrLocationNotFound)
}
