package post_service_test

import (
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"

	"blogicum-service/internal/model"
	post_service "blogicum-service/internal/service/post"
)

func makePost(authorID int64, published bool, pubDate time.Time, categoryID *int64) *model.Post {
	return &model.Post{
		ID:          1,
		AuthorID:    authorID,
		Title:       "title",
		Text:        "text",
		PubDate:     pgtype.Timestamptz{Time: pubDate, Valid: true},
		CategoryID:  categoryID,
		IsPublished: published,
	}
}

func TestIsVisible(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Hour)
	future := now.Add(time.Hour)
	catID := int64(7)

	publishedCategory := &model.Category{ID: catID, IsPublished: true}
	hiddenCategory := &model.Category{ID: catID, IsPublished: false}
	author := &model.Viewer{ID: 42}
	stranger := &model.Viewer{ID: 99}

	tests := []struct {
		name     string
		post     *model.Post
		category *model.Category
		viewer   *model.Viewer
		want     bool
	}{
		{
			name:     "published post in published category",
			post:     makePost(42, true, past, &catID),
			category: publishedCategory,
			viewer:   nil,
			want:     true,
		},
		{
			name:     "draft hidden from anonymous",
			post:     makePost(42, false, past, &catID),
			category: publishedCategory,
			viewer:   nil,
			want:     false,
		},
		{
			name:     "draft hidden from stranger",
			post:     makePost(42, false, past, &catID),
			category: publishedCategory,
			viewer:   stranger,
			want:     false,
		},
		{
			name:     "draft visible to author",
			post:     makePost(42, false, past, &catID),
			category: publishedCategory,
			viewer:   author,
			want:     true,
		},
		{
			name:     "future pub_date hidden from stranger",
			post:     makePost(42, true, future, &catID),
			category: publishedCategory,
			viewer:   stranger,
			want:     false,
		},
		{
			name:     "future pub_date visible to author",
			post:     makePost(42, true, future, &catID),
			category: publishedCategory,
			viewer:   author,
			want:     true,
		},
		{
			name:     "unpublished category hides post",
			post:     makePost(42, true, past, &catID),
			category: hiddenCategory,
			viewer:   stranger,
			want:     false,
		},
		{
			name:     "nil category hides post from everyone but author",
			post:     makePost(42, true, past, nil),
			category: nil,
			viewer:   stranger,
			want:     false,
		},
		{
			name:     "nil category still visible to author",
			post:     makePost(42, true, past, nil),
			category: nil,
			viewer:   author,
			want:     true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, post_service.IsVisible(tt.post, tt.category, tt.viewer))
		})
	}
}

func TestCanMutate(t *testing.T) {
	assert.True(t, post_service.CanMutate(42, &model.Viewer{ID: 42}))
	assert.False(t, post_service.CanMutate(42, &model.Viewer{ID: 99}))
	assert.False(t, post_service.CanMutate(42, nil))
}
