package post_http_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"blogicum-service/internal/custom_errors"
	post_http "blogicum-service/internal/delivery/http/post"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
	mockcomment "blogicum-service/mocks/comment"
	mockpost "blogicum-service/mocks/post"
)

func performGet(mockPostService *mockpost.Service, mockCommentService *mockcomment.Service, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ViewerExtractor())

	handler := post_http.NewGetPostHandler(mockPostService, mockCommentService)
	router.GET("/posts/:id", handler.Handle)

	req := httptest.NewRequest(http.MethodGet, target, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGetPostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		mockCommentService := new(mockcomment.Service)

		detailed := &model.PostDetailed{
			Post: &model.Post{
				ID:          456,
				AuthorID:    123,
				Title:       "a post",
				Text:        "body",
				PubDate:     pgtype.Timestamptz{Time: time.Now().Add(-time.Hour), Valid: true},
				IsPublished: true,
			},
			Author:   &model.User{ID: 123, Username: "writer"},
			Category: &model.Category{ID: 7, Title: "Life", Slug: "life", IsPublished: true},
		}
		comments := []*model.Comment{
			{ID: 1, PostID: 456, AuthorID: 9, Text: "first", CreatedAt: pgtype.Timestamptz{Time: time.Now(), Valid: true}},
		}

		mockPostService.On("GetPostByID", mock.Anything, (*model.Viewer)(nil), int64(456)).Return(detailed, nil)
		mockCommentService.On("ListByPost", mock.Anything, (*model.Viewer)(nil), int64(456)).Return(comments, nil)

		w := performGet(mockPostService, mockCommentService, "/posts/456")

		require.Equal(t, http.StatusOK, w.Code)

		var body struct {
			ID       int64  `json:"id"`
			Title    string `json:"title"`
			Author   struct {
				Username string `json:"username"`
			} `json:"author"`
			Comments []struct {
				Text string `json:"text"`
			} `json:"comments"`
		}
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
		assert.Equal(t, int64(456), body.ID)
		assert.Equal(t, "a post", body.Title)
		assert.Equal(t, "writer", body.Author.Username)
		require.Len(t, body.Comments, 1)
		assert.Equal(t, "first", body.Comments[0].Text)
	})

	t.Run("HiddenPostIsNotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		mockCommentService := new(mockcomment.Service)

		mockPostService.On("GetPostByID", mock.Anything, (*model.Viewer)(nil), int64(456)).
			Return(nil, custom_errors.ErrPostNotFound)

		w := performGet(mockPostService, mockCommentService, "/posts/456")

		assert.Equal(t, http.StatusNotFound, w.Code)
		mockCommentService.AssertNotCalled(t, "ListByPost")
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		mockCommentService := new(mockcomment.Service)

		w := performGet(mockPostService, mockCommentService, "/posts/zero")

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
