package comment_http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogicum-service/internal/custom_errors"
	comment_http "blogicum-service/internal/delivery/http/comment"
	"blogicum-service/internal/middleware"
	mockcomment "blogicum-service/mocks/comment"
)

func performDelete(mockCommentService *mockcomment.Service, userID string, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ViewerExtractor())

	handler := comment_http.NewDeleteCommentHandler(mockCommentService)
	router.DELETE("/posts/:id/comments/:comment_id", middleware.RequireAuth(), handler.Handle)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDeleteCommentHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockCommentService := new(mockcomment.Service)
		mockCommentService.On("DeleteComment", mock.Anything, int64(9), int64(456), int64(7)).Return(nil)

		w := performDelete(mockCommentService, "9", "/posts/456/comments/7")

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockCommentService.AssertExpectations(t)
	})

	t.Run("NotAuthorGetsForbidden", func(t *testing.T) {
		mockCommentService := new(mockcomment.Service)
		mockCommentService.On("DeleteComment", mock.Anything, int64(9), int64(456), int64(7)).
			Return(custom_errors.ErrForbidden)

		w := performDelete(mockCommentService, "9", "/posts/456/comments/7")

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("AnonymousRedirectedToLogin", func(t *testing.T) {
		mockCommentService := new(mockcomment.Service)

		w := performDelete(mockCommentService, "", "/posts/456/comments/7")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/auth/login", w.Header().Get("Location"))
		mockCommentService.AssertNotCalled(t, "DeleteComment")
	})

	t.Run("CommentInAnotherPostIsNotFound", func(t *testing.T) {
		mockCommentService := new(mockcomment.Service)
		mockCommentService.On("DeleteComment", mock.Anything, int64(9), int64(456), int64(7)).
			Return(custom_errors.ErrCommentNotFound)

		w := performDelete(mockCommentService, "9", "/posts/456/comments/7")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})
}
