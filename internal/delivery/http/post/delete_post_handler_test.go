package post_http_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"blogicum-service/internal/custom_errors"
	post_http "blogicum-service/internal/delivery/http/post"
	"blogicum-service/internal/middleware"
	mockpost "blogicum-service/mocks/post"
)

func performDelete(mockPostService *mockpost.Service, userID string, target string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ViewerExtractor())

	handler := post_http.NewDeletePostHandler(mockPostService)
	router.DELETE("/posts/:id", middleware.RequireAuth(), handler.Handle)

	req := httptest.NewRequest(http.MethodDelete, target, nil)
	if userID != "" {
		req.Header.Set("X-User-Id", userID)
	}

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestDeletePostHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		mockPostService.On("DeletePost", mock.Anything, int64(123), int64(456)).Return(nil)

		w := performDelete(mockPostService, "123", "/posts/456")

		assert.Equal(t, http.StatusNoContent, w.Code)
		mockPostService.AssertExpectations(t)
	})

	t.Run("AnonymousRedirectedToLogin", func(t *testing.T) {
		mockPostService := new(mockpost.Service)

		w := performDelete(mockPostService, "", "/posts/456")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/auth/login", w.Header().Get("Location"))
		mockPostService.AssertNotCalled(t, "DeletePost")
	})

	t.Run("NotAuthorRedirectedToPost", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		mockPostService.On("DeletePost", mock.Anything, int64(123), int64(456)).Return(custom_errors.ErrForbidden)

		w := performDelete(mockPostService, "123", "/posts/456")

		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/posts/456", w.Header().Get("Location"))
		mockPostService.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		mockPostService := new(mockpost.Service)
		mockPostService.On("DeletePost", mock.Anything, int64(123), int64(456)).Return(custom_errors.ErrPostNotFound)

		w := performDelete(mockPostService, "123", "/posts/456")

		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("InvalidID", func(t *testing.T) {
		mockPostService := new(mockpost.Service)

		w := performDelete(mockPostService, "123", "/posts/abc")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		mockPostService.AssertNotCalled(t, "DeletePost")
	})
}
