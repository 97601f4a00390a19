package post_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type PostLister interface {
	ListPosts(ctx context.Context, viewer *model.Viewer, scope model.ListScope, page int) (*model.PostPage, error)
}

type ListPostsHandler struct {
	postService PostLister
}

func NewListPostsHandler(postService PostLister) *ListPostsHandler {
	return &ListPostsHandler{postService: postService}
}

// pageParam parses ?page=; anything unparseable falls back to the first
// page, and out-of-range values are clamped downstream.
func pageParam(c *gin.Context) int {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		return 1
	}
	return page
}

func (h *ListPostsHandler) Handle(c *gin.Context) {
	viewer := middleware.GetViewer(c)

	posts, err := h.postService.ListPosts(c.Request.Context(), viewer, model.ListScope{}, pageParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewPostPage(posts))
}
