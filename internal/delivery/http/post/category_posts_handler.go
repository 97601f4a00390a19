package post_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type CategoryPostsLister interface {
	GetCategoryBySlug(ctx context.Context, slug string) (*model.Category, error)
	ListPosts(ctx context.Context, viewer *model.Viewer, scope model.ListScope, page int) (*model.PostPage, error)
}

type CategoryPostsHandler struct {
	postService CategoryPostsLister
}

func NewCategoryPostsHandler(postService CategoryPostsLister) *CategoryPostsHandler {
	return &CategoryPostsHandler{postService: postService}
}

type CategoryPostsResponse struct {
	Category *view.Category `json:"category"`
	Posts    *view.PostPage `json:"posts"`
}

func (h *CategoryPostsHandler) Handle(c *gin.Context) {
	slug := c.Param("slug")

	category, err := h.postService.GetCategoryBySlug(c.Request.Context(), slug)
	if err != nil {
		response.Error(c, err)
		return
	}

	viewer := middleware.GetViewer(c)
	scope := model.ListScope{CategoryID: &category.ID}

	posts, err := h.postService.ListPosts(c.Request.Context(), viewer, scope, pageParam(c))
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, CategoryPostsResponse{
		Category: view.NewCategory(category),
		Posts:    view.NewPostPage(posts),
	})
}
