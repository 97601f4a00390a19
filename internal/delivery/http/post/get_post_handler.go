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

type PostGetter interface {
	GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error)
}

type PostCommentsLister interface {
	ListByPost(ctx context.Context, viewer *model.Viewer, postID int64) ([]*model.Comment, error)
}

type GetPostHandler struct {
	postService    PostGetter
	commentService PostCommentsLister
}

func NewGetPostHandler(postService PostGetter, commentService PostCommentsLister) *GetPostHandler {
	return &GetPostHandler{
		postService:    postService,
		commentService: commentService,
	}
}

func (h *GetPostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	viewer := middleware.GetViewer(c)

	post, err := h.postService.GetPostByID(c.Request.Context(), viewer, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	comments, err := h.commentService.ListByPost(c.Request.Context(), viewer, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.PostDetail{
		Post:     *view.NewPost(post),
		Comments: view.NewComments(comments),
	})
}
