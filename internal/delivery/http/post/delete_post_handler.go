package post_http

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/middleware"
)

type PostDeleter interface {
	DeletePost(ctx context.Context, userID int64, id int64) error
}

type DeletePostHandler struct {
	postService PostDeleter
}

func NewDeletePostHandler(postService PostDeleter) *DeletePostHandler {
	return &DeletePostHandler{postService: postService}
}

func (h *DeletePostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	viewer := middleware.GetViewer(c)

	if err := h.postService.DeletePost(c.Request.Context(), viewer.ID, id); err != nil {
		if errors.Is(err, custom_errors.ErrForbidden) {
			response.RedirectToPost(c, id)
			return
		}
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
