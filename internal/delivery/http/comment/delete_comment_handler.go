package comment_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/middleware"
)

type CommentDeleter interface {
	DeleteComment(ctx context.Context, userID int64, postID int64, commentID int64) error
}

type DeleteCommentHandler struct {
	commentService CommentDeleter
}

func NewDeleteCommentHandler(commentService CommentDeleter) *DeleteCommentHandler {
	return &DeleteCommentHandler{commentService: commentService}
}

func (h *DeleteCommentHandler) Handle(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}
	commentID, err := strconv.ParseInt(c.Param("comment_id"), 10, 64)
	if err != nil || commentID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid comment id"})
		return
	}

	viewer := middleware.GetViewer(c)

	if err := h.commentService.DeleteComment(c.Request.Context(), viewer.ID, postID, commentID); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
