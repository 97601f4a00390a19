package comment_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type CommentUpdater interface {
	UpdateComment(ctx context.Context, userID int64, postID int64, commentID int64, text string) (*model.Comment, error)
}

type UpdateCommentHandler struct {
	commentService CommentUpdater
	validate       *validator.Validate
}

func NewUpdateCommentHandler(commentService CommentUpdater, validate *validator.Validate) *UpdateCommentHandler {
	return &UpdateCommentHandler{
		commentService: commentService,
		validate:       validate,
	}
}

type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

func (h *UpdateCommentHandler) Handle(c *gin.Context) {
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

	var req UpdateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := middleware.GetViewer(c)

	updated, err := h.commentService.UpdateComment(c.Request.Context(), viewer.ID, postID, commentID, req.Text)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewComment(updated))
}
