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

type CommentCreator interface {
	CreateComment(ctx context.Context, viewer *model.Viewer, dto *model.CreateCommentDTO) (*model.Comment, error)
}

type CreateCommentHandler struct {
	commentService CommentCreator
	validate       *validator.Validate
}

func NewCreateCommentHandler(commentService CommentCreator, validate *validator.Validate) *CreateCommentHandler {
	return &CreateCommentHandler{
		commentService: commentService,
		validate:       validate,
	}
}

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required,min=1"`
}

func (h *CreateCommentHandler) Handle(c *gin.Context) {
	postID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || postID <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	var req CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := middleware.GetViewer(c)

	created, err := h.commentService.CreateComment(c.Request.Context(), viewer, &model.CreateCommentDTO{
		PostID: postID,
		Text:   req.Text,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.NewComment(created))
}
