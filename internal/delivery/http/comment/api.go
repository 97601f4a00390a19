package comment_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/logger"
	comment_service "blogicum-service/internal/service/comment"
)

var validate = validator.New()

type CommentHTTPService struct {
	log                  *logger.Logger
	createCommentHandler *CreateCommentHandler
	updateCommentHandler *UpdateCommentHandler
	deleteCommentHandler *DeleteCommentHandler
}

func NewCommentHTTPService(commentService comment_service.Service, log *logger.Logger) *CommentHTTPService {
	return &CommentHTTPService{
		log:                  log,
		createCommentHandler: NewCreateCommentHandler(commentService, validate),
		updateCommentHandler: NewUpdateCommentHandler(commentService, validate),
		deleteCommentHandler: NewDeleteCommentHandler(commentService),
	}
}

func (s *CommentHTTPService) RegisterAuthenticated(g *gin.RouterGroup) {
	g.POST("/posts/:id/comments", s.createCommentHandler.Handle)
	g.PATCH("/posts/:id/comments/:comment_id", s.updateCommentHandler.Handle)
	g.DELETE("/posts/:id/comments/:comment_id", s.deleteCommentHandler.Handle)
}
