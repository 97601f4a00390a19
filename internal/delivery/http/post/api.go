package post_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/logger"
	comment_service "blogicum-service/internal/service/comment"
	post_service "blogicum-service/internal/service/post"
)

var validate = validator.New()

// PostHTTPService groups the post-facing routes: the feed, the category
// feed, single posts with their comment thread, and the author-only
// mutations.
type PostHTTPService struct {
	log                  *logger.Logger
	createPostHandler    *CreatePostHandler
	getPostHandler       *GetPostHandler
	listPostsHandler     *ListPostsHandler
	categoryPostsHandler *CategoryPostsHandler
	updatePostHandler    *UpdatePostHandler
	deletePostHandler    *DeletePostHandler
}

func NewPostHTTPService(postService post_service.Service, commentService comment_service.Service, log *logger.Logger) *PostHTTPService {
	return &PostHTTPService{
		log:                  log,
		createPostHandler:    NewCreatePostHandler(postService, validate),
		getPostHandler:       NewGetPostHandler(postService, commentService),
		listPostsHandler:     NewListPostsHandler(postService),
		categoryPostsHandler: NewCategoryPostsHandler(postService),
		updatePostHandler:    NewUpdatePostHandler(postService, validate),
		deletePostHandler:    NewDeletePostHandler(postService),
	}
}

func (s *PostHTTPService) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/", s.listPostsHandler.Handle)
	g.GET("/posts/:id", s.getPostHandler.Handle)
	g.GET("/category/:slug", s.categoryPostsHandler.Handle)
}

func (s *PostHTTPService) RegisterAuthenticated(g *gin.RouterGroup) {
	g.POST("/posts", s.createPostHandler.Handle)
	g.PATCH("/posts/:id", s.updatePostHandler.Handle)
	g.DELETE("/posts/:id", s.deletePostHandler.Handle)
}
