package post_http

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type PostCreator interface {
	CreatePost(ctx context.Context, post *model.CreatePostDTO) (*model.PostDetailed, error)
}

type CreatePostHandler struct {
	postService PostCreator
	validate    *validator.Validate
}

func NewCreatePostHandler(postService PostCreator, validate *validator.Validate) *CreatePostHandler {
	return &CreatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type CreatePostRequest struct {
	Title       string     `json:"title" validate:"required,min=1,max=256"`
	Text        string     `json:"text" validate:"required,min=1"`
	PubDate     *time.Time `json:"pub_date" validate:"omitempty"`
	CategoryID  *int64     `json:"category_id" validate:"omitempty,gt=0"`
	LocationID  *int64     `json:"location_id" validate:"omitempty,gt=0"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	IsPublished *bool      `json:"is_published"`
}

func (h *CreatePostHandler) Handle(c *gin.Context) {
	viewer := middleware.GetViewer(c)

	var req CreatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	// An omitted pub_date means "publish now"; a future one schedules
	// the post, keeping it hidden from everyone but the author.
	pubDate := time.Now()
	if req.PubDate != nil {
		pubDate = *req.PubDate
	}
	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	created, err := h.postService.CreatePost(c.Request.Context(), &model.CreatePostDTO{
		AuthorID:    viewer.ID,
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     pubDate,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		ImageURL:    req.ImageURL,
		IsPublished: isPublished,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.NewPost(created))
}
