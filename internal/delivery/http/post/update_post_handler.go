package post_http

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/custom_errors"
	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type PostUpdater interface {
	UpdatePost(ctx context.Context, userID int64, id int64, post *model.UpdatePostDTO) error
	GetPostByID(ctx context.Context, viewer *model.Viewer, id int64) (*model.PostDetailed, error)
}

type UpdatePostHandler struct {
	postService PostUpdater
	validate    *validator.Validate
}

func NewUpdatePostHandler(postService PostUpdater, validate *validator.Validate) *UpdatePostHandler {
	return &UpdatePostHandler{
		postService: postService,
		validate:    validate,
	}
}

type UpdatePostRequest struct {
	Title       *string    `json:"title" validate:"omitempty,min=1,max=256"`
	Text        *string    `json:"text" validate:"omitempty,min=1"`
	PubDate     *time.Time `json:"pub_date" validate:"omitempty"`
	CategoryID  *int64     `json:"category_id" validate:"omitempty,gt=0"`
	LocationID  *int64     `json:"location_id" validate:"omitempty,gt=0"`
	ImageURL    *string    `json:"image_url" validate:"omitempty,url"`
	IsPublished *bool      `json:"is_published"`
}

func (h *UpdatePostHandler) Handle(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid post id"})
		return
	}

	viewer := middleware.GetViewer(c)

	var req UpdatePostRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	err = h.postService.UpdatePost(c.Request.Context(), viewer.ID, id, &model.UpdatePostDTO{
		Title:       req.Title,
		Text:        req.Text,
		PubDate:     req.PubDate,
		CategoryID:  req.CategoryID,
		LocationID:  req.LocationID,
		ImageURL:    req.ImageURL,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		// Someone else's post is not theirs to edit; send them back to
		// reading it.
		if errors.Is(err, custom_errors.ErrForbidden) {
			response.RedirectToPost(c, id)
			return
		}
		response.Error(c, err)
		return
	}

	updated, err := h.postService.GetPostByID(c.Request.Context(), viewer, id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewPost(updated))
}
