package admin_http

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/model"
)

type LocationManager interface {
	CreateLocation(ctx context.Context, dto *model.CreateLocationDTO) (*model.Location, error)
	GetLocation(ctx context.Context, id int64) (*model.Location, error)
	UpdateLocation(ctx context.Context, id int64, dto *model.UpdateLocationDTO) (*model.Location, error)
	DeleteLocation(ctx context.Context, id int64) error
}

type LocationHandlers struct {
	categoryService LocationManager
	validate        *validator.Validate
}

func NewLocationHandlers(categoryService LocationManager, validate *validator.Validate) *LocationHandlers {
	return &LocationHandlers{
		categoryService: categoryService,
		validate:        validate,
	}
}

type CreateLocationRequest struct {
	Name        string `json:"name" validate:"required,min=1,max=256"`
	IsPublished *bool  `json:"is_published"`
}

type UpdateLocationRequest struct {
	Name        *string `json:"name" validate:"omitempty,min=1,max=256"`
	IsPublished *bool   `json:"is_published"`
}

func locationID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid location id"})
		return 0, false
	}
	return id, true
}

func (h *LocationHandlers) Create(c *gin.Context) {
	var req CreateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	isPublished := true
	if req.IsPublished != nil {
		isPublished = *req.IsPublished
	}

	created, err := h.categoryService.CreateLocation(c.Request.Context(), &model.CreateLocationDTO{
		Name:        req.Name,
		IsPublished: isPublished,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, location(created))
}

func (h *LocationHandlers) Get(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}

	loc, err := h.categoryService.GetLocation(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, location(loc))
}

func (h *LocationHandlers) Update(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}

	var req UpdateLocationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.categoryService.UpdateLocation(c.Request.Context(), id, &model.UpdateLocationDTO{
		Name:        req.Name,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, location(updated))
}

func (h *LocationHandlers) Delete(c *gin.Context) {
	id, ok := locationID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteLocation(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// location renders the admin view of a location. Unlike the public
// post views, admins see unpublished entries too, so the filtering
// view constructor is not used here.
func location(l *model.Location) *view.Location {
	return &view.Location{
		ID:          l.ID,
		Name:        l.Name,
		IsPublished: l.IsPublished,
	}
}
