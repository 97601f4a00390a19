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

type CategoryManager interface {
	CreateCategory(ctx context.Context, dto *model.CreateCategoryDTO) (*model.Category, error)
	GetCategory(ctx context.Context, id int64) (*model.Category, error)
	UpdateCategory(ctx context.Context, id int64, dto *model.UpdateCategoryDTO) (*model.Category, error)
	DeleteCategory(ctx context.Context, id int64) error
}

type CategoryHandlers struct {
	categoryService CategoryManager
	validate        *validator.Validate
}

func NewCategoryHandlers(categoryService CategoryManager, validate *validator.Validate) *CategoryHandlers {
	return &CategoryHandlers{
		categoryService: categoryService,
		validate:        validate,
	}
}

type CreateCategoryRequest struct {
	Title       string `json:"title" validate:"required,min=1,max=256"`
	Slug        string `json:"slug" validate:"required,min=1,max=64,alphanumunicode|contains=-|contains=_"`
	Description string `json:"description" validate:"required"`
	IsPublished *bool  `json:"is_published"`
}

type UpdateCategoryRequest struct {
	Title       *string `json:"title" validate:"omitempty,min=1,max=256"`
	Slug        *string `json:"slug" validate:"omitempty,min=1,max=64"`
	Description *string `json:"description" validate:"omitempty"`
	IsPublished *bool   `json:"is_published"`
}

func categoryID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category id"})
		return 0, false
	}
	return id, true
}

func (h *CategoryHandlers) Create(c *gin.Context) {
	var req CreateCategoryRequest
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

	created, err := h.categoryService.CreateCategory(c.Request.Context(), &model.CreateCategoryDTO{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		IsPublished: isPublished,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusCreated, view.NewCategory(created))
}

func (h *CategoryHandlers) Get(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}

	category, err := h.categoryService.GetCategory(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewCategory(category))
}

func (h *CategoryHandlers) Update(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}

	var req UpdateCategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	updated, err := h.categoryService.UpdateCategory(c.Request.Context(), id, &model.UpdateCategoryDTO{
		Title:       req.Title,
		Slug:        req.Slug,
		Description: req.Description,
		IsPublished: req.IsPublished,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewCategory(updated))
}

func (h *CategoryHandlers) Delete(c *gin.Context) {
	id, ok := categoryID(c)
	if !ok {
		return
	}

	if err := h.categoryService.DeleteCategory(c.Request.Context(), id); err != nil {
		response.Error(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
