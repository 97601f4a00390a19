package profile_http

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/delivery/http/response"
	"blogicum-service/internal/delivery/http/view"
	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

type ProfileUpdater interface {
	UpdateProfile(ctx context.Context, userID int64, username string, update *model.UpdateProfileDTO) (*model.User, error)
}

type UpdateProfileHandler struct {
	profileService ProfileUpdater
	validate       *validator.Validate
}

func NewUpdateProfileHandler(profileService ProfileUpdater, validate *validator.Validate) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		profileService: profileService,
		validate:       validate,
	}
}

type UpdateProfileRequest struct {
	Username  *string `json:"username" validate:"omitempty,min=3,max=150"`
	FirstName *string `json:"first_name" validate:"omitempty,max=150"`
	LastName  *string `json:"last_name" validate:"omitempty,max=150"`
	Email     *string `json:"email" validate:"omitempty,email"`
}

func (h *UpdateProfileHandler) Handle(c *gin.Context) {
	username := c.Param("username")

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}
	if err := h.validate.Struct(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	viewer := middleware.GetViewer(c)

	updated, err := h.profileService.UpdateProfile(c.Request.Context(), viewer.ID, username, &model.UpdateProfileDTO{
		Username:  req.Username,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
	})
	if err != nil {
		response.Error(c, err)
		return
	}

	c.JSON(http.StatusOK, view.NewUser(updated))
}
