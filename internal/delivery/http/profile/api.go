package profile_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/logger"
	post_service "blogicum-service/internal/service/post"
	profile_service "blogicum-service/internal/service/profile"
)

var validate = validator.New()

type ProfileHTTPService struct {
	log                  *logger.Logger
	getProfileHandler    *GetProfileHandler
	updateProfileHandler *UpdateProfileHandler
}

func NewProfileHTTPService(profileService profile_service.Service, postService post_service.Service, log *logger.Logger) *ProfileHTTPService {
	return &ProfileHTTPService{
		log:                  log,
		getProfileHandler:    NewGetProfileHandler(profileService, postService),
		updateProfileHandler: NewUpdateProfileHandler(profileService, validate),
	}
}

func (s *ProfileHTTPService) RegisterPublic(g *gin.RouterGroup) {
	g.GET("/profile/:username", s.getProfileHandler.Handle)
}

func (s *ProfileHTTPService) RegisterAuthenticated(g *gin.RouterGroup) {
	g.PATCH("/profile/:username", s.updateProfileHandler.Handle)
}
