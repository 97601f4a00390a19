package admin_http

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"

	"blogicum-service/internal/logger"
	category_service "blogicum-service/internal/service/category"
)

var validate = validator.New()

// AdminHTTPService exposes the taxonomy management surface. The router
// mounts it behind the admin guard; nothing here re-checks identity.
type AdminHTTPService struct {
	log              *logger.Logger
	categoryHandlers *CategoryHandlers
	locationHandlers *LocationHandlers
}

func NewAdminHTTPService(categoryService category_service.Service, log *logger.Logger) *AdminHTTPService {
	return &AdminHTTPService{
		log:              log,
		categoryHandlers: NewCategoryHandlers(categoryService, validate),
		locationHandlers: NewLocationHandlers(categoryService, validate),
	}
}

func (s *AdminHTTPService) RegisterAdmin(g *gin.RouterGroup) {
	g.POST("/categories", s.categoryHandlers.Create)
	g.GET("/categories/:id", s.categoryHandlers.Get)
	g.PATCH("/categories/:id", s.categoryHandlers.Update)
	g.DELETE("/categories/:id", s.categoryHandlers.Delete)

	g.POST("/locations", s.locationHandlers.Create)
	g.GET("/locations/:id", s.locationHandlers.Get)
	g.PATCH("/locations/:id", s.locationHandlers.Update)
	g.DELETE("/locations/:id", s.locationHandlers.Delete)
}
