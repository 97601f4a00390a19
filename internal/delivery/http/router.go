package delivery_http

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	admin_http "blogicum-service/internal/delivery/http/admin"
	comment_http "blogicum-service/internal/delivery/http/comment"
	post_http "blogicum-service/internal/delivery/http/post"
	profile_http "blogicum-service/internal/delivery/http/profile"
	"blogicum-service/internal/logger"
	"blogicum-service/internal/metrics"
	"blogicum-service/internal/middleware"
)

// NewRouter assembles the whole HTTP surface. Reads are open to anyone;
// mutations sit behind the login redirect; taxonomy management is
// admin-only.
func NewRouter(
	postHTTP *post_http.PostHTTPService,
	commentHTTP *comment_http.CommentHTTPService,
	profileHTTP *profile_http.ProfileHTTPService,
	adminHTTP *admin_http.AdminHTTPService,
	log *logger.Logger,
	metrics metrics.MetricsProvider,
) *gin.Engine {
	router := gin.New()

	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(log, metrics))
	router.Use(middleware.ViewerExtractor())

	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Accept", "Authorization", "Content-Type", "X-User-Id", "X-User-Name", "X-User-Admin"},
		AllowCredentials: false,
		MaxAge:           300 * time.Second,
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	public := router.Group("")
	{
		postHTTP.RegisterPublic(public)
		profileHTTP.RegisterPublic(public)
	}

	authenticated := router.Group("", middleware.RequireAuth())
	{
		postHTTP.RegisterAuthenticated(authenticated)
		commentHTTP.RegisterAuthenticated(authenticated)
		profileHTTP.RegisterAuthenticated(authenticated)
	}

	admin := router.Group("/admin", middleware.RequireAuth(), middleware.RequireAdmin())
	{
		adminHTTP.RegisterAdmin(admin)
	}

	return router
}
