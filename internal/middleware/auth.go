package middleware

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/model"
)

// Identity headers set by the authenticating gateway in front of this
// service. Requests without them are treated as anonymous.
const (
	HeaderUserID    = "X-User-Id"
	HeaderUsername  = "X-User-Name"
	HeaderUserAdmin = "X-User-Admin"

	viewerContextKey = "viewer"
	loginURL         = "/auth/login"
)

// ViewerExtractor resolves the acting identity from the gateway headers
// and stores it in the request context. A malformed user id downgrades
// the request to anonymous rather than failing it.
func ViewerExtractor() gin.HandlerFunc {
	return func(c *gin.Context) {
		rawID := c.GetHeader(HeaderUserID)
		if rawID == "" {
			c.Next()
			return
		}

		id, err := strconv.ParseInt(rawID, 10, 64)
		if err != nil || id <= 0 {
			c.Next()
			return
		}

		c.Set(viewerContextKey, &model.Viewer{
			ID:       id,
			Username: c.GetHeader(HeaderUsername),
			IsAdmin:  c.GetHeader(HeaderUserAdmin) == "true",
		})
		c.Next()
	}
}

// GetViewer returns the acting identity, or nil for anonymous requests.
func GetViewer(c *gin.Context) *model.Viewer {
	v, ok := c.Get(viewerContextKey)
	if !ok {
		return nil
	}
	viewer, ok := v.(*model.Viewer)
	if !ok {
		return nil
	}
	return viewer
}

// RequireAuth sends anonymous requests to the login page, mirroring how
// a browser-facing blog bounces unauthenticated writers.
func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if GetViewer(c) == nil {
			c.Redirect(http.StatusSeeOther, loginURL)
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireAdmin guards the taxonomy management surface.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		viewer := GetViewer(c)
		if viewer == nil || !viewer.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin access required"})
			return
		}
		c.Next()
	}
}
