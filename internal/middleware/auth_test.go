package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"blogicum-service/internal/middleware"
	"blogicum-service/internal/model"
)

func viewerProbe() (*gin.Engine, *[]*model.Viewer) {
	gin.SetMode(gin.TestMode)
	var seen []*model.Viewer
	router := gin.New()
	router.Use(middleware.ViewerExtractor())
	router.GET("/probe", func(c *gin.Context) {
		seen = append(seen, middleware.GetViewer(c))
		c.Status(http.StatusOK)
	})
	return router, &seen
}

func TestViewerExtractor(t *testing.T) {
	t.Run("full identity", func(t *testing.T) {
		router, seen := viewerProbe()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-Id", "42")
		req.Header.Set("X-User-Name", "writer")
		req.Header.Set("X-User-Admin", "true")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Len(t, *seen, 1)
		viewer := (*seen)[0]
		require.NotNil(t, viewer)
		assert.Equal(t, int64(42), viewer.ID)
		assert.Equal(t, "writer", viewer.Username)
		assert.True(t, viewer.IsAdmin)
	})

	t.Run("no headers means anonymous", func(t *testing.T) {
		router, seen := viewerProbe()

		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/probe", nil))

		require.Len(t, *seen, 1)
		assert.Nil(t, (*seen)[0])
	})

	t.Run("malformed id downgrades to anonymous", func(t *testing.T) {
		router, seen := viewerProbe()

		req := httptest.NewRequest(http.MethodGet, "/probe", nil)
		req.Header.Set("X-User-Id", "not-a-number")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		require.Len(t, *seen, 1)
		assert.Nil(t, (*seen)[0])
	})
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(middleware.ViewerExtractor())
	router.GET("/admin/probe", middleware.RequireAuth(), middleware.RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	t.Run("admin passes", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/probe", nil)
		req.Header.Set("X-User-Id", "1")
		req.Header.Set("X-User-Admin", "true")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("regular user is forbidden", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/admin/probe", nil)
		req.Header.Set("X-User-Id", "1")

		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("anonymous is sent to login", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/admin/probe", nil))
		assert.Equal(t, http.StatusSeeOther, w.Code)
		assert.Equal(t, "/auth/login", w.Header().Get("Location"))
	})
}
