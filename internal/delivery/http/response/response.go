// Package response maps service errors onto HTTP answers with one
// policy for the whole edge.
package response

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"blogicum-service/internal/custom_errors"
)

// Error answers a failed request. Hidden or missing resources come back
// as 404, ownership violations as 403, duplicate keys as 409; anything
// the services did not classify stays a 500 with a generic message.
func Error(c *gin.Context, err error) {
	switch {
	case errors.Is(err, custom_errors.ErrPostNotFound),
		errors.Is(err, custom_errors.ErrCategoryNotFound),
		errors.Is(err, custom_errors.ErrLocationNotFound),
		errors.Is(err, custom_errors.ErrCommentNotFound),
		errors.Is(err, custom_errors.ErrUserNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrForbidden):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrUnauthenticated):
		c.Redirect(http.StatusSeeOther, "/auth/login")
	case errors.Is(err, custom_errors.ErrValidationFailed),
		errors.Is(err, custom_errors.ErrNoUpdateRows):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, custom_errors.ErrUsernameExists),
		errors.Is(err, custom_errors.ErrCategorySlugExists):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
	}
}

// RedirectToPost bounces a non-author away from another writer's post
// the way the public site does, instead of admitting the post exists
// behind a 403.
func RedirectToPost(c *gin.Context, postID int64) {
	c.Redirect(http.StatusSeeOther, "/posts/"+strconv.FormatInt(postID, 10))
}
