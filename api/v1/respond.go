package v1

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/models"
	"github.com/superwise-ai/TestGenie/repositories"
)

// currentUser pulls the authenticated identity stored by the auth middleware
func currentUser(c *gin.Context) (models.User, bool) {
	value, exists := c.Get("user")
	if !exists {
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return models.User{}, false
	}

	user, ok := value.(models.User)
	if !ok {
		c.Header("WWW-Authenticate", "Bearer")
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": "Not authenticated"})
		return models.User{}, false
	}

	return user, true
}

// abortValidation rejects a payload that failed binding, before any store access
func abortValidation(c *gin.Context, err error) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"detail": err.Error()})
}

// abortForError maps service errors to status codes. This is the only place
// errors become HTTP responses: ErrNotFound covers both absence and
// ownership mismatch, everything else is a 500 carrying the underlying
// message.
func abortForError(c *gin.Context, err error, notFoundDetail string) {
	if errors.Is(err, repositories.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"detail": notFoundDetail})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"detail": err.Error()})
}
