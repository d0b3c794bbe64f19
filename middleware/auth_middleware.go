package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/superwise-ai/TestGenie/auth"
	"github.com/superwise-ai/TestGenie/services"
)

// AuthMiddleware authenticates bearer tokens and stores the resolved user
// in the request context. Any failure aborts with 401 and a
// WWW-Authenticate challenge.
func AuthMiddleware(authService *services.AuthService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			unauthorized(c, "Could not validate credentials")
			return
		}

		user, err := authService.Authenticate(token)
		if err != nil {
			if errors.Is(err, auth.ErrUnknownIdentity) {
				unauthorized(c, "User not found")
				return
			}
			unauthorized(c, "Could not validate credentials")
			return
		}

		c.Set("user", user)
		c.Next()
	}
}

func unauthorized(c *gin.Context, detail string) {
	c.Header("WWW-Authenticate", "Bearer")
	c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"detail": detail})
}
