package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthRequired is a simple middleware to check the JWT on protected routes.
// The authenticated email is stored in the gin context for handlers.
func AuthRequired(c *gin.Context) {
	email, err := JWT_decoder(c)
	if err != nil {
		// Abort the request with the appropriate error code
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
		return
	}
	c.Set("email", email)
	// Continue down the chain to handler etc
	c.Next()
}
