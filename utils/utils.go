package utils

import (
	"Drawr/models/postgres"
	"log"
	"time"

	"gorm.io/gorm"

	"github.com/gin-gonic/gin"
)

// Logger logs method, path, status and latency for each request
func Logger() gin.HandlerFunc {
	return func(c *gin.Context) {
		startTime := time.Now()

		// Process request
		c.Next()

		latency := time.Since(startTime)
		log.Printf("[HTTP] %s %s -> %d (%s)",
			c.Request.Method, c.Request.URL.Path, c.Writer.Status(), latency)
	}
}

// ErrorHandler handles global errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		for _, err := range c.Errors {
			log.Printf("[HTTP-ERROR] %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		}
	}
}

// UserIcon returns the avatar icon of the user, falling back to the
// default icon when the profile cannot be read
func UserIcon(db *gorm.DB, username string) int {
	var icon int
	err := db.Model(&postgres.GameProfile{}).
		Select("user_icon").
		Where("username = ?", username).
		Find(&icon).Error
	if err != nil {
		return 0
	}

	return icon
}
