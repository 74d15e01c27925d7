package api

import (
	"net/http" // HTTP status codes
	"time"     // Server timestamp

	"github.com/gin-gonic/gin" // Gin web framework
)

// HealthHandler is the liveness probe, returning status and server time
func HealthHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",                              // Liveness status
			"timestamp": time.Now().UTC().Format(time.RFC3339), // Server timestamp
		})
	}
}
