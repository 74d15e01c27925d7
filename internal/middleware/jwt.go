package middleware

import (
	"net/http"                       // HTTP status codes
	"strings"                        // String manipulation
	"paycoin_backend/internal/domain" // Importing domain models
	"paycoin_backend/internal/utils"  // JWT utility functions

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Context keys set by the auth middleware
const (
	ContextUserKey   = "currentUser" // *domain.User of the authenticated caller
	ContextUserIDKey = "userID"      // ID of the authenticated caller
)

// JWTAuthMiddleware validates bearer tokens and loads the authenticated user.
// A token whose subject no longer resolves to a user row is rejected.
func JWTAuthMiddleware(db *gorm.DB, secret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization") // Get Authorization header
		// Check if the Authorization header is present and properly formatted
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Missing or invalid Authorization header"})
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ") // Extract the token string and parse it
		userID, err := utils.ParseJWT(tokenStr, secret)       // Parse the JWT token
		if err != nil {
			// If parsing fails, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		var user domain.User // Resolve the subject to an existing user
		if err := db.First(&user, "id = ?", userID).Error; err != nil {
			// Subject does not resolve, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			return
		}
		c.Set(ContextUserKey, &user)   // Store the user record in context
		c.Set(ContextUserIDKey, user.ID) // Store userID in context
		c.Next()                       // Proceed to the next handler
	}
}

// CurrentUser returns the authenticated user stored by JWTAuthMiddleware
func CurrentUser(c *gin.Context) *domain.User {
	v, ok := c.Get(ContextUserKey)
	if !ok {
		return nil // Route was not behind the auth middleware
	}
	user, _ := v.(*domain.User)
	return user
}
