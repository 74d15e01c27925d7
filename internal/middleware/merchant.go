package middleware

import (
	"net/http"                        // HTTP status codes
	"paycoin_backend/internal/domain" // Importing domain models

	"github.com/gin-gonic/gin" // Gin web framework
)

// MerchantOnlyMiddleware gates endpoints reserved for merchant accounts.
// It expects JWTAuthMiddleware to have loaded the caller already.
func MerchantOnlyMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c) // Get the authenticated user from context
		// Check that the auth middleware ran
		if user == nil {
			// If not, abort with unauthorized status
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Check if the caller is a merchant
		if user.UserType != domain.UserTypeMerchant {
			// If not merchant, abort with forbidden status
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "Merchant access required"})
			return
		}
		// If merchant, proceed to the next handler
		c.Next()
	}
}
