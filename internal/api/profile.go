package api

import (
	"net/http" // HTTP status codes
	"time"     // Update timestamps

	"paycoin_backend/internal/domain"     // Importing domain models
	"paycoin_backend/internal/middleware" // Authenticated user lookup

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// Request struct for profile updates; only this subset of fields can be written
type UpdateProfileRequest struct {
	Name                string          `json:"name" binding:"required"`        // Display name must be provided
	Phone               string          `json:"phone"`                          // Contact phone
	Address             *domain.Address `json:"address"`                        // Optional address
	BusinessName        string          `json:"business_name"`                  // Merchant only
	BusinessDescription string          `json:"business_description"`           // Merchant only
	BusinessBanner      string          `json:"business_banner"`                // Merchant only
	BusinessCategory    string          `json:"business_category"`              // Merchant only
}

// GetProfileHandler returns the authenticated caller's own record
func GetProfileHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// The password hash is excluded by its json tag
		c.JSON(http.StatusOK, user)
	}
}

// UpdateProfileHandler overwrites the caller's profile sub-document. Other
// users' records are never touched regardless of input.
func UpdateProfileHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			// If not, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req UpdateProfileRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Build the new profile sub-document
		profile := domain.Profile{
			Name:    req.Name,    // Display name
			Phone:   req.Phone,   // Contact phone
			Address: req.Address, // Optional address
		}
		// Business fields only apply to merchant accounts
		if user.UserType == domain.UserTypeMerchant {
			profile.BusinessName = req.BusinessName               // Business name
			profile.BusinessDescription = req.BusinessDescription // Business description
			profile.BusinessBanner = req.BusinessBanner           // Business banner
			profile.BusinessCategory = req.BusinessCategory       // Business category
		}
		now := time.Now().UTC() // Update timestamp
		// Overwrite the profile and mirror name/phone on the flat columns
		updates := map[string]any{
			"profile":    &profile,  // Profile sub-document
			"name":       req.Name,  // Flat name column
			"phone":      req.Phone, // Flat phone column
			"updated_at": &now,      // Bump updated_at
		}
		// Apply the update to the caller's row only
		if err := db.Model(&domain.User{}).Where("id = ?", user.ID).Updates(updates).Error; err != nil {
			// If the update fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update profile"})
			return
		}
		// Return confirmation with the stored profile
		c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully", "profile": profile})
	}
}
