package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes
	"time"     // Cache TTL

	"paycoin_backend/internal/domain"     // Importing domain models
	"paycoin_backend/internal/middleware" // Authenticated user lookup
	"paycoin_backend/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/google/uuid"       // UUID generation
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// listCacheTTL is how long public catalog listings stay cached
const listCacheTTL = 60 * time.Second

// storesCacheKey is the cache key for the public store listing
const storesCacheKey = "stores:active"

// Request struct for store creation
type CreateStoreRequest struct {
	Name          string            `json:"name" binding:"required"`    // Store name must be provided
	Description   string            `json:"description"`                // Store description
	Address       domain.Address    `json:"address" binding:"required"` // Store address
	Category      string            `json:"category"`                   // Store category
	Phone         string            `json:"phone"`                      // Contact phone
	BusinessHours map[string]string `json:"business_hours"`             // Weekday -> hours
	Images        []string          `json:"images"`                     // Image URLs
}

// CreateStoreHandler inserts a new store owned by the calling merchant
func CreateStoreHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated merchant from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateStoreRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		store := domain.Store{
			ID:            uuid.NewString(),  // Generated identifier
			MerchantID:    user.ID,           // Owned by the caller
			Name:          req.Name,          // Store name
			Description:   req.Description,   // Store description
			Address:       req.Address,       // Store address
			Category:      req.Category,      // Store category
			Phone:         req.Phone,         // Contact phone
			BusinessHours: req.BusinessHours, // Business hours
			Images:        req.Images,        // Image URLs
			IsActive:      true,              // New stores start active
		}
		// Save the new store
		if err := db.Create(&store).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"merchant_id": user.ID,     // Owning merchant
				"error":       err.Error(), // Error message
			}).Error("Failed to create store")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create store"})
			return
		}
		// Invalidate the public listing cache
		_ = utils.DeleteCache(context.Background(), rdb, storesCacheKey)
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"merchant_id": user.ID,  // Owning merchant
			"store_id":    store.ID, // New store ID
		}).Info("Store created")
		// Return the new store document
		c.JSON(http.StatusCreated, store)
	}
}

// ListStoresHandler returns all active stores; unauthenticated and cached
func ListStoresHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := context.Background() // Context for Redis operations
		var stores []domain.Store   // Slice to hold stores
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, storesCacheKey, &stores)
		if err == nil && found {
			c.JSON(http.StatusOK, stores) // Return cached listing
			return
		}
		// If not in cache, fetch active stores from DB
		if err := db.Where("is_active = ?", true).Order("created_at desc").Find(&stores).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		_ = utils.SetCache(ctx, rdb, storesCacheKey, stores, listCacheTTL) // Cache the listing
		c.JSON(http.StatusOK, stores)                                     // Return the listing
	}
}

// MyStoresHandler returns the calling merchant's own stores regardless of
// their active flag
func MyStoresHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated merchant from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var stores []domain.Store // Slice to hold stores
		// Fetch every store owned by the caller
		if err := db.Where("merchant_id = ?", user.ID).Order("created_at desc").Find(&stores).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch stores"})
			return
		}
		c.JSON(http.StatusOK, stores) // Return the listing
	}
}
