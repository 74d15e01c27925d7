package api

import (
	"context"  // Context for Redis operations
	"net/http" // HTTP status codes

	"paycoin_backend/internal/domain"     // Importing domain models
	"paycoin_backend/internal/middleware" // Authenticated user lookup
	"paycoin_backend/internal/utils"      // Cache helpers

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/google/uuid"       // UUID generation
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
	"gorm.io/gorm"                 // GORM ORM library
)

// productsCacheKey builds the cache key for a public product listing,
// optionally scoped to one merchant
func productsCacheKey(merchantID string) string {
	if merchantID == "" {
		return "products:active"
	}
	return "products:active:merchant:" + merchantID
}

// Request struct for product creation
type CreateProductRequest struct {
	Name        string  `json:"name" binding:"required"`   // Product name must be provided
	Description string  `json:"description"`               // Product description
	Price       float64 `json:"price" binding:"gte=0"`     // Non-negative price
	Currency    string  `json:"currency"`                  // Currency code, defaults to BRL
	Category    string  `json:"category"`                  // Product category
	Image       string  `json:"image"`                     // Image URL
}

// CreateProductHandler inserts a new product owned by the calling merchant
func CreateProductHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated merchant from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateProductRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		currency := req.Currency // Currency code
		if currency == "" {
			currency = "BRL" // Default currency
		}
		product := domain.Product{
			ID:          uuid.NewString(), // Generated identifier
			MerchantID:  user.ID,          // Owned by the caller
			Name:        req.Name,         // Product name
			Description: req.Description,  // Product description
			Price:       req.Price,        // Price
			Currency:    currency,         // Currency code
			Category:    req.Category,     // Product category
			Image:       req.Image,        // Image URL
			IsActive:    true,             // New products start active
		}
		// Save the new product
		if err := db.Create(&product).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"merchant_id": user.ID,     // Owning merchant
				"error":       err.Error(), // Error message
			}).Error("Failed to create product")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create product"})
			return
		}
		// Invalidate the public listing caches (global and merchant-scoped)
		ctx := context.Background()
		_ = utils.DeleteCache(ctx, rdb, productsCacheKey(""))
		_ = utils.DeleteCache(ctx, rdb, productsCacheKey(user.ID))
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"merchant_id": user.ID,    // Owning merchant
			"product_id":  product.ID, // New product ID
		}).Info("Product created")
		// Return the new product document
		c.JSON(http.StatusCreated, product)
	}
}

// ListProductsHandler returns all active products, optionally filtered by
// merchant; unauthenticated and cached
func ListProductsHandler(db *gorm.DB, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		merchantID := c.Query("merchant_id") // Optional owning-merchant filter
		cacheKey := productsCacheKey(merchantID)
		ctx := context.Background()   // Context for Redis operations
		var products []domain.Product // Slice to hold products
		// Try to get from cache
		found, err := utils.GetCache(ctx, rdb, cacheKey, &products)
		if err == nil && found {
			c.JSON(http.StatusOK, products) // Return cached listing
			return
		}
		query := db.Where("is_active = ?", true) // Public listings filter on the active flag
		if merchantID != "" {
			query = query.Where("merchant_id = ?", merchantID) // Apply the merchant filter
		}
		// Fetch active products from DB
		if err := query.Order("created_at desc").Find(&products).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		_ = utils.SetCache(ctx, rdb, cacheKey, products, listCacheTTL) // Cache the listing
		c.JSON(http.StatusOK, products)                                // Return the listing
	}
}

// MyProductsHandler returns the calling merchant's own products regardless of
// their active flag
func MyProductsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated merchant from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var products []domain.Product // Slice to hold products
		// Fetch every product owned by the caller
		if err := db.Where("merchant_id = ?", user.ID).Order("created_at desc").Find(&products).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
			return
		}
		c.JSON(http.StatusOK, products) // Return the listing
	}
}
