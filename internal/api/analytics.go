package api

import (
	"net/http" // HTTP status codes

	"paycoin_backend/internal/domain"     // Importing domain models
	"paycoin_backend/internal/middleware" // Authenticated user lookup

	"github.com/gin-gonic/gin" // Gin web framework
	"gorm.io/gorm"             // GORM ORM library
)

// DashboardAnalytics aggregates the merchant's received transactions
type DashboardAnalytics struct {
	TotalRevenue     float64 `json:"total_revenue"`     // Sum of received amounts
	TransactionCount int64   `json:"transaction_count"` // Number of received transactions
	AvgTransaction   float64 `json:"avg_transaction"`   // Average received amount
}

// DashboardAnalyticsHandler computes sum, count and average of the amounts
// received by the calling merchant; zeros when nothing matched
func DashboardAnalyticsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated merchant from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var analytics DashboardAnalytics // Aggregation result
		// One aggregation query over received transactions; COALESCE keeps
		// the zero-row case at zeros instead of NULLs
		if err := db.Model(&domain.Transaction{}).
			Select("COALESCE(SUM(amount), 0) AS total_revenue, COUNT(*) AS transaction_count, COALESCE(AVG(amount), 0) AS avg_transaction").
			Where("to_user_id = ?", user.ID).
			Scan(&analytics).Error; err != nil {
			// If the aggregation fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to compute analytics"})
			return
		}
		c.JSON(http.StatusOK, analytics) // Return the aggregates
	}
}
