package api

import (
	"net/http" // HTTP status codes

	"paycoin_backend/internal/domain"     // Importing domain models
	"paycoin_backend/internal/middleware" // Authenticated user lookup

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // UUID generation
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for transaction creation. Receiver existence, amount sign
// and balances are deliberately unchecked; only the document is recorded.
type CreateTransactionRequest struct {
	ToUserID        string  `json:"to_user_id" binding:"required"` // Receiver user ID
	Amount          float64 `json:"amount" binding:"required"`     // Transaction amount
	TokenType       string  `json:"token_type" binding:"required"` // PSPAY or USDT
	TransactionHash string  `json:"transaction_hash"`              // Optional external hash
	Description     string  `json:"description"`                   // Free-form description
}

// isValidTokenType checks the token type against the known enum
func isValidTokenType(tokenType string) bool {
	return tokenType == domain.TokenTypePSPAY || tokenType == domain.TokenTypeUSDT
}

// CreateTransactionHandler records a transaction document with the caller
// forced as sender
func CreateTransactionHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var req CreateTransactionRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the token type enum
		if !isValidTokenType(req.TokenType) {
			// If token type is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "token_type must be PSPAY or USDT"})
			return
		}
		transaction := domain.Transaction{
			ID:              uuid.NewString(),       // Generated identifier
			FromUserID:      user.ID,                // Sender is always the caller
			ToUserID:        req.ToUserID,           // Receiver user ID
			Amount:          req.Amount,             // Transaction amount
			TokenType:       req.TokenType,          // PSPAY or USDT
			TransactionHash: req.TransactionHash,    // Optional external hash
			Status:          domain.TxStatusPending, // Every transaction starts pending
			Description:     req.Description,        // Free-form description
		}
		// Save the transaction document
		if err := db.Create(&transaction).Error; err != nil {
			// Log the error with context
			logrus.WithFields(logrus.Fields{
				"from_user_id": user.ID,      // Sender
				"to_user_id":   req.ToUserID, // Receiver
				"amount":       req.Amount,   // Amount
				"error":        err.Error(),  // Error message
			}).Error("Failed to create transaction")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create transaction"})
			return
		}
		// Log successful creation
		logrus.WithFields(logrus.Fields{
			"transaction_id": transaction.ID,        // New transaction ID
			"from_user_id":   user.ID,               // Sender
			"to_user_id":     req.ToUserID,          // Receiver
			"amount":         req.Amount,            // Amount
			"token_type":     req.TokenType,         // Token type
		}).Info("Transaction recorded")
		// Return the new transaction document
		c.JSON(http.StatusCreated, transaction)
	}
}

// ListTransactionsHandler returns every transaction where the caller is
// sender or receiver
func ListTransactionsHandler(db *gorm.DB) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		var transactions []domain.Transaction // Slice to hold transactions
		// Fetch transactions where the caller is either side
		if err := db.Where("from_user_id = ? OR to_user_id = ?", user.ID, user.ID).
			Order("created_at desc").
			Find(&transactions).Error; err != nil {
			// If fetching fails, return error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
			return
		}
		c.JSON(http.StatusOK, transactions) // Return the transaction list
	}
}
