package api

import (
	"net/http"                        // HTTP status codes
	"strings"                         // String manipulation
	"paycoin_backend/internal/domain" // Importing domain models
	"paycoin_backend/internal/utils"  // Utility functions

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/google/uuid"     // UUID generation
	"github.com/sirupsen/logrus" // Logging library
	"golang.org/x/crypto/bcrypt" // Password hashing
	"gorm.io/gorm"               // GORM ORM library
)

// Request struct for registration
type RegisterRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided and well formed
	Name     string `json:"name" binding:"required"`        // Name must be provided
	Phone    string `json:"phone"`                          // Phone is optional
	UserType string `json:"user_type" binding:"required"`   // client or merchant
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// Request struct for login
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"` // Email must be provided
	Password string `json:"password" binding:"required"`    // Password must be provided
}

// Response struct for authentication
type TokenResponse struct {
	AccessToken string `json:"access_token"` // Signed bearer token
	TokenType   string `json:"token_type"`   // Always "bearer"
	UserType    string `json:"user_type"`    // client or merchant
	UserID      string `json:"user_id"`      // ID of the authenticated user
}

// isValidUserType checks the user type against the known enum
func isValidUserType(userType string) bool {
	return userType == domain.UserTypeClient || userType == domain.UserTypeMerchant
}

// RegisterHandler creates a new user and returns a fresh bearer token
func RegisterHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req RegisterRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		// Validate the user type enum
		if !isValidUserType(req.UserType) {
			// If user type is invalid, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "user_type must be client or merchant"})
			return
		}
		email := strings.ToLower(req.Email) // Store emails lowercase to keep uniqueness meaningful
		// Check if the email is already registered
		var existing domain.User
		if err := db.Where("email = ?", email).First(&existing).Error; err == nil {
			// If a user exists with this email, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		// Hash the password and create the user
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			// If hashing fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to hash password"})
			return
		}
		user := domain.User{
			ID:             uuid.NewString(), // Generated identifier
			Email:          email,            // Lowercased email
			Name:           req.Name,         // Full name
			Phone:          req.Phone,        // Optional phone
			UserType:       req.UserType,     // client or merchant, immutable from here on
			HashedPassword: string(hash),     // Bcrypt hash
			IsActive:       true,             // New accounts start active
		}
		// Attempt to create the user; the unique index backstops the race
		// between the existence check and this insert
		if err := db.Create(&user).Error; err != nil {
			// If creation fails (e.g., duplicate email), return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Email already registered"})
			return
		}
		// Generate JWT token for the new user
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Log successful registration
		logrus.WithFields(logrus.Fields{
			"user_id":   user.ID,       // New user ID
			"user_type": user.UserType, // Account type
		}).Info("User registered")
		// Return the token in the response
		c.JSON(http.StatusCreated, TokenResponse{
			AccessToken: token,         // Signed bearer token
			TokenType:   "bearer",      // Token type
			UserType:    user.UserType, // Account type
			UserID:      user.ID,       // New user ID
		})
	}
}

// LoginHandler authenticates a user and returns a fresh bearer token
func LoginHandler(db *gorm.DB, jwtSecret string) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req LoginRequest // Bind JSON request to struct
		if err := c.ShouldBindJSON(&req); err != nil {
			// If binding fails, return bad request
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request"})
			return
		}
		var user domain.User // Fetch user from database
		if err := db.Where("email = ?", strings.ToLower(req.Email)).First(&user).Error; err != nil {
			// If user not found, return unauthorized
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
			return
		}
		// Compare provided password with stored hash
		if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(req.Password)); err != nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Incorrect email or password"})
			return
		}
		// Deactivated accounts cannot log in
		if !user.IsActive {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Account is inactive"})
			return
		}
		// Generate JWT token
		token, err := utils.GenerateJWT(user.ID, jwtSecret)
		if err != nil {
			// If token generation fails, return internal server error
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}
		// Return the token in the response
		c.JSON(http.StatusOK, TokenResponse{
			AccessToken: token,         // Signed bearer token
			TokenType:   "bearer",      // Token type
			UserType:    user.UserType, // Account type
			UserID:      user.ID,       // User ID
		})
	}
}
