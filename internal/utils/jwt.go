package utils

import (
	"time" // Time for token expiration

	"github.com/golang-jwt/jwt/v5" // JWT library
)

// TokenLifetime is how long an access token stays valid after issuance
const TokenLifetime = 30 * time.Minute

// GenerateJWT creates a signed HS256 token carrying the user ID as subject
func GenerateJWT(userID, secret string) (string, error) {
	// Set token claims
	claims := jwt.RegisteredClaims{
		Subject:   userID,                                          // User ID as subject claim
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenLifetime)), // Token expires 30 minutes from now
		IssuedAt:  jwt.NewNumericDate(time.Now()),                  // Issued at current time
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims) // Create token with claims
	return token.SignedString([]byte(secret))                  // Sign the token with the secret
}

// ParseJWT parses and validates a token string, returning the subject user ID
func ParseJWT(tokenStr, secret string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &jwt.RegisteredClaims{}, func(token *jwt.Token) (any, error) {
		return []byte(secret), nil // Return the secret key for validation
	})
	// Check for parsing errors (covers expiry and bad signatures)
	if err != nil {
		return "", err
	}
	// Validate token and extract claims
	if claims, ok := token.Claims.(*jwt.RegisteredClaims); ok && token.Valid && claims.Subject != "" {
		return claims.Subject, nil // Return subject if valid
	}
	// Return error if token is invalid
	return "", jwt.ErrSignatureInvalid
}
