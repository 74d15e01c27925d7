package api

import (
	"io"       // Reading the uploaded file
	"net/http" // HTTP status codes
	"time"     // Update timestamps

	"paycoin_backend/internal/domain"     // Importing domain models
	"paycoin_backend/internal/middleware" // Authenticated user lookup
	"paycoin_backend/internal/storage"    // Unified image storage

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
	"gorm.io/gorm"               // GORM ORM library
)

// MaxImageSize is the upload size cap (5 MB)
const MaxImageSize = 5 * 1024 * 1024

// Image types selectable on upload
const (
	ImageTypeProfile = "profile" // Stored on profile_image_url
	ImageTypeBanner  = "banner"  // Stored on banner_image_url
)

// allowedImageTypes is the fixed set of accepted content types
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/jpg":  true,
	"image/png":  true,
	"image/webp": true,
}

// imageURLColumn maps an image type to the user column holding its URL
func imageURLColumn(imageType string) (string, bool) {
	switch imageType {
	case ImageTypeProfile:
		return "profile_image_url", true
	case ImageTypeBanner:
		return "banner_image_url", true
	}
	return "", false // Unknown image type
}

// readImageFile validates and reads the multipart file named "file".
// It returns the payload bytes plus metadata, or a client-facing error message.
func readImageFile(c *gin.Context) ([]byte, string, string, string) {
	fileHeader, err := c.FormFile("file") // The uploaded file part
	if err != nil {
		return nil, "", "", "No file provided"
	}
	contentType := fileHeader.Header.Get("Content-Type") // Declared MIME type
	// Validate file type against the fixed image set
	if !allowedImageTypes[contentType] {
		return nil, "", "", "Unsupported file format. Use JPEG, PNG or WebP."
	}
	// Validate file size (5MB max)
	if fileHeader.Size > MaxImageSize {
		return nil, "", "", "File too large. Maximum size: 5MB."
	}
	f, err := fileHeader.Open() // Open the part for reading
	if err != nil {
		return nil, "", "", "Failed to read file"
	}
	defer f.Close()
	content, err := io.ReadAll(f) // Read the full payload
	if err != nil {
		return nil, "", "", "Failed to read file"
	}
	return content, contentType, fileHeader.Filename, ""
}

// UploadImageHandler stores an image on disk and records its URL on the user.
// The image_type form field selects the profile or banner slot.
func UploadImageHandler(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		imageType := c.PostForm("image_type") // Which slot the image goes to
		column, ok := imageURLColumn(imageType)
		// Validate the image type
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type"})
			return
		}
		// Validate and read the uploaded file
		content, contentType, filename, errMsg := readImageFile(c)
		if errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		// Persist the file under a generated unique name
		imageURL, err := store.Store(content, storage.ImageMeta{
			UserID:      user.ID,     // Owner
			ImageType:   imageType,   // Slot
			ContentType: contentType, // MIME type
			Filename:    filename,    // Original name, extension only is kept
		})
		if err != nil {
			// Log the error and return a generic message
			logrus.WithFields(logrus.Fields{
				"user_id": user.ID,     // Owner
				"error":   err.Error(), // Error message
			}).Error("Image upload failed")
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		now := time.Now().UTC() // Update timestamp
		// Record the URL on the selected column
		if err := db.Model(&domain.User{}).Where("id = ?", user.ID).
			Updates(map[string]any{column: imageURL, "updated_at": &now}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return the stored image URL
		c.JSON(http.StatusOK, gin.H{"image_url": imageURL, "message": "Image uploaded successfully"})
	}
}

// UploadInlineImageHandler stores an image as a base64 data URI directly on
// the caller's profile sub-document instead of writing to disk.
func UploadInlineImageHandler(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		// Validate and read the uploaded file
		content, contentType, filename, errMsg := readImageFile(c)
		if errMsg != "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": errMsg})
			return
		}
		// Encode the payload as an inline reference
		imageData, err := store.Store(content, storage.ImageMeta{
			UserID:      user.ID,          // Owner
			ImageType:   ImageTypeProfile, // Inline uploads always target the profile picture
			ContentType: contentType,      // MIME type
			Filename:    filename,         // Original name
		})
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Keep existing profile fields, only replace the picture
		profile := user.Profile
		if profile == nil {
			profile = &domain.Profile{Name: user.Name, Phone: user.Phone}
		}
		profile.ProfilePicture = imageData // Inline data URI
		now := time.Now().UTC()            // Update timestamp
		// Store the updated profile sub-document
		if err := db.Model(&domain.User{}).Where("id = ?", user.ID).
			Updates(map[string]any{"profile": profile, "updated_at": &now}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return the inline reference
		c.JSON(http.StatusOK, gin.H{"image_url": imageData, "message": "Image uploaded successfully"})
	}
}

// RemoveImageHandler clears a profile or banner image. Deleting the backing
// file is best effort; failures are logged, not propagated.
func RemoveImageHandler(db *gorm.DB, store storage.ImageStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := middleware.CurrentUser(c) // Get the authenticated user from context
		// Check if the auth middleware ran
		if user == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
			return
		}
		imageType := c.Param("image_type") // Which slot to clear
		column, ok := imageURLColumn(imageType)
		// Validate the image type
		if !ok {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid image type"})
			return
		}
		// Resolve the currently stored URL for the slot
		imageURL := user.ProfileImageURL
		if imageType == ImageTypeBanner {
			imageURL = user.BannerImageURL
		}
		// Best-effort delete of the underlying file
		if imageURL != "" {
			if err := store.Remove(imageURL); err != nil {
				// Log and continue; the record is cleared regardless
				logrus.WithFields(logrus.Fields{
					"user_id":   user.ID,     // Owner
					"image_url": imageURL,    // Stale reference
					"error":     err.Error(), // Error message
				}).Warn("Could not delete image file")
			}
		}
		now := time.Now().UTC() // Update timestamp
		// Clear the URL column
		if err := db.Model(&domain.User{}).Where("id = ?", user.ID).
			Updates(map[string]any{column: "", "updated_at": &now}).Error; err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
			return
		}
		// Return confirmation
		c.JSON(http.StatusOK, gin.H{"message": "Image removed successfully"})
	}
}
