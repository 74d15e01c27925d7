package domain

import "time"

// User types
const (
	UserTypeClient   = "client"   // Consumer account, can transact but not manage a catalog
	UserTypeMerchant = "merchant" // Business account, owns stores/products and sees analytics
)

// Address embedded document, stored as JSON on the owning row
type Address struct {
	Street    string   `json:"street"`              // Street name
	Number    string   `json:"number"`              // Street number
	City      string   `json:"city"`                // City
	State     string   `json:"state"`               // State
	ZipCode   string   `json:"zip_code"`            // Postal code
	Country   string   `json:"country"`             // Country
	Latitude  *float64 `json:"latitude,omitempty"`  // Optional geo latitude
	Longitude *float64 `json:"longitude,omitempty"` // Optional geo longitude
}

// Profile sub-document; merchant fields stay empty on client accounts
type Profile struct {
	Name                string   `json:"name"`                           // Display name
	Phone               string   `json:"phone,omitempty"`                // Contact phone
	ProfilePicture      string   `json:"profile_picture,omitempty"`      // Inline data-URI image
	Address             *Address `json:"address,omitempty"`              // Optional address
	BusinessName        string   `json:"business_name,omitempty"`        // Merchant only
	BusinessDescription string   `json:"business_description,omitempty"` // Merchant only
	BusinessBanner      string   `json:"business_banner,omitempty"`      // Merchant only
	BusinessCategory    string   `json:"business_category,omitempty"`    // Merchant only
}

// User Model
type User struct {
	ID              string     `gorm:"type:varchar(36);primaryKey" json:"id"`    // Generated UUID
	Email           string     `gorm:"uniqueIndex;not null" json:"email"`        // Unique email
	Name            string     `gorm:"not null" json:"name"`                     // Full name
	Phone           string     `json:"phone,omitempty"`                          // Optional phone
	UserType        string     `gorm:"not null" json:"user_type"`                // client or merchant, immutable after creation
	HashedPassword  string     `gorm:"not null" json:"-"`                        // Bcrypt hash, never serialized
	IsActive        bool       `gorm:"default:true" json:"is_active"`            // Soft-delete flag
	Profile         *Profile   `gorm:"serializer:json" json:"profile,omitempty"` // Profile sub-document as JSON column
	WalletAddress   string     `json:"wallet_address,omitempty"`                 // Optional external wallet address
	ProfileImageURL string     `json:"profile_image_url,omitempty"`              // Disk-backed profile image URL
	BannerImageURL  string     `json:"banner_image_url,omitempty"`               // Disk-backed banner image URL
	CreatedAt       time.Time  `json:"created_at"`                               // Timestamp of creation
	UpdatedAt       *time.Time `json:"updated_at,omitempty"`                     // Timestamp of last update
}
