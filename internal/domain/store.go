package domain

import "time"

// Store Model
type Store struct {
	ID            string            `gorm:"type:varchar(36);primaryKey" json:"id"`          // Generated UUID
	MerchantID    string            `gorm:"type:varchar(36);index;not null" json:"merchant_id"` // Owning merchant user ID
	Name          string            `gorm:"not null" json:"name"`                           // Store name
	Description   string            `json:"description,omitempty"`                          // Store description
	Address       Address           `gorm:"serializer:json" json:"address"`                 // Store address as JSON column
	Category      string            `json:"category,omitempty"`                             // Store category
	Phone         string            `json:"phone,omitempty"`                                // Contact phone
	BusinessHours map[string]string `gorm:"serializer:json" json:"business_hours,omitempty"` // Weekday -> hours
	Images        []string          `gorm:"serializer:json" json:"images,omitempty"`        // Image URLs
	IsActive      bool              `gorm:"default:true" json:"is_active"`                  // Soft-delete flag, public listings filter on it
	CreatedAt     time.Time         `json:"created_at"`                                     // Timestamp of creation
}
