package domain

import "time"

// Product Model
type Product struct {
	ID          string    `gorm:"type:varchar(36);primaryKey" json:"id"`              // Generated UUID
	MerchantID  string    `gorm:"type:varchar(36);index;not null" json:"merchant_id"` // Owning merchant user ID
	Name        string    `gorm:"not null" json:"name"`                               // Product name
	Description string    `json:"description,omitempty"`                              // Product description
	Price       float64   `gorm:"not null" json:"price"`                              // Non-negative currency amount
	Currency    string    `gorm:"default:BRL" json:"currency"`                        // Currency code
	Category    string    `json:"category,omitempty"`                                 // Product category
	Image       string    `json:"image,omitempty"`                                    // Image URL
	IsActive    bool      `gorm:"default:true" json:"is_active"`                      // Soft-delete flag, public listings filter on it
	CreatedAt   time.Time `json:"created_at"`                                         // Timestamp of creation
}
