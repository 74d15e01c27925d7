package domain

import "time"

// Token types accepted on a transaction
const (
	TokenTypePSPAY = "PSPAY" // Platform token
	TokenTypeUSDT  = "USDT"  // Stablecoin
)

// Transaction statuses; every transaction is created pending and no endpoint
// transitions it further
const (
	TxStatusPending   = "pending"
	TxStatusCompleted = "completed"
	TxStatusFailed    = "failed"
)

// Transaction Model
type Transaction struct {
	ID              string    `gorm:"type:varchar(36);primaryKey" json:"id"`           // Generated UUID
	FromUserID      string    `gorm:"type:varchar(36);index;not null" json:"from_user_id"` // Sender user ID, always the caller
	ToUserID        string    `gorm:"type:varchar(36);index;not null" json:"to_user_id"`   // Receiver user ID
	Amount          float64   `gorm:"not null" json:"amount"`                          // Transaction amount
	TokenType       string    `gorm:"not null" json:"token_type"`                      // PSPAY or USDT
	TransactionHash string    `json:"transaction_hash,omitempty"`                      // Optional external hash
	Status          string    `gorm:"default:pending" json:"status"`                   // pending, completed, failed
	Description     string    `json:"description,omitempty"`                           // Free-form description
	CreatedAt       time.Time `json:"created_at"`                                      // Timestamp of creation
}
