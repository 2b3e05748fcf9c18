package entity

import (
	"time"
)

// IdempotencyKeyTTL is how long a processed request can be replayed.
const IdempotencyKeyTTL = 24 * time.Hour

// IdempotencyKey stores processed requests so a retried submission replays
// the stored response instead of creating a duplicate.
type IdempotencyKey struct {
	ID           uint      `gorm:"primaryKey"`
	Key          string    `gorm:"column:request_key;size:255;not null;uniqueIndex:idx_idempotency_key_endpoint"` // Idempotency-Key header sent by the client
	Endpoint     string    `gorm:"size:255;not null;uniqueIndex:idx_idempotency_key_endpoint"` // e.g. "POST /api/vendas"
	ResponseCode int       `gorm:"not null"`
	ResponseBody string    `gorm:"type:text"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
	ExpiresAt    time.Time `gorm:"not null;index"`
}

// TableName returns the table name for IdempotencyKey
func (IdempotencyKey) TableName() string {
	return "idempotency_keys"
}

// IsExpired checks if the idempotency key has expired
func (i *IdempotencyKey) IsExpired() bool {
	return time.Now().After(i.ExpiresAt)
}
