// File: /models/blacklisted_token.go
package models

import (
	"time"
)

// BlacklistedToken records a JWT invalidated by logout. Rows become
// irrelevant once the token would have expired anyway and are purged
// by the cleanup job.
type BlacklistedToken struct {
	ID            uint      `json:"id" gorm:"primaryKey;autoIncrement"`
	JTI           string    `json:"jti" gorm:"uniqueIndex;not null;size:255;column:jti"`
	Token         string    `json:"-" gorm:"not null;size:1000"`
	UserID        uint      `json:"user_id" gorm:"not null;index"`
	BlacklistedAt time.Time `json:"blacklisted_at" gorm:"autoCreateTime"`
	ExpiresAt     time.Time `json:"expires_at" gorm:"not null"`
}
