package model

import (
	"time"

	"github.com/google/uuid"
)

// BlacklistedToken records a revoked refresh token by its jti.
type BlacklistedToken struct {
	ID            uint      `gorm:"primaryKey"`
	JTI           string    `gorm:"column:jti;type:varchar(64);uniqueIndex;not null"`
	UserID        uuid.UUID `gorm:"type:uuid;index;not null"`
	ExpiresAt     time.Time `gorm:"not null;index"`
	BlacklistedAt time.Time `gorm:"autoCreateTime"`
}
