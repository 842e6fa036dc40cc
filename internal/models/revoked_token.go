package models

import (
	"time"

	"gorm.io/gorm"
)

// RevokedToken is the refresh-token blacklist. Tokens are keyed by their
// jti claim; ExpiresAt allows expired rows to be swept later.
type RevokedToken struct {
	gorm.Model

	JTI       string    `gorm:"uniqueIndex;not null"`
	UserID    uint      `gorm:"index"`
	ExpiresAt time.Time `gorm:"not null"`
}
