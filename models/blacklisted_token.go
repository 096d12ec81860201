package models

import "gorm.io/gorm"

// BlacklistedToken is a revoked token kept until its natural expiry.
// Logout and refresh rotation both write here.
type BlacklistedToken struct {
	gorm.Model
	Token     string `gorm:"not null;unique;index"`
	ExpiresAt int64  `gorm:"not null;index"`
}
