package models

import "gorm.io/gorm"

type Review struct {
	gorm.Model
	Stars   int    `gorm:"not null"`
	Comment string `gorm:"not null"`
	UserID  uint   `gorm:"not null"`
	User    User
	BookID  uint `gorm:"not null"`
	Book    Book
}
