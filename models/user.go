package models

import "gorm.io/gorm"

// User is an internal account (producers, ops, finance).
type User struct {
	gorm.Model
	Login        string `json:"login" gorm:"uniqueIndex;not null"`
	Email        string `json:"email"`
	PasswordHash string `json:"-" gorm:"not null"`
	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Title        string `json:"title"`
}
