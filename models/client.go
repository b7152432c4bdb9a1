package models

import "gorm.io/gorm"

// Client represents a customer company we run events for.
type Client struct {
	gorm.Model
	Name     string     `json:"name" gorm:"not null"`
	Industry string     `json:"industry"`
	Website  string     `json:"website"`
	Address  string     `json:"address"`
	City     string     `json:"city"`
	State    string     `json:"state"`
	Zip      string     `json:"zip"`
	Tags     StringList `json:"tags" gorm:"type:jsonb"`
	Notes    string     `json:"notes"`
	Contacts []Contact  `json:"contacts,omitempty" gorm:"foreignKey:ClientID"`
}

// Contact is a person at a client company.
type Contact struct {
	gorm.Model
	ClientID  uint   `json:"clientId" gorm:"index"`
	FirstName string `json:"firstName" gorm:"not null"`
	LastName  string `json:"lastName" gorm:"not null"`
	Role      string `json:"role"`
	Email     string `json:"email"`
	Phone     string `json:"phone"`
	IsPrimary bool   `json:"isPrimary"`
	Notes     string `json:"notes"`
}
