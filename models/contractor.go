package models

import "gorm.io/gorm"

// Contractor is a freelancer from the production talent pool.
type Contractor struct {
	gorm.Model
	FirstName       string     `json:"firstName" gorm:"not null"`
	LastName        string     `json:"lastName" gorm:"not null"`
	Role            string     `json:"role"`
	Specialties     StringList `json:"specialties" gorm:"type:jsonb"`
	Email           string     `json:"email"`
	Phone           string     `json:"phone"`
	City            string     `json:"city"`
	State           string     `json:"state"`
	HourlyRate      *float64   `json:"hourlyRate,omitempty"`
	DayRate         *float64   `json:"dayRate,omitempty"`
	Rating          *int       `json:"rating,omitempty"`
	W9OnFile        bool       `json:"w9OnFile"`
	NDASigned       bool       `json:"ndaSigned"`
	InsuranceOnFile bool       `json:"insuranceOnFile"`
	Notes           string     `json:"notes"`
}
