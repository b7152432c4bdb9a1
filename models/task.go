package models

import (
	"time"

	"gorm.io/gorm"
)

// Task is a to-do on an event, optionally assigned to a contractor.
type Task struct {
	gorm.Model
	EventID      uint        `json:"eventId" gorm:"index"`
	ContractorID *uint       `json:"contractorId,omitempty"`
	Contractor   *Contractor `json:"contractor,omitempty" gorm:"foreignKey:ContractorID"`
	Title        string      `json:"title" gorm:"not null"`
	Description  string      `json:"description"`
	Status       string      `json:"status"`   // todo, in_progress, done
	Priority     string      `json:"priority"` // low, medium, high
	DueDate      *time.Time  `json:"dueDate,omitempty"`
	CompletedAt  *time.Time  `json:"completedAt,omitempty"`
}
