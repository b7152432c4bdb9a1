package models

import (
	"time"

	"gorm.io/gorm"
)

// Event is a single client engagement: a launch, activation, conference, etc.
// Status is an informational tag, no transitions are enforced.
type Event struct {
	gorm.Model
	ClientID *uint   `json:"clientId" gorm:"index"`
	Client   *Client `json:"client,omitempty" gorm:"foreignKey:ClientID"`

	Name        string `json:"name" gorm:"not null"`
	EventType   string `json:"eventType"`
	Status      string `json:"status"` // planning, confirmed, in_progress, completed, cancelled
	Description string `json:"description"`
	Notes       string `json:"notes"`

	// Project window vs the on-site event window.
	StartDate      *time.Time `json:"startDate,omitempty"`
	EndDate        *time.Time `json:"endDate,omitempty"`
	EventStartDate *time.Time `json:"eventStartDate,omitempty"`
	EventEndDate   *time.Time `json:"eventEndDate,omitempty"`

	LocationName    string `json:"locationName"`
	LocationAddress string `json:"locationAddress"`
	LocationCity    string `json:"locationCity"`
	LocationState   string `json:"locationState"`
}

// EventContractor books a contractor onto an event.
type EventContractor struct {
	gorm.Model
	EventID      uint        `json:"eventId" gorm:"index"`
	ContractorID uint        `json:"contractorId" gorm:"index"`
	Contractor   *Contractor `json:"contractor,omitempty" gorm:"foreignKey:ContractorID"`
	Role         string      `json:"role"`
	RateType     string      `json:"rateType"` // hourly, daily, flat
	RateAmount   *float64    `json:"rateAmount,omitempty"`
	Notes        string      `json:"notes"`
}

// EventFile is an uploaded attachment; the blob lives on disk under UPLOAD_DIR
// and only the stored path is kept in the database.
type EventFile struct {
	gorm.Model
	EventID     uint   `json:"eventId" gorm:"index"`
	FileName    string `json:"fileName" gorm:"not null"`
	StoragePath string `json:"storagePath" gorm:"not null"`
	FileSize    int64  `json:"fileSize"`
	FileType    string `json:"fileType"`
	Category    string `json:"category"`
	UploadedBy  *uint  `json:"uploadedBy,omitempty"`
}
