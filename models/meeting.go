package models

import (
	"time"

	"gorm.io/gorm"
)

// Meeting is a scheduled call or site visit tied to an event.
type Meeting struct {
	gorm.Model
	EventID        uint       `json:"eventId" gorm:"index"`
	Title          string     `json:"title" gorm:"not null"`
	MeetingType    string     `json:"meetingType"` // kickoff, site_visit, review, internal
	StartTime      time.Time  `json:"startTime" gorm:"not null"`
	EndTime        time.Time  `json:"endTime" gorm:"not null"`
	Location       string     `json:"location"`
	AttendeeEmails StringList `json:"attendeeEmails" gorm:"type:jsonb"`
	Description    string     `json:"description"`
	Notes          string     `json:"notes"`
}
