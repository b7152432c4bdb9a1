package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"

	"gorm.io/gorm"
)

// SourcedVendor is a prospective vendor tracked through the sourcing pipeline
// for one event. Status is a plain tag from the sourcing package; any status
// may be set at any time.
type SourcedVendor struct {
	ID        uint           `gorm:"primaryKey" json:"ID"`
	CreatedAt time.Time      `json:"CreatedAt"`
	UpdatedAt time.Time      `json:"UpdatedAt"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"DeletedAt"`

	EventID          uint  `gorm:"column:event_id;index" json:"eventId"`
	ResearchResultID *uint `gorm:"column:research_result_id" json:"researchResultId,omitempty"`

	Name       string `gorm:"column:name;not null" json:"name"`
	Category   string `gorm:"column:category" json:"category"`
	Website    string `gorm:"column:website" json:"website"`
	Phone      string `gorm:"column:phone" json:"phone"`
	Address    string `gorm:"column:address" json:"address"`
	PriceRange string `gorm:"column:price_range" json:"priceRange"`
	Capacity   string `gorm:"column:capacity" json:"capacity"`

	Status   string `gorm:"column:status;index" json:"status"`
	Priority *int   `gorm:"column:priority" json:"priority,omitempty"`
	Notes    string `gorm:"column:notes" json:"notes"`

	QuotedPrice *float64 `gorm:"column:quoted_price" json:"quotedPrice,omitempty"`
	FinalPrice  *float64 `gorm:"column:final_price" json:"finalPrice,omitempty"`

	RFPSentDate          *time.Time `gorm:"column:rfp_sent_date" json:"rfpSentDate,omitempty"`
	ProposalDueDate      *time.Time `gorm:"column:proposal_due_date" json:"proposalDueDate,omitempty"`
	ProposalReceivedDate *time.Time `gorm:"column:proposal_received_date" json:"proposalReceivedDate,omitempty"`
}

func (SourcedVendor) TableName() string { return "sourced_vendors" }

// JSONPayload stores the raw research payload as a JSONB column without
// forcing a schema onto it.
type JSONPayload json.RawMessage

func (p JSONPayload) Value() (driver.Value, error) {
	if len(p) == 0 {
		return "{}", nil
	}
	return string(p), nil
}

func (p *JSONPayload) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*p = nil
		return nil
	case []byte:
		*p = append((*p)[0:0], v...)
		return nil
	case string:
		*p = JSONPayload(v)
		return nil
	default:
		return fmt.Errorf("unsupported type %T for JSONPayload", src)
	}
}

func (p JSONPayload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

func (p *JSONPayload) UnmarshalJSON(data []byte) error {
	*p = append((*p)[0:0], data...)
	return nil
}

// ResearchResult is a saved AI research query and its structured candidate
// list, used as an import source for sourced vendors.
type ResearchResult struct {
	gorm.Model
	EventID  *uint       `json:"eventId,omitempty" gorm:"index"`
	Query    string      `json:"query" gorm:"not null"`
	Category string      `json:"category"`
	Results  JSONPayload `json:"results" gorm:"type:jsonb"`
	Sources  StringList  `json:"sources" gorm:"type:jsonb"`
}

func (ResearchResult) TableName() string { return "research_results" }
