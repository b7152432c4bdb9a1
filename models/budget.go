package models

import "gorm.io/gorm"

// BudgetCategory is a shared lookup (Venue, Catering, AV, ...) used to group
// budget lines across all events.
type BudgetCategory struct {
	gorm.Model
	Name      string `json:"name" gorm:"not null;uniqueIndex"`
	SortOrder int    `json:"sortOrder"`
}

// BudgetItem is a single budget line on an event. The four amounts track a
// line from first estimate through the final invoice.
type BudgetItem struct {
	gorm.Model
	EventID    uint            `json:"eventId" gorm:"index"`
	CategoryID *uint           `json:"categoryId,omitempty"`
	Category   *BudgetCategory `json:"category,omitempty" gorm:"foreignKey:CategoryID"`

	Description     string   `json:"description" gorm:"not null"`
	VendorName      string   `json:"vendorName"`
	EstimatedAmount *float64 `json:"estimatedAmount,omitempty"`
	QuotedAmount    *float64 `json:"quotedAmount,omitempty"`
	ApprovedAmount  *float64 `json:"approvedAmount,omitempty"`
	ActualAmount    *float64 `json:"actualAmount,omitempty"`
	Notes           string   `json:"notes"`
}
