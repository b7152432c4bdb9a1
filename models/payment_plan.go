package models

import (
	"time"

	"gorm.io/gorm"
)

// PaymentPlan is a reusable schedule shape for paying a contracted vendor,
// e.g. "50% deposit / 40% pre-event / 10% on close".
type PaymentPlan struct {
	gorm.Model
	Name         string               `json:"name" gorm:"not null"`
	Description  string               `json:"description"`
	Installments []PaymentInstallment `json:"installments,omitempty" gorm:"foreignKey:PaymentPlanID"`
}

// PaymentInstallment is one line of a plan. Formula is evaluated with the
// parameters Total, Quoted and Final (govaluate syntax), e.g. "Total * 0.5".
// OffsetDays is relative to the schedule anchor date.
type PaymentInstallment struct {
	gorm.Model
	PaymentPlanID uint   `json:"paymentPlanId" gorm:"index"`
	Name          string `json:"name" gorm:"not null"`
	Formula       string `json:"formula" gorm:"not null"`
	OffsetDays    int    `json:"offsetDays"`
}

// VendorPayment is a generated (and subsequently editable) payment row for a
// contracted vendor.
type VendorPayment struct {
	gorm.Model
	VendorID uint           `json:"vendorId" gorm:"index"`
	Vendor   *SourcedVendor `json:"vendor,omitempty" gorm:"foreignKey:VendorID"`

	Name    string     `json:"name"`
	Amount  float64    `json:"amount"`
	DueDate *time.Time `json:"dueDate,omitempty"`
	Comment string     `json:"comment"`
}
