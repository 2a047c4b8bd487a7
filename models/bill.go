package models

import "gorm.io/datatypes"

type Bill struct {
	ID                uint           `gorm:"primaryKey;column:bill_id" json:"bill_id"`
	ResidentID        uint           `gorm:"not null;index" json:"resident_id"`
	MonthlyRent       float64        `gorm:"type:decimal(10,2);not null" json:"monthly_rent"`
	AdditionalCharges float64        `gorm:"type:decimal(10,2);not null;default:0" json:"additional_charges"`
	DueDate           datatypes.Date `gorm:"not null;index" json:"due_date"`
	Status            BillStatus     `gorm:"size:10;not null;default:'pending'" json:"status"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}

// Total is the amount due for the bill.
func (b Bill) Total() float64 {
	return b.MonthlyRent + b.AdditionalCharges
}
