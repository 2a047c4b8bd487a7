package models

import "gorm.io/datatypes"

// Payment is recorded independently of bills; nothing reconciles the two.
type Payment struct {
	ID            uint           `gorm:"primaryKey;column:payment_id" json:"payment_id"`
	ResidentID    uint           `gorm:"not null;index" json:"resident_id"`
	Amount        float64        `gorm:"type:decimal(10,2);not null" json:"amount"`
	PaymentDate   datatypes.Date `gorm:"not null;index" json:"payment_date"`
	PaymentStatus PaymentStatus  `gorm:"size:10;not null;default:'pending'" json:"payment_status"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}
