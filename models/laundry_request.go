package models

import "gorm.io/datatypes"

type LaundryRequest struct {
	ID          uint           `gorm:"primaryKey;column:laundry_id" json:"laundry_id"`
	ResidentID  uint           `gorm:"not null;index" json:"resident_id"`
	ServiceDate datatypes.Date `gorm:"not null;index" json:"service_date"`
	Status      LaundryStatus  `gorm:"size:15;not null;default:'requested'" json:"status"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}

func (LaundryRequest) TableName() string {
	return "laundry_services"
}
