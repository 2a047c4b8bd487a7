package models

import "gorm.io/datatypes"

type AccessCard struct {
	ID         uint           `gorm:"primaryKey;column:card_id" json:"card_id"`
	ResidentID uint           `gorm:"not null;index" json:"resident_id"`
	IssueDate  datatypes.Date `gorm:"not null" json:"issue_date"`
	Status     CardStatus     `gorm:"size:10;not null;default:'active'" json:"status"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}
