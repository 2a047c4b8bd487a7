package models

import "time"

type VisitorLog struct {
	ID          uint       `gorm:"primaryKey;column:log_id" json:"log_id"`
	ResidentID  uint       `gorm:"not null;index" json:"resident_id"`
	VisitorName string     `gorm:"size:100;not null" json:"visitor_name"`
	EntryTime   time.Time  `gorm:"not null;index" json:"entry_time"`
	ExitTime    *time.Time `json:"exit_time"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}
