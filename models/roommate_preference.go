package models

// RoommatePreference is free-form tagging kept for reference. Room filtering
// reads Resident.RoommateType instead.
type RoommatePreference struct {
	ID             uint    `gorm:"primaryKey;column:preference_id" json:"preference_id"`
	ResidentID     uint    `gorm:"not null;index" json:"resident_id"`
	PreferenceType string  `gorm:"size:50;not null" json:"preference_type"`
	Notes          *string `gorm:"type:text" json:"notes"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}
