package models

import "gorm.io/datatypes"

// Allotment ties a resident to a room for one stay. A resident holds at most
// one active allotment at a time.
type Allotment struct {
	ID                  uint            `gorm:"primaryKey;column:allotment_id" json:"allotment_id"`
	ResidentID          uint            `gorm:"not null;index" json:"resident_id"`
	RoomID              uint            `gorm:"not null;index" json:"room_id"`
	CheckInDate         datatypes.Date  `gorm:"not null" json:"check_in_date"`
	CheckOutDate        *datatypes.Date `json:"check_out_date"`
	LifestylePreference RoommateType    `gorm:"size:20;not null;default:'quiet'" json:"lifestyle_preference"`
	Status              AllotmentStatus `gorm:"size:10;not null;default:'active';index;check:chk_allotments_status,status IN ('active','completed')" json:"status"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
	RoomNumber   *string `gorm:"->;-:migration" json:"room_number,omitempty"`
	RoomTypeName *string `gorm:"->;-:migration;column:room_type" json:"room_type,omitempty"`
	Capacity     *int    `gorm:"->;-:migration" json:"capacity,omitempty"`
	HostelName   *string `gorm:"->;-:migration" json:"hostel_name,omitempty"`
	Location     *string `gorm:"->;-:migration" json:"location,omitempty"`
}
