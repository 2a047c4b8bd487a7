package models

type Room struct {
	ID           uint         `gorm:"primaryKey;column:room_id" json:"room_id"`
	HostelID     uint         `gorm:"not null;uniqueIndex:idx_rooms_hostel_number,priority:1" json:"hostel_id"`
	RoomNumber   string       `gorm:"size:50;not null;uniqueIndex:idx_rooms_hostel_number,priority:2" json:"room_number"`
	RoomType     RoomType     `gorm:"size:10;not null;default:'double'" json:"room_type"`
	Floor        *int         `json:"floor"`
	Capacity     int          `gorm:"not null;check:chk_rooms_capacity,capacity >= 1" json:"capacity"`
	Occupied     int          `gorm:"not null;default:0;check:chk_rooms_occupied,occupied >= 0" json:"occupied"`
	Status       RoomStatus   `gorm:"size:15;not null;default:'available';check:chk_rooms_status,status IN ('available','full','maintenance')" json:"status"`
	RoommateType RoommateType `gorm:"size:20;not null;default:'quiet'" json:"roommate_type"`
	Timestamps

	HostelName *string `gorm:"->;-:migration" json:"hostel_name,omitempty"`
	Location   *string `gorm:"->;-:migration" json:"location,omitempty"`

	Allotments []Allotment `gorm:"foreignKey:RoomID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}

// Recompute sets Occupied to the live active-allotment count and derives
// Status from it. A full room becomes available again once a seat frees up;
// maintenance set by an administrator is kept unless the room is full.
func (r *Room) Recompute(active int) {
	r.Occupied = active
	switch {
	case active >= r.Capacity:
		r.Status = RoomFull
	case r.Status == RoomFull:
		r.Status = RoomAvailable
	}
}

// HasSeat reports whether an allotment may be added to the room.
func (r *Room) HasSeat() bool {
	return r.Occupied < r.Capacity && r.Status != RoomFull
}
