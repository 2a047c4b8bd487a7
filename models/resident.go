package models

// Resident is a student or resident of one of the hostels. HostelID is the
// resident's preferred hostel; the room actually occupied comes from the
// active allotment.
type Resident struct {
	ID               uint         `gorm:"primaryKey;column:resident_id" json:"resident_id"`
	Name             string       `gorm:"size:100;not null" json:"name"`
	Gender           Gender       `gorm:"size:10;not null" json:"gender"`
	ContactNumber    string       `gorm:"size:20;not null;index" json:"contact_number"`
	EmergencyContact *string      `gorm:"size:20" json:"emergency_contact"`
	Email            *string      `gorm:"size:100;uniqueIndex" json:"email"`
	EnrollmentNumber *string      `gorm:"size:50;uniqueIndex" json:"enrollment_number"`
	Password         *string      `gorm:"size:255" json:"-"`
	HostelID         *uint        `gorm:"index" json:"hostel_id"`
	MessPlanID       *uint        `gorm:"index" json:"mess_plan_id"`
	RoommateType     RoommateType `gorm:"size:20;not null;default:'quiet'" json:"roommate_type"`
	Timestamps

	HostelName *string  `gorm:"->;-:migration" json:"hostel_name,omitempty"`
	Location   *string  `gorm:"->;-:migration" json:"location,omitempty"`
	PlanType   *string  `gorm:"->;-:migration" json:"plan_type,omitempty"`
	Cost       *float64 `gorm:"->;-:migration" json:"cost,omitempty"`

	MessPlan *MessPlan `gorm:"foreignKey:MessPlanID;references:ID;constraint:OnDelete:SET NULL" json:"-"`

	Allotments  []Allotment          `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Bills       []Bill               `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Payments    []Payment            `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Maintenance []MaintenanceRequest `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Laundry     []LaundryRequest     `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Visitors    []VisitorLog         `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	AccessCards []AccessCard         `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	Preferences []RoommatePreference `gorm:"foreignKey:ResidentID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
}
