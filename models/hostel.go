package models

import "gorm.io/gorm"

type Hostel struct {
	ID              uint     `gorm:"primaryKey;column:hostel_id" json:"hostel_id"`
	HostelName      string   `gorm:"size:100;not null" json:"hostel_name"`
	Location        string   `gorm:"size:150;not null" json:"location"`
	HostelFees      *float64 `gorm:"type:decimal(10,2);check:chk_hostels_fees,hostel_fees >= 0" json:"hostel_fees"`
	AnnualFees      *float64 `gorm:"type:decimal(10,2);check:chk_hostels_annual_fees,annual_fees >= 0" json:"annual_fees"`
	SecurityDeposit *float64 `gorm:"type:decimal(10,2);check:chk_hostels_deposit,security_deposit >= 0" json:"security_deposit"`
	ContactNumber   *string  `gorm:"size:20" json:"contact_number"`
	Timestamps

	// Deleting a hostel removes its rooms, and through them their allotments.
	Rooms []Room `gorm:"foreignKey:HostelID;references:ID;constraint:OnDelete:CASCADE" json:"-"`
	// Residents keep their row and lose the preference.
	Residents []Resident `gorm:"foreignKey:HostelID;references:ID;constraint:OnDelete:SET NULL" json:"-"`
}

func (h *Hostel) BeforeSave(tx *gorm.DB) error {
	switch {
	case negative(h.HostelFees):
		return &GuardError{Table: "hostels", Column: "hostel_fees"}
	case negative(h.AnnualFees):
		return &GuardError{Table: "hostels", Column: "annual_fees"}
	case negative(h.SecurityDeposit):
		return &GuardError{Table: "hostels", Column: "security_deposit"}
	}
	return nil
}
