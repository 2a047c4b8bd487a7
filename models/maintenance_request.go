package models

type MaintenanceRequest struct {
	ID               uint            `gorm:"primaryKey;column:request_id" json:"request_id"`
	ResidentID       uint            `gorm:"not null;index" json:"resident_id"`
	IssueDescription string          `gorm:"type:text;not null" json:"issue_description"`
	ComplaintStatus  ComplaintStatus `gorm:"size:15;not null;default:'pending'" json:"complaint_status"`
	Timestamps

	ResidentName *string `gorm:"->;-:migration" json:"resident_name,omitempty"`
}
