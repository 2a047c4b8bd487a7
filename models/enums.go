package models

type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
	GenderOther  Gender = "other"
)

type RoomType string

const (
	RoomTypeSingle RoomType = "single"
	RoomTypeDouble RoomType = "double"
	RoomTypeTriple RoomType = "triple"
	RoomTypeSuite  RoomType = "suite"
)

type RoomStatus string

const (
	RoomAvailable   RoomStatus = "available"
	RoomFull        RoomStatus = "full"
	RoomMaintenance RoomStatus = "maintenance"
)

// RoommateType tags both residents and rooms. Self-service room selection only
// offers rooms whose tag matches the resident's. Allotment lifestyle
// preferences use the same vocabulary.
type RoommateType string

const (
	RoommateQuiet         RoommateType = "quiet"
	RoommateJolly         RoommateType = "jolly"
	RoommateMorningPerson RoommateType = "morning-person"
	RoommateNightPerson   RoommateType = "night-person"
	RoommateSocial        RoommateType = "social"
	RoommateStudious      RoommateType = "studious"
	RoommateOther         RoommateType = "other"
)

type AllotmentStatus string

const (
	AllotmentActive    AllotmentStatus = "active"
	AllotmentCompleted AllotmentStatus = "completed"
)

type PlanType string

const (
	PlanVeg    PlanType = "veg"
	PlanNonVeg PlanType = "non-veg"
	PlanCustom PlanType = "custom"
)

type BillStatus string

const (
	BillPending BillStatus = "pending"
	BillPaid    BillStatus = "paid"
	BillOverdue BillStatus = "overdue"
)

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in-progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

type LaundryStatus string

const (
	LaundryRequested  LaundryStatus = "requested"
	LaundryInProgress LaundryStatus = "in-progress"
	LaundryCompleted  LaundryStatus = "completed"
)

type CardStatus string

const (
	CardActive   CardStatus = "active"
	CardInactive CardStatus = "inactive"
	CardLost     CardStatus = "lost"
)

func (t RoommateType) Valid() bool {
	switch t {
	case RoommateQuiet, RoommateJolly, RoommateMorningPerson, RoommateNightPerson,
		RoommateSocial, RoommateStudious, RoommateOther:
		return true
	}
	return false
}
