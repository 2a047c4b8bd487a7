package models

// Names of the read-only views created at startup.
const (
	ViewResidentRoomDetails  = "resident_room_details"
	ViewMaintenanceDashboard = "maintenance_dashboard"
	ViewRoomOccupancy        = "room_occupancy_view"
	ViewFinancialSummary     = "financial_summary"
)

// Date columns in view rows are scanned as strings; drivers disagree on
// whether a view column keeps its DATE type.

type ResidentRoomDetail struct {
	ResidentID          uint     `json:"resident_id"`
	ResidentName        string   `json:"resident_name"`
	Gender              string   `json:"gender"`
	ContactNumber       string   `json:"contact_number"`
	Email               *string  `json:"email"`
	RoommateType        string   `json:"roommate_type"`
	HostelID            *uint    `json:"hostel_id"`
	HostelName          *string  `json:"hostel_name"`
	Location            *string  `json:"location"`
	RoomID              *uint    `json:"room_id"`
	RoomNumber          *string  `json:"room_number"`
	RoomType            *string  `json:"room_type"`
	AllotmentID         *uint    `json:"allotment_id"`
	CheckInDate         *string  `json:"check_in_date"`
	LifestylePreference *string  `json:"lifestyle_preference"`
	PlanID              *uint    `json:"plan_id"`
	PlanType            *string  `json:"plan_type"`
	MessCost            *float64 `json:"mess_cost"`
	OutstandingBills    int64    `json:"outstanding_bills"`
	TotalRent           float64  `json:"total_rent"`
}

type MaintenanceDashboardRow struct {
	RequestID        uint    `json:"request_id"`
	IssueDescription string  `json:"issue_description"`
	ComplaintStatus  string  `json:"complaint_status"`
	CreatedAt        string  `json:"created_at"`
	ResidentID       uint    `json:"resident_id"`
	ResidentName     string  `json:"resident_name"`
	ContactNumber    string  `json:"contact_number"`
	RoomNumber       *string `json:"room_number"`
	HostelName       *string `json:"hostel_name"`
}

type RoomOccupancyRow struct {
	RoomID         uint    `json:"room_id"`
	RoomNumber     string  `json:"room_number"`
	RoomType       string  `json:"room_type"`
	RoommateType   string  `json:"roommate_type"`
	HostelID       uint    `json:"hostel_id"`
	HostelName     string  `json:"hostel_name"`
	Capacity       int     `json:"capacity"`
	Occupied       int     `json:"occupied"`
	AvailableSpots int     `json:"available_spots"`
	Status         string  `json:"status"`
	Occupants      *string `json:"occupants"`
}

type FinancialSummaryRow struct {
	ResidentID    uint    `json:"resident_id"`
	ResidentName  string  `json:"resident_name"`
	TotalBills    int64   `json:"total_bills"`
	TotalBilled   float64 `json:"total_billed"`
	PendingBills  int64   `json:"pending_bills"`
	PaidBills     int64   `json:"paid_bills"`
	OverdueBills  int64   `json:"overdue_bills"`
	PendingAmount float64 `json:"pending_amount"`
	PaidAmount    float64 `json:"paid_amount"`
	OverdueAmount float64 `json:"overdue_amount"`
	PaymentCount  int64   `json:"payment_count"`
	TotalPaid     float64 `json:"total_paid"`
}
