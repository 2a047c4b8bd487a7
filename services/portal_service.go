package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

const dashboardRecent = 5

// Dashboard is everything the resident's self-service page shows.
type Dashboard struct {
	Resident       models.Resident             `json:"resident"`
	Room           *models.Allotment           `json:"room"`
	Bills          []models.Bill               `json:"bills"`
	Maintenance    []models.MaintenanceRequest `json:"maintenance"`
	Laundry        []models.LaundryRequest     `json:"laundry"`
	Hostels        []models.Hostel             `json:"hostels"`
	MessPlans      []models.MessPlan           `json:"messPlans"`
	AvailableRooms []models.Room               `json:"availableRooms"`
}

type RoomSelectionInput struct {
	RoomID *uint `json:"room_id"`
}

// PortalService composes the entity services for the resident portal.
type PortalService struct {
	Residents   *ResidentService
	Rooms       *RoomService
	Allotments  *AllotmentService
	Bills       *BillService
	Maintenance *MaintenanceService
	Laundry     *LaundryService
	Hostels     *HostelService
	MessPlans   *MessPlanService
}

func NewPortalService(db *gorm.DB) *PortalService {
	return &PortalService{
		Residents:   NewResidentService(db),
		Rooms:       NewRoomService(db),
		Allotments:  NewAllotmentService(db),
		Bills:       NewBillService(db),
		Maintenance: NewMaintenanceService(db),
		Laundry:     NewLaundryService(db),
		Hostels:     NewHostelService(db),
		MessPlans:   NewMessPlanService(db),
	}
}

func (s *PortalService) Dashboard(residentID uint) (Dashboard, error) {
	var d Dashboard
	var err error

	if d.Resident, err = s.Residents.Get(residentID); err != nil {
		return d, err
	}
	if d.Room, err = s.Allotments.Active(residentID); err != nil {
		return d, err
	}
	if d.Bills, err = s.Bills.ForResident(residentID, dashboardRecent); err != nil {
		return d, err
	}
	if d.Maintenance, err = s.Maintenance.ForResident(residentID, dashboardRecent); err != nil {
		return d, err
	}
	if d.Laundry, err = s.Laundry.ForResident(residentID, dashboardRecent); err != nil {
		return d, err
	}
	if d.Hostels, err = s.Hostels.List(); err != nil {
		return d, err
	}
	if d.MessPlans, err = s.MessPlans.List(); err != nil {
		return d, err
	}
	if d.AvailableRooms, err = s.Rooms.Available(d.Resident.RoommateType, d.Resident.HostelID); err != nil {
		return d, err
	}
	return d, nil
}

func (s *PortalService) UpdateProfile(residentID uint, in ResidentInput) (models.Resident, error) {
	return s.Residents.UpdateProfile(residentID, in)
}

func (s *PortalService) RequestMaintenance(residentID uint, in MaintenanceInput) (models.MaintenanceRequest, error) {
	if _, err := s.Residents.Get(residentID); err != nil {
		return models.MaintenanceRequest{}, err
	}
	in.ResidentID = &residentID
	return s.Maintenance.Create(in)
}

func (s *PortalService) RequestLaundry(residentID uint, in LaundryInput) (models.LaundryRequest, error) {
	if _, err := s.Residents.Get(residentID); err != nil {
		return models.LaundryRequest{}, err
	}
	return s.Laundry.Request(residentID, in)
}

func (s *PortalService) SelectRoom(residentID uint, in RoomSelectionInput) (models.Allotment, error) {
	if in.RoomID == nil {
		return models.Allotment{}, validationf("missing required fields: room_id")
	}
	return s.Allotments.SelectRoom(residentID, *in.RoomID)
}
