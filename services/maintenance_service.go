package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type MaintenanceInput struct {
	ResidentID       *uint   `json:"resident_id"`
	IssueDescription *string `json:"issue_description"`
	ComplaintStatus  *string `json:"complaint_status" binding:"omitempty,oneof=pending in-progress resolved"`
}

type MaintenanceService struct {
	DB *gorm.DB
}

func NewMaintenanceService(db *gorm.DB) *MaintenanceService {
	return &MaintenanceService{DB: db}
}

func maintenanceJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.MaintenanceRequest{}, "maintenance_requests")
}

const maintenanceOrder = "maintenance_requests.created_at DESC, maintenance_requests.request_id DESC"

func (s *MaintenanceService) List() ([]models.MaintenanceRequest, error) {
	var rows []models.MaintenanceRequest
	err := maintenanceJoined(s.DB).Order(maintenanceOrder).Find(&rows).Error
	return rows, err
}

func (s *MaintenanceService) ForResident(residentID uint, limit int) ([]models.MaintenanceRequest, error) {
	q := maintenanceJoined(s.DB).Where("maintenance_requests.resident_id = ?", residentID).Order(maintenanceOrder)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []models.MaintenanceRequest
	err := q.Find(&rows).Error
	return rows, err
}

func (s *MaintenanceService) Get(id uint) (models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	err := maintenanceJoined(s.DB).Where("maintenance_requests.request_id = ?", id).Take(&m).Error
	return m, lookup(err, "Maintenance request")
}

// Create files a request. New requests are always pending.
func (s *MaintenanceService) Create(in MaintenanceInput) (models.MaintenanceRequest, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"issue_description", present(in.IssueDescription)},
	); err != nil {
		return models.MaintenanceRequest{}, err
	}

	m := models.MaintenanceRequest{
		ResidentID:       *in.ResidentID,
		IssueDescription: text(in.IssueDescription),
		ComplaintStatus:  models.ComplaintPending,
	}
	if err := s.DB.Create(&m).Error; err != nil {
		return m, classify(err, "Maintenance request already exists")
	}
	return s.Get(m.ID)
}

func (s *MaintenanceService) Update(id uint, in MaintenanceInput) (models.MaintenanceRequest, error) {
	var m models.MaintenanceRequest
	if err := s.DB.Take(&m, "request_id = ?", id).Error; err != nil {
		return m, lookup(err, "Maintenance request")
	}
	if err := required(field{"complaint_status", present(in.ComplaintStatus)}); err != nil {
		return m, err
	}

	m.ComplaintStatus = models.ComplaintStatus(text(in.ComplaintStatus))
	if present(in.IssueDescription) {
		m.IssueDescription = text(in.IssueDescription)
	}
	if err := s.DB.Save(&m).Error; err != nil {
		return m, classify(err, "Maintenance request already exists")
	}
	return s.Get(id)
}

func (s *MaintenanceService) Delete(id uint) error {
	return deleteByID(s.DB, &models.MaintenanceRequest{}, id, "Maintenance request")
}
