package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

// ViewService reads the aggregate views created at startup.
type ViewService struct {
	DB *gorm.DB
}

func NewViewService(db *gorm.DB) *ViewService {
	return &ViewService{DB: db}
}

func (s *ViewService) ResidentRoomDetails() ([]models.ResidentRoomDetail, error) {
	var rows []models.ResidentRoomDetail
	err := s.DB.Table(models.ViewResidentRoomDetails).Order("resident_id").Find(&rows).Error
	return rows, err
}

func (s *ViewService) MaintenanceDashboard() ([]models.MaintenanceDashboardRow, error) {
	var rows []models.MaintenanceDashboardRow
	err := s.DB.Table(models.ViewMaintenanceDashboard).Order("created_at DESC, request_id DESC").Find(&rows).Error
	return rows, err
}

func (s *ViewService) RoomOccupancy() ([]models.RoomOccupancyRow, error) {
	var rows []models.RoomOccupancyRow
	err := s.DB.Table(models.ViewRoomOccupancy).Order("hostel_name, room_number").Find(&rows).Error
	return rows, err
}

func (s *ViewService) FinancialSummary() ([]models.FinancialSummaryRow, error) {
	var rows []models.FinancialSummaryRow
	err := s.DB.Table(models.ViewFinancialSummary).Order("resident_name, resident_id").Find(&rows).Error
	return rows, err
}
