package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

type LaundryInput struct {
	ResidentID  *uint   `json:"resident_id"`
	ServiceDate *string `json:"service_date" binding:"omitempty,isodate"`
	Status      *string `json:"status" binding:"omitempty,oneof=requested in-progress completed"`
}

type LaundryService struct {
	DB *gorm.DB
}

func NewLaundryService(db *gorm.DB) *LaundryService {
	return &LaundryService{DB: db}
}

func laundryJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.LaundryRequest{}, "laundry_services")
}

const laundryOrder = "laundry_services.service_date DESC, laundry_services.laundry_id DESC"

func (s *LaundryService) List() ([]models.LaundryRequest, error) {
	var rows []models.LaundryRequest
	err := laundryJoined(s.DB).Order(laundryOrder).Find(&rows).Error
	return rows, err
}

func (s *LaundryService) ForResident(residentID uint, limit int) ([]models.LaundryRequest, error) {
	q := laundryJoined(s.DB).Where("laundry_services.resident_id = ?", residentID).Order(laundryOrder)
	if limit > 0 {
		q = q.Limit(limit)
	}
	var rows []models.LaundryRequest
	err := q.Find(&rows).Error
	return rows, err
}

func (s *LaundryService) Get(id uint) (models.LaundryRequest, error) {
	var l models.LaundryRequest
	err := laundryJoined(s.DB).Where("laundry_services.laundry_id = ?", id).Take(&l).Error
	return l, lookup(err, "Laundry request")
}

func (s *LaundryService) Create(in LaundryInput) (models.LaundryRequest, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"service_date", present(in.ServiceDate)},
	); err != nil {
		return models.LaundryRequest{}, err
	}
	return s.create(*in.ResidentID, in)
}

// Request is the resident's own booking. The service date defaults to today.
func (s *LaundryService) Request(residentID uint, in LaundryInput) (models.LaundryRequest, error) {
	if !present(in.ServiceDate) {
		today := utils.FormatDate(utils.Today())
		in.ServiceDate = &today
	}
	in.Status = nil
	return s.create(residentID, in)
}

func (s *LaundryService) create(residentID uint, in LaundryInput) (models.LaundryRequest, error) {
	day, err := date("service_date", in.ServiceDate)
	if err != nil {
		return models.LaundryRequest{}, err
	}

	l := models.LaundryRequest{
		ResidentID:  residentID,
		ServiceDate: day,
		Status:      models.LaundryRequested,
	}
	if present(in.Status) {
		l.Status = models.LaundryStatus(text(in.Status))
	}
	if err := s.DB.Create(&l).Error; err != nil {
		return l, classify(err, "Laundry request already exists")
	}
	return s.Get(l.ID)
}

func (s *LaundryService) Update(id uint, in LaundryInput) (models.LaundryRequest, error) {
	var l models.LaundryRequest
	if err := s.DB.Take(&l, "laundry_id = ?", id).Error; err != nil {
		return l, lookup(err, "Laundry request")
	}
	if err := required(
		field{"service_date", present(in.ServiceDate)},
		field{"status", present(in.Status)},
	); err != nil {
		return l, err
	}
	day, err := date("service_date", in.ServiceDate)
	if err != nil {
		return l, err
	}

	l.ServiceDate = day
	l.Status = models.LaundryStatus(text(in.Status))
	if err := s.DB.Save(&l).Error; err != nil {
		return l, classify(err, "Laundry request already exists")
	}
	return s.Get(id)
}

func (s *LaundryService) Delete(id uint) error {
	return deleteByID(s.DB, &models.LaundryRequest{}, id, "Laundry request")
}
