package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type HostelInput struct {
	HostelName      *string  `json:"hostel_name"`
	Location        *string  `json:"location"`
	HostelFees      *float64 `json:"hostel_fees"`
	AnnualFees      *float64 `json:"annual_fees"`
	SecurityDeposit *float64 `json:"security_deposit"`
	ContactNumber   *string  `json:"contact_number"`
}

type HostelService struct {
	DB *gorm.DB
}

func NewHostelService(db *gorm.DB) *HostelService {
	return &HostelService{DB: db}
}

func (s *HostelService) List() ([]models.Hostel, error) {
	var hostels []models.Hostel
	err := s.DB.Order("hostel_name").Find(&hostels).Error
	return hostels, err
}

func (s *HostelService) Get(id uint) (models.Hostel, error) {
	var h models.Hostel
	err := s.DB.Take(&h, "hostel_id = ?", id).Error
	return h, lookup(err, "Hostel")
}

// apply copies the input onto h. Optional fields left out of the input are
// cleared.
func (in HostelInput) apply(h *models.Hostel) error {
	if err := required(
		field{"hostel_name", present(in.HostelName)},
		field{"location", present(in.Location)},
	); err != nil {
		return err
	}
	h.HostelName = text(in.HostelName)
	h.Location = text(in.Location)
	h.HostelFees = in.HostelFees
	h.AnnualFees = in.AnnualFees
	h.SecurityDeposit = in.SecurityDeposit
	h.ContactNumber = optional(in.ContactNumber)
	return nil
}

func (s *HostelService) Create(in HostelInput) (models.Hostel, error) {
	var h models.Hostel
	if err := in.apply(&h); err != nil {
		return h, err
	}
	if err := s.DB.Create(&h).Error; err != nil {
		return h, classify(err, "Hostel already exists")
	}
	return s.Get(h.ID)
}

func (s *HostelService) Update(id uint, in HostelInput) (models.Hostel, error) {
	h, err := s.Get(id)
	if err != nil {
		return h, err
	}
	if err := in.apply(&h); err != nil {
		return h, err
	}
	if err := s.DB.Save(&h).Error; err != nil {
		return h, classify(err, "Hostel already exists")
	}
	return s.Get(id)
}

// Delete removes the hostel with its rooms and their allotments. Residents
// who preferred it keep their record with no hostel.
func (s *HostelService) Delete(id uint) error {
	return deleteByID(s.DB, &models.Hostel{}, id, "Hostel")
}
