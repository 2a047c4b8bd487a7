package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type PaymentInput struct {
	ResidentID    *uint    `json:"resident_id"`
	Amount        *float64 `json:"amount"`
	PaymentDate   *string  `json:"payment_date" binding:"omitempty,isodate"`
	PaymentStatus *string  `json:"payment_status" binding:"omitempty,oneof=pending completed failed"`
}

type PaymentService struct {
	DB *gorm.DB
}

func NewPaymentService(db *gorm.DB) *PaymentService {
	return &PaymentService{DB: db}
}

func paymentsJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.Payment{}, "payments")
}

func (s *PaymentService) List() ([]models.Payment, error) {
	var payments []models.Payment
	err := paymentsJoined(s.DB).Order("payments.payment_date DESC, payments.payment_id DESC").Find(&payments).Error
	return payments, err
}

func (s *PaymentService) ForResident(residentID uint) ([]models.Payment, error) {
	var payments []models.Payment
	err := paymentsJoined(s.DB).
		Where("payments.resident_id = ?", residentID).
		Order("payments.payment_date DESC, payments.payment_id DESC").
		Find(&payments).Error
	return payments, err
}

func (s *PaymentService) Get(id uint) (models.Payment, error) {
	var p models.Payment
	err := paymentsJoined(s.DB).Where("payments.payment_id = ?", id).Take(&p).Error
	return p, lookup(err, "Payment")
}

func (s *PaymentService) Create(in PaymentInput) (models.Payment, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"amount", in.Amount != nil},
		field{"payment_date", present(in.PaymentDate)},
	); err != nil {
		return models.Payment{}, err
	}
	paid, err := date("payment_date", in.PaymentDate)
	if err != nil {
		return models.Payment{}, err
	}

	p := models.Payment{
		ResidentID:    *in.ResidentID,
		Amount:        *in.Amount,
		PaymentDate:   paid,
		PaymentStatus: models.PaymentPending,
	}
	if present(in.PaymentStatus) {
		p.PaymentStatus = models.PaymentStatus(text(in.PaymentStatus))
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return p, classify(err, "Payment already exists")
	}
	return s.Get(p.ID)
}

func (s *PaymentService) Update(id uint, in PaymentInput) (models.Payment, error) {
	var p models.Payment
	if err := s.DB.Take(&p, "payment_id = ?", id).Error; err != nil {
		return p, lookup(err, "Payment")
	}
	if err := required(
		field{"amount", in.Amount != nil},
		field{"payment_date", present(in.PaymentDate)},
		field{"payment_status", present(in.PaymentStatus)},
	); err != nil {
		return p, err
	}
	paid, err := date("payment_date", in.PaymentDate)
	if err != nil {
		return p, err
	}

	p.Amount = *in.Amount
	p.PaymentDate = paid
	p.PaymentStatus = models.PaymentStatus(text(in.PaymentStatus))
	if err := s.DB.Save(&p).Error; err != nil {
		return p, classify(err, "Payment already exists")
	}
	return s.Get(id)
}

func (s *PaymentService) Delete(id uint) error {
	return deleteByID(s.DB, &models.Payment{}, id, "Payment")
}
