package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type BillInput struct {
	ResidentID        *uint    `json:"resident_id"`
	MonthlyRent       *float64 `json:"monthly_rent"`
	AdditionalCharges *float64 `json:"additional_charges"`
	DueDate           *string  `json:"due_date" binding:"omitempty,isodate"`
	Status            *string  `json:"status" binding:"omitempty,oneof=pending paid overdue"`
}

type BillService struct {
	DB *gorm.DB
}

func NewBillService(db *gorm.DB) *BillService {
	return &BillService{DB: db}
}

func billsJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.Bill{}, "bills")
}

func (s *BillService) List() ([]models.Bill, error) {
	var bills []models.Bill
	err := billsJoined(s.DB).Order("bills.due_date DESC, bills.bill_id DESC").Find(&bills).Error
	return bills, err
}

// ForResident returns the resident's bills, newest due date first. A
// positive limit caps the result.
func (s *BillService) ForResident(residentID uint, limit int) ([]models.Bill, error) {
	q := billsJoined(s.DB).Where("bills.resident_id = ?", residentID).Order("bills.due_date DESC, bills.bill_id DESC")
	if limit > 0 {
		q = q.Limit(limit)
	}
	var bills []models.Bill
	err := q.Find(&bills).Error
	return bills, err
}

func (s *BillService) Get(id uint) (models.Bill, error) {
	var b models.Bill
	err := billsJoined(s.DB).Where("bills.bill_id = ?", id).Take(&b).Error
	return b, lookup(err, "Bill")
}

// apply sets the amounts, due date and status. Additional charges default
// to zero and status to pending when omitted.
func (in BillInput) apply(b *models.Bill) error {
	due, err := date("due_date", in.DueDate)
	if err != nil {
		return err
	}
	b.MonthlyRent = *in.MonthlyRent
	b.AdditionalCharges = 0
	if in.AdditionalCharges != nil {
		b.AdditionalCharges = *in.AdditionalCharges
	}
	b.DueDate = due
	b.Status = models.BillPending
	if present(in.Status) {
		b.Status = models.BillStatus(text(in.Status))
	}
	return nil
}

func (s *BillService) Create(in BillInput) (models.Bill, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"monthly_rent", in.MonthlyRent != nil},
		field{"due_date", present(in.DueDate)},
	); err != nil {
		return models.Bill{}, err
	}

	b := models.Bill{ResidentID: *in.ResidentID}
	if err := in.apply(&b); err != nil {
		return b, err
	}
	if err := s.DB.Create(&b).Error; err != nil {
		return b, classify(err, "Bill already exists")
	}
	return s.Get(b.ID)
}

func (s *BillService) Update(id uint, in BillInput) (models.Bill, error) {
	var b models.Bill
	if err := s.DB.Take(&b, "bill_id = ?", id).Error; err != nil {
		return b, lookup(err, "Bill")
	}
	if err := required(
		field{"monthly_rent", in.MonthlyRent != nil},
		field{"due_date", present(in.DueDate)},
		field{"status", present(in.Status)},
	); err != nil {
		return b, err
	}
	if err := in.apply(&b); err != nil {
		return b, err
	}
	if err := s.DB.Save(&b).Error; err != nil {
		return b, classify(err, "Bill already exists")
	}
	return s.Get(id)
}

func (s *BillService) Delete(id uint) error {
	return deleteByID(s.DB, &models.Bill{}, id, "Bill")
}
