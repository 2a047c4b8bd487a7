package services

import (
	"strconv"
	"strings"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"hostel-backend/models"
)

type ResidentInput struct {
	Name             *string `json:"name"`
	Gender           *string `json:"gender" binding:"omitempty,oneof=male female other"`
	ContactNumber    *string `json:"contact_number"`
	EmergencyContact *string `json:"emergency_contact"`
	Email            *string `json:"email" binding:"omitempty,email"`
	EnrollmentNumber *string `json:"enrollment_number"`
	Password         *string `json:"password"`
	HostelID         *uint   `json:"hostel_id"`
	MessPlanID       *uint   `json:"mess_plan_id"`
	RoommateType     *string `json:"roommate_type" binding:"omitempty,roommate"`
}

type ResidentService struct {
	DB *gorm.DB
}

func NewResidentService(db *gorm.DB) *ResidentService {
	return &ResidentService{DB: db}
}

const duplicateResident = "A resident with this email or enrollment number already exists"

func residentsJoined(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Resident{}).
		Select("residents.*, h.hostel_name, h.location, mp.plan_type, mp.cost").
		Joins("LEFT JOIN hostels h ON h.hostel_id = residents.hostel_id").
		Joins("LEFT JOIN mess_plans mp ON mp.plan_id = residents.mess_plan_id")
}

func (s *ResidentService) List() ([]models.Resident, error) {
	var residents []models.Resident
	err := residentsJoined(s.DB).Order("residents.created_at DESC, residents.resident_id DESC").Find(&residents).Error
	return residents, err
}

func (s *ResidentService) Get(id uint) (models.Resident, error) {
	var r models.Resident
	err := residentsJoined(s.DB).Where("residents.resident_id = ?", id).Take(&r).Error
	return r, lookup(err, "Resident")
}

// FindByIdentifier matches an email, a contact number, an enrollment number
// or a numeric resident id.
func (s *ResidentService) FindByIdentifier(identifier string) (models.Resident, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return models.Resident{}, validationf("Identifier (email/contact/resident ID) is required")
	}

	q := residentsJoined(s.DB).Where(
		s.DB.Where("residents.email = ?", identifier).
			Or("residents.contact_number = ?", identifier).
			Or("residents.enrollment_number = ?", identifier),
	)
	if id, err := strconv.ParseUint(identifier, 10, 64); err == nil {
		q = q.Or("residents.resident_id = ?", id)
	}

	var r models.Resident
	err := q.Order("residents.resident_id").Take(&r).Error
	return r, lookup(err, "Resident")
}

func hashPassword(p *string) (*string, error) {
	if !present(p) {
		return nil, nil
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(*p), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	h := string(hash)
	return &h, nil
}

// apply copies the input onto r. Optional fields left out are cleared, except
// password, enrollment number and roommate type which keep their stored
// value.
func (in ResidentInput) apply(r *models.Resident) error {
	if err := required(
		field{"name", present(in.Name)},
		field{"gender", present(in.Gender)},
		field{"contact_number", present(in.ContactNumber)},
	); err != nil {
		return err
	}

	r.Name = text(in.Name)
	r.Gender = models.Gender(text(in.Gender))
	r.ContactNumber = text(in.ContactNumber)
	r.EmergencyContact = optional(in.EmergencyContact)
	r.Email = optional(in.Email)
	r.HostelID = optionalID(in.HostelID)
	r.MessPlanID = optionalID(in.MessPlanID)

	if present(in.EnrollmentNumber) {
		r.EnrollmentNumber = optional(in.EnrollmentNumber)
	}
	if present(in.RoommateType) {
		r.RoommateType = models.RoommateType(text(in.RoommateType))
	}
	if r.RoommateType == "" {
		r.RoommateType = models.RoommateQuiet
	}
	if present(in.Password) {
		hash, err := hashPassword(in.Password)
		if err != nil {
			return err
		}
		r.Password = hash
	}
	return nil
}

func (s *ResidentService) Create(in ResidentInput) (models.Resident, error) {
	var r models.Resident
	if err := in.apply(&r); err != nil {
		return r, err
	}
	if err := s.DB.Create(&r).Error; err != nil {
		return r, classify(err, duplicateResident)
	}
	return s.Get(r.ID)
}

func (s *ResidentService) Update(id uint, in ResidentInput) (models.Resident, error) {
	var r models.Resident
	if err := s.DB.Take(&r, "resident_id = ?", id).Error; err != nil {
		return r, lookup(err, "Resident")
	}
	if err := in.apply(&r); err != nil {
		return r, err
	}
	if err := s.DB.Save(&r).Error; err != nil {
		return r, classify(err, duplicateResident)
	}
	return s.Get(id)
}

// UpdateProfile is the resident's own edit. It follows Update, except that a
// missing roommate type resets to quiet.
func (s *ResidentService) UpdateProfile(id uint, in ResidentInput) (models.Resident, error) {
	if !present(in.RoommateType) {
		quiet := string(models.RoommateQuiet)
		in.RoommateType = &quiet
	}
	return s.Update(id, in)
}

// Delete removes the resident together with allotments, bills, payments,
// requests, visitor logs, access cards and preferences. Rooms that lose an
// active occupant are recounted in the same transaction.
func (s *ResidentService) Delete(id uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if _, err := lockResident(tx, id); err != nil {
			return err
		}

		var roomIDs []uint
		err := tx.Model(&models.Allotment{}).
			Where("resident_id = ? AND status = ?", id, models.AllotmentActive).
			Distinct().Pluck("room_id", &roomIDs).Error
		if err != nil {
			return err
		}

		if err := tx.Delete(&models.Resident{}, id).Error; err != nil {
			return classify(err, "")
		}

		for _, roomID := range roomIDs {
			room, err := lockRoom(tx, roomID)
			if err != nil {
				return err
			}
			if err := recompute(tx, &room); err != nil {
				return err
			}
		}
		return nil
	})
}
