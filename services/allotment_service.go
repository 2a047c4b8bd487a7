package services

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-backend/metrics"
	"hostel-backend/models"
	"hostel-backend/utils"
)

type AllotmentInput struct {
	ResidentID          *uint   `json:"resident_id"`
	RoomID              *uint   `json:"room_id"`
	CheckInDate         *string `json:"check_in_date" binding:"omitempty,isodate"`
	CheckOutDate        *string `json:"check_out_date" binding:"omitempty,isodate"`
	LifestylePreference *string `json:"lifestyle_preference" binding:"omitempty,roommate"`
	Status              *string `json:"status" binding:"omitempty,oneof=active completed"`
}

// AllotmentService owns every write that changes room occupancy. Each
// transition runs in one transaction holding row locks on the resident and
// then the room, and ends by recounting the room's active allotments.
type AllotmentService struct {
	DB *gorm.DB
}

func NewAllotmentService(db *gorm.DB) *AllotmentService {
	return &AllotmentService{DB: db}
}

func allotmentsJoined(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Allotment{}).
		Select("allotments.*, r.name AS resident_name, rm.room_number, rm.room_type, rm.capacity, h.hostel_name, h.location").
		Joins("JOIN residents r ON r.resident_id = allotments.resident_id").
		Joins("JOIN rooms rm ON rm.room_id = allotments.room_id").
		Joins("JOIN hostels h ON h.hostel_id = rm.hostel_id")
}

func (s *AllotmentService) List() ([]models.Allotment, error) {
	var rows []models.Allotment
	err := allotmentsJoined(s.DB).Order("allotments.created_at DESC, allotments.allotment_id DESC").Find(&rows).Error
	return rows, err
}

func (s *AllotmentService) Get(id uint) (models.Allotment, error) {
	var a models.Allotment
	err := allotmentsJoined(s.DB).Where("allotments.allotment_id = ?", id).Take(&a).Error
	return a, lookup(err, "Allotment")
}

// Active returns the resident's current allotment, or nil when there is none.
func (s *AllotmentService) Active(residentID uint) (*models.Allotment, error) {
	var rows []models.Allotment
	err := allotmentsJoined(s.DB).
		Where("allotments.resident_id = ? AND allotments.status = ?", residentID, models.AllotmentActive).
		Order("allotments.created_at DESC").
		Limit(1).
		Find(&rows).Error
	if err != nil || len(rows) == 0 {
		return nil, err
	}
	return &rows[0], nil
}

func lockResident(tx *gorm.DB, id uint) (models.Resident, error) {
	var r models.Resident
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&r, "resident_id = ?", id).Error
	return r, lookup(err, "Resident")
}

func lockRoom(tx *gorm.DB, id uint) (models.Room, error) {
	var room models.Room
	err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&room, "room_id = ?", id).Error
	return room, lookup(err, "Room")
}

func countActive(tx *gorm.DB, roomID uint) (int64, error) {
	var n int64
	err := tx.Model(&models.Allotment{}).
		Where("room_id = ? AND status = ?", roomID, models.AllotmentActive).
		Count(&n).Error
	return n, err
}

// recompute rewrites occupied and status of a locked room from the live
// active-allotment count.
func recompute(tx *gorm.DB, room *models.Room) error {
	active, err := countActive(tx, room.ID)
	if err != nil {
		return err
	}
	room.Recompute(int(active))
	return tx.Model(&models.Room{}).Where("room_id = ?", room.ID).Updates(map[string]interface{}{
		"occupied": room.Occupied,
		"status":   room.Status,
	}).Error
}

// admit checks that the resident may take a seat in the locked room.
func admit(tx *gorm.DB, residentID uint, room *models.Room) error {
	var n int64
	err := tx.Model(&models.Allotment{}).
		Where("resident_id = ? AND status = ?", residentID, models.AllotmentActive).
		Count(&n).Error
	if err != nil {
		return err
	}
	if n > 0 {
		metrics.RecordRejection("already_allotted")
		return capacityf("Resident already has an active allotment")
	}
	if !room.HasSeat() {
		metrics.RecordRejection("room_full")
		return capacityf("Room is full")
	}
	return nil
}

type allocation struct {
	residentID  uint
	roomID      uint
	checkIn     datatypes.Date
	checkOut    *datatypes.Date
	lifestyle   models.RoommateType
	selfService bool
}

func (s *AllotmentService) allocate(req allocation) (uint, error) {
	var id uint
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		resident, err := lockResident(tx, req.residentID)
		if err != nil {
			return err
		}
		room, err := lockRoom(tx, req.roomID)
		if err != nil {
			return err
		}

		if req.selfService {
			if room.Status != models.RoomAvailable {
				metrics.RecordRejection("room_unavailable")
				return capacityf("Room is not available")
			}
			if room.RoommateType != resident.RoommateType {
				return validationf("Room is reserved for %s residents", room.RoommateType)
			}
			if resident.HostelID != nil && *resident.HostelID != room.HostelID {
				return validationf("Room is not in the resident's hostel")
			}
		}
		if err := admit(tx, resident.ID, &room); err != nil {
			return err
		}

		a := models.Allotment{
			ResidentID:          resident.ID,
			RoomID:              room.ID,
			CheckInDate:         req.checkIn,
			CheckOutDate:        req.checkOut,
			LifestylePreference: req.lifestyle,
			Status:              models.AllotmentActive,
		}
		if err := tx.Create(&a).Error; err != nil {
			return classify(err, "Allotment already exists")
		}
		id = a.ID
		return recompute(tx, &room)
	})
	if err != nil {
		return 0, err
	}
	metrics.RecordAllotment("allocate")
	return id, nil
}

// Allocate places a resident in a room.
func (s *AllotmentService) Allocate(in AllotmentInput) (models.Allotment, error) {
	if err := required(
		field{"resident_id", in.ResidentID != nil && *in.ResidentID != 0},
		field{"room_id", in.RoomID != nil && *in.RoomID != 0},
		field{"check_in_date", present(in.CheckInDate)},
	); err != nil {
		return models.Allotment{}, err
	}
	checkIn, err := date("check_in_date", in.CheckInDate)
	if err != nil {
		return models.Allotment{}, err
	}

	req := allocation{
		residentID: *in.ResidentID,
		roomID:     *in.RoomID,
		checkIn:    checkIn,
		lifestyle:  models.RoommateQuiet,
	}
	if present(in.CheckOutDate) {
		out, err := date("check_out_date", in.CheckOutDate)
		if err != nil {
			return models.Allotment{}, err
		}
		req.checkOut = &out
	}
	if present(in.LifestylePreference) {
		req.lifestyle = models.RoommateType(text(in.LifestylePreference))
	}

	id, err := s.allocate(req)
	if err != nil {
		return models.Allotment{}, err
	}
	return s.Get(id)
}

// SelectRoom is the resident-initiated variant of Allocate. The room must be
// available, match the resident's roommate type and lie in the resident's
// hostel when one is set. Check-in is today.
func (s *AllotmentService) SelectRoom(residentID, roomID uint) (models.Allotment, error) {
	if roomID == 0 {
		return models.Allotment{}, validationf("missing required fields: room_id")
	}
	id, err := s.allocate(allocation{
		residentID:  residentID,
		roomID:      roomID,
		checkIn:     utils.Today(),
		lifestyle:   models.RoommateQuiet,
		selfService: true,
	})
	if err != nil {
		return models.Allotment{}, err
	}
	return s.Get(id)
}

// lockAllotment reads the allotment, then takes the resident and room locks
// in the same order as allocate before re-reading it under lock.
func lockAllotment(tx *gorm.DB, id uint) (models.Allotment, models.Room, error) {
	var a models.Allotment
	if err := tx.Take(&a, "allotment_id = ?", id).Error; err != nil {
		return a, models.Room{}, lookup(err, "Allotment")
	}
	if _, err := lockResident(tx, a.ResidentID); err != nil {
		return a, models.Room{}, err
	}
	room, err := lockRoom(tx, a.RoomID)
	if err != nil {
		return a, room, err
	}
	err = tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&a, "allotment_id = ?", id).Error
	return a, room, lookup(err, "Allotment")
}

// Update applies the provided fields, keeping stored values for the rest.
// Moving to completed releases the seat; moving back to active re-runs the
// allocate checks. resident_id and room_id cannot be changed.
func (s *AllotmentService) Update(id uint, in AllotmentInput) (models.Allotment, error) {
	var transition string
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		a, room, err := lockAllotment(tx, id)
		if err != nil {
			return err
		}
		prev := a.Status

		if present(in.CheckInDate) {
			if a.CheckInDate, err = date("check_in_date", in.CheckInDate); err != nil {
				return err
			}
		}
		if present(in.CheckOutDate) {
			out, err := date("check_out_date", in.CheckOutDate)
			if err != nil {
				return err
			}
			a.CheckOutDate = &out
		}
		if present(in.LifestylePreference) {
			a.LifestylePreference = models.RoommateType(text(in.LifestylePreference))
		}
		if present(in.Status) {
			a.Status = models.AllotmentStatus(text(in.Status))
		}

		switch {
		case prev == models.AllotmentCompleted && a.Status == models.AllotmentActive:
			if err := admit(tx, a.ResidentID, &room); err != nil {
				return err
			}
			if !present(in.CheckOutDate) {
				a.CheckOutDate = nil
			}
			transition = "reactivate"
		case prev == models.AllotmentActive && a.Status == models.AllotmentCompleted:
			if a.CheckOutDate == nil {
				today := utils.Today()
				a.CheckOutDate = &today
			}
			transition = "complete"
		}

		if err := tx.Save(&a).Error; err != nil {
			return classify(err, "Allotment already exists")
		}
		return recompute(tx, &room)
	})
	if err != nil {
		return models.Allotment{}, err
	}
	if transition != "" {
		metrics.RecordAllotment(transition)
	}
	return s.Get(id)
}

// Complete ends the stay, stamping today as check-out when none is set.
// Completing an already completed allotment changes nothing.
func (s *AllotmentService) Complete(id uint) (models.Allotment, error) {
	completed := string(models.AllotmentCompleted)
	return s.Update(id, AllotmentInput{Status: &completed})
}

func (s *AllotmentService) Delete(id uint) error {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		a, room, err := lockAllotment(tx, id)
		if err != nil {
			return err
		}
		if err := tx.Delete(&models.Allotment{}, a.ID).Error; err != nil {
			return err
		}
		if a.Status != models.AllotmentActive {
			return nil
		}
		return recompute(tx, &room)
	})
	if err != nil {
		return err
	}
	metrics.RecordAllotment("delete")
	return nil
}
