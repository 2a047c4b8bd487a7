package services

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"hostel-backend/models"
)

type RoomInput struct {
	HostelID     *uint   `json:"hostel_id"`
	RoomNumber   *string `json:"room_number"`
	RoomType     *string `json:"room_type" binding:"omitempty,oneof=single double triple suite"`
	Floor        *int    `json:"floor"`
	Capacity     *int    `json:"capacity" binding:"omitempty,min=1"`
	Status       *string `json:"status" binding:"omitempty,oneof=available full maintenance"`
	RoommateType *string `json:"roommate_type" binding:"omitempty,roommate"`
}

type RoomService struct {
	DB *gorm.DB
}

func NewRoomService(db *gorm.DB) *RoomService {
	return &RoomService{DB: db}
}

func roomsWithHostel(db *gorm.DB) *gorm.DB {
	return db.Model(&models.Room{}).
		Select("rooms.*, h.hostel_name, h.location").
		Joins("JOIN hostels h ON h.hostel_id = rooms.hostel_id")
}

func (s *RoomService) List() ([]models.Room, error) {
	var rooms []models.Room
	err := roomsWithHostel(s.DB).Order("h.hostel_name, rooms.room_number").Find(&rooms).Error
	return rooms, err
}

func (s *RoomService) Get(id uint) (models.Room, error) {
	var room models.Room
	err := roomsWithHostel(s.DB).Where("rooms.room_id = ?", id).Take(&room).Error
	return room, lookup(err, "Room")
}

const duplicateRoom = "Room number already exists in this hostel"

func (s *RoomService) Create(in RoomInput) (models.Room, error) {
	if err := required(
		field{"hostel_id", in.HostelID != nil && *in.HostelID != 0},
		field{"room_number", present(in.RoomNumber)},
		field{"capacity", in.Capacity != nil},
	); err != nil {
		return models.Room{}, err
	}
	if *in.Capacity < 1 {
		return models.Room{}, validationf("capacity must be at least 1")
	}

	room := models.Room{
		HostelID:     *in.HostelID,
		RoomNumber:   text(in.RoomNumber),
		RoomType:     models.RoomTypeDouble,
		Floor:        in.Floor,
		Capacity:     *in.Capacity,
		Status:       models.RoomAvailable,
		RoommateType: models.RoommateQuiet,
	}
	if present(in.RoomType) {
		room.RoomType = models.RoomType(text(in.RoomType))
	}
	if present(in.Status) {
		room.Status = models.RoomStatus(text(in.Status))
	}
	if present(in.RoommateType) {
		room.RoommateType = models.RoommateType(text(in.RoommateType))
	}
	room.Recompute(0)

	if err := s.DB.Create(&room).Error; err != nil {
		return room, classify(err, duplicateRoom)
	}
	return s.Get(room.ID)
}

// Update applies the provided fields and keeps stored values for the rest.
// Occupancy is never taken from the client; it is recounted from the active
// allotments before the row is written.
func (s *RoomService) Update(id uint, in RoomInput) (models.Room, error) {
	err := s.DB.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).Take(&room, "room_id = ?", id).Error
		if err != nil {
			return lookup(err, "Room")
		}

		if in.HostelID != nil && *in.HostelID != 0 {
			room.HostelID = *in.HostelID
		}
		if present(in.RoomNumber) {
			room.RoomNumber = text(in.RoomNumber)
		}
		if present(in.RoomType) {
			room.RoomType = models.RoomType(text(in.RoomType))
		}
		if in.Floor != nil {
			room.Floor = in.Floor
		}
		if in.Capacity != nil {
			room.Capacity = *in.Capacity
		}
		if present(in.Status) {
			room.Status = models.RoomStatus(text(in.Status))
		}
		if present(in.RoommateType) {
			room.RoommateType = models.RoommateType(text(in.RoommateType))
		}

		active, err := countActive(tx, room.ID)
		if err != nil {
			return err
		}
		if room.Capacity < 1 {
			return validationf("capacity must be at least 1")
		}
		if int64(room.Capacity) < active {
			return validationf("capacity cannot be lower than the %d current occupants", active)
		}
		room.Recompute(int(active))

		if err := tx.Save(&room).Error; err != nil {
			return classify(err, duplicateRoom)
		}
		return nil
	})
	if err != nil {
		return models.Room{}, err
	}
	return s.Get(id)
}

func (s *RoomService) Delete(id uint) error {
	return deleteByID(s.DB, &models.Room{}, id, "Room")
}

// Available lists rooms open for self-service selection: status available,
// tagged with roommateType, and in hostelID when one is given.
func (s *RoomService) Available(roommateType models.RoommateType, hostelID *uint) ([]models.Room, error) {
	q := roomsWithHostel(s.DB).
		Where("rooms.status = ?", models.RoomAvailable).
		Where("rooms.roommate_type = ?", roommateType)
	if hostelID != nil {
		q = q.Where("rooms.hostel_id = ?", *hostelID)
	}

	var rooms []models.Room
	err := q.Order("h.hostel_name, rooms.room_number").Find(&rooms).Error
	return rooms, err
}
