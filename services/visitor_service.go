package services

import (
	"time"

	"gorm.io/gorm"

	"hostel-backend/models"
	"hostel-backend/utils"
)

type VisitorInput struct {
	ResidentID  *uint   `json:"resident_id"`
	VisitorName *string `json:"visitor_name"`
	EntryTime   *string `json:"entry_time" binding:"omitempty,timestamp"`
	ExitTime    *string `json:"exit_time" binding:"omitempty,timestamp"`
}

type VisitorService struct {
	DB *gorm.DB
}

func NewVisitorService(db *gorm.DB) *VisitorService {
	return &VisitorService{DB: db}
}

func visitorsJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.VisitorLog{}, "visitor_logs")
}

func (s *VisitorService) List() ([]models.VisitorLog, error) {
	var logs []models.VisitorLog
	err := visitorsJoined(s.DB).Order("visitor_logs.entry_time DESC, visitor_logs.log_id DESC").Find(&logs).Error
	return logs, err
}

func (s *VisitorService) Get(id uint) (models.VisitorLog, error) {
	var v models.VisitorLog
	err := visitorsJoined(s.DB).Where("visitor_logs.log_id = ?", id).Take(&v).Error
	return v, lookup(err, "Visitor log")
}

func timestamp(name string, p *string) (*time.Time, error) {
	if !present(p) {
		return nil, nil
	}
	t, err := utils.ParseTimestamp(*p)
	if err != nil {
		return nil, validationf("%s: %v", name, err)
	}
	return &t, nil
}

func (s *VisitorService) Create(in VisitorInput) (models.VisitorLog, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"visitor_name", present(in.VisitorName)},
		field{"entry_time", present(in.EntryTime)},
	); err != nil {
		return models.VisitorLog{}, err
	}
	entry, err := timestamp("entry_time", in.EntryTime)
	if err != nil {
		return models.VisitorLog{}, err
	}
	exit, err := timestamp("exit_time", in.ExitTime)
	if err != nil {
		return models.VisitorLog{}, err
	}

	v := models.VisitorLog{
		ResidentID:  *in.ResidentID,
		VisitorName: text(in.VisitorName),
		EntryTime:   *entry,
		ExitTime:    exit,
	}
	if err := s.DB.Create(&v).Error; err != nil {
		return v, classify(err, "Visitor log already exists")
	}
	return s.Get(v.ID)
}

// Update only records the exit time; omitting it clears the value.
func (s *VisitorService) Update(id uint, in VisitorInput) (models.VisitorLog, error) {
	var v models.VisitorLog
	if err := s.DB.Take(&v, "log_id = ?", id).Error; err != nil {
		return v, lookup(err, "Visitor log")
	}
	exit, err := timestamp("exit_time", in.ExitTime)
	if err != nil {
		return v, err
	}

	v.ExitTime = exit
	if err := s.DB.Save(&v).Error; err != nil {
		return v, classify(err, "Visitor log already exists")
	}
	return s.Get(id)
}

func (s *VisitorService) Delete(id uint) error {
	return deleteByID(s.DB, &models.VisitorLog{}, id, "Visitor log")
}
