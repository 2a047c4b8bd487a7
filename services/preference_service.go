package services

import (
	"gorm.io/gorm"

	"hostel-backend/models"
)

type PreferenceInput struct {
	ResidentID     *uint   `json:"resident_id"`
	PreferenceType *string `json:"preference_type"`
	Notes          *string `json:"notes"`
}

type PreferenceService struct {
	DB *gorm.DB
}

func NewPreferenceService(db *gorm.DB) *PreferenceService {
	return &PreferenceService{DB: db}
}

func preferencesJoined(db *gorm.DB) *gorm.DB {
	return withResidentName(db, &models.RoommatePreference{}, "roommate_preferences")
}

const preferenceOrder = "roommate_preferences.created_at DESC, roommate_preferences.preference_id DESC"

func (s *PreferenceService) List() ([]models.RoommatePreference, error) {
	var prefs []models.RoommatePreference
	err := preferencesJoined(s.DB).Order(preferenceOrder).Find(&prefs).Error
	return prefs, err
}

func (s *PreferenceService) ForResident(residentID uint) ([]models.RoommatePreference, error) {
	var prefs []models.RoommatePreference
	err := preferencesJoined(s.DB).
		Where("roommate_preferences.resident_id = ?", residentID).
		Order(preferenceOrder).
		Find(&prefs).Error
	return prefs, err
}

func (s *PreferenceService) Get(id uint) (models.RoommatePreference, error) {
	var p models.RoommatePreference
	err := preferencesJoined(s.DB).Where("roommate_preferences.preference_id = ?", id).Take(&p).Error
	return p, lookup(err, "Preference")
}

func (s *PreferenceService) Create(in PreferenceInput) (models.RoommatePreference, error) {
	if err := required(
		residentID(in.ResidentID),
		field{"preference_type", present(in.PreferenceType)},
	); err != nil {
		return models.RoommatePreference{}, err
	}

	p := models.RoommatePreference{
		ResidentID:     *in.ResidentID,
		PreferenceType: text(in.PreferenceType),
		Notes:          optional(in.Notes),
	}
	if err := s.DB.Create(&p).Error; err != nil {
		return p, classify(err, "Preference already exists")
	}
	return s.Get(p.ID)
}

func (s *PreferenceService) Update(id uint, in PreferenceInput) (models.RoommatePreference, error) {
	var p models.RoommatePreference
	if err := s.DB.Take(&p, "preference_id = ?", id).Error; err != nil {
		return p, lookup(err, "Preference")
	}
	if err := required(field{"preference_type", present(in.PreferenceType)}); err != nil {
		return p, err
	}

	p.PreferenceType = text(in.PreferenceType)
	p.Notes = optional(in.Notes)
	if err := s.DB.Save(&p).Error; err != nil {
		return p, classify(err, "Preference already exists")
	}
	return s.Get(id)
}

func (s *PreferenceService) Delete(id uint) error {
	return deleteByID(s.DB, &models.RoommatePreference{}, id, "Preference")
}
